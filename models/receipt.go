package models

import "time"

// Receipt is a saved receipt: the store, transaction and payment entity
// groups flattened into one record. Derived figures (subtotal, tax, total)
// are never persisted; they are recomputed from the items on render.
type Receipt struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Store info
	StoreNumber   string `gorm:"type:varchar(10);not null" json:"store_number"`
	StoreAddress  string `gorm:"type:varchar(255);not null" json:"store_address"`
	StoreCity     string `gorm:"type:varchar(100);not null" json:"store_city"`
	StoreStateZip string `gorm:"type:varchar(20);not null" json:"store_state_zip"`
	StorePhone    string `gorm:"type:varchar(20);not null" json:"store_phone"`
	StoreManager  string `gorm:"type:varchar(100)" json:"store_manager"`
	SurveyCode    string `gorm:"type:varchar(12)" json:"survey_code"`

	// Transaction info
	ReceiptDate string `gorm:"type:varchar(20);not null" json:"receipt_date"`
	Cashier     string `gorm:"type:varchar(100);not null" json:"cashier"`
	Register    string `gorm:"type:varchar(10);not null" json:"register"`
	Terminal    string `gorm:"type:varchar(20)" json:"terminal"`
	Operator    string `gorm:"type:varchar(20)" json:"operator"`

	// Payment info
	TaxRate         string `gorm:"type:varchar(10);not null" json:"tax_rate"`
	PaymentMethod   string `gorm:"type:varchar(20);not null" json:"payment_method"`
	CardLastFour    string `gorm:"type:varchar(4)" json:"card_last_four"`
	Change          string `gorm:"type:varchar(10)" json:"change"`
	ApprovalCode    string `gorm:"type:varchar(20)" json:"approval_code"`
	ReferenceNumber string `gorm:"type:varchar(20)" json:"reference_number"`
	NetworkID       string `gorm:"type:varchar(10)" json:"network_id"`
	AID             string `gorm:"type:varchar(20)" json:"aid"`
	ARC             string `gorm:"type:varchar(20)" json:"arc"`

	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items"`

	UserID *uint `json:"user_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// ReceiptItem is one line item of a saved receipt. Price and quantity are
// stored as the strings the user entered.
type ReceiptItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ReceiptID uint   `gorm:"not null;index" json:"receipt_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Price     string `gorm:"type:varchar(10);not null" json:"price"`
	Quantity  string `gorm:"type:varchar(10);not null" json:"quantity"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
