package receipt

// PaymentMethod is the tender type printed on the receipt.
type PaymentMethod string

const (
	MethodCredit   PaymentMethod = "CREDIT"
	MethodDebit    PaymentMethod = "DEBIT"
	MethodCash     PaymentMethod = "CASH"
	MethodGiftCard PaymentMethod = "GIFT CARD"
)

// Valid reports whether m is one of the known tender types.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCredit, MethodDebit, MethodCash, MethodGiftCard:
		return true
	}
	return false
}

// StoreInfo identifies the retail location printed at the top of the receipt.
type StoreInfo struct {
	Number        string `json:"number"`
	Address       string `json:"address"`
	City          string `json:"city"`
	StateZip      string `json:"state_zip"`
	Phone         string `json:"phone"`
	Manager       string `json:"manager"`
	SurveyCode    string `json:"survey_code"`
	UseCustomLogo bool   `json:"use_custom_logo"`
	// CustomLogo holds a data-URI encoded image, empty when none was uploaded.
	// Rendering falls back to the default logo whenever it is empty, even if
	// UseCustomLogo is set.
	CustomLogo string `json:"custom_logo"`
}

// TransactionInfo is the receipt-level metadata block.
type TransactionInfo struct {
	// Date uses the datetime-local form format, e.g. "2006-01-02T15:04".
	Date     string `json:"date"`
	Cashier  string `json:"cashier"`
	Register string `json:"register"`
	Terminal string `json:"terminal"`
	Operator string `json:"operator"`
}

// PaymentInfo holds the tender details. The card authorization fields
// (CardLastFour through ARC) only carry meaning when Method is not CASH.
type PaymentInfo struct {
	TaxRate         string        `json:"tax_rate"`
	Method          PaymentMethod `json:"method"`
	CardLastFour    string        `json:"card_last_four"`
	Change          string        `json:"change"`
	ApprovalCode    string        `json:"approval_code"`
	ReferenceNumber string        `json:"reference_number"`
	NetworkID       string        `json:"network_id"`
	AID             string        `json:"aid"`
	ARC             string        `json:"arc"`
}

// LineItem is one purchased product. Price and Quantity stay strings exactly
// as entered; they are parsed only when totals are computed or the receipt is
// rendered.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// Totals are derived on every render and never stored.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// DefaultStoreInfo returns the canonical store record a fresh session starts with.
func DefaultStoreInfo() StoreInfo {
	return StoreInfo{
		Number:     "5260",
		Address:    "300 WALMART WAY",
		City:       "BENTONVILLE",
		StateZip:   "AR 72712",
		Phone:      "(479) 555-1234",
		Manager:    "SHERRIE BLACK",
		SurveyCode: "7N5P0L1SL09X",
	}
}

// DefaultTransactionInfo returns the canonical transaction record. The date is
// the current local time so a fresh form shows "now".
func DefaultTransactionInfo() TransactionInfo {
	return TransactionInfo{
		Date:     NowFormValue(),
		Cashier:  "JOHN",
		Register: "12",
		Terminal: "SC011053",
		Operator: "00482",
	}
}

// DefaultPaymentInfo returns the canonical payment record.
func DefaultPaymentInfo() PaymentInfo {
	return PaymentInfo{
		TaxRate:         "6.625",
		Method:          MethodDebit,
		CardLastFour:    "1924",
		Change:          "0.00",
		ApprovalCode:    "001920",
		ReferenceNumber: "117700287029",
		NetworkID:       "0056",
		AID:             "A0000000093840",
		ARC:             "R483019039445",
	}
}

// DefaultItems returns the two-item starter cart.
func DefaultItems() []LineItem {
	return []LineItem{
		{ID: "1", Name: "Great Value Milk 1 Gallon", Price: "3.48", Quantity: "1"},
		{ID: "2", Name: "Bananas", Price: "1.24", Quantity: "1"},
	}
}
