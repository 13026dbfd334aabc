package receipt

import (
	"strconv"
	"strings"
	"time"
)

// SectionKind identifies one block of the receipt layout.
type SectionKind string

const (
	SectionLogo   SectionKind = "logo"
	SectionStore  SectionKind = "store"
	SectionHeader SectionKind = "header"
	SectionItems  SectionKind = "items"
	SectionTotals SectionKind = "totals"
	SectionTender SectionKind = "tender"
	SectionFooter SectionKind = "footer"
)

// Line is one printed row. Left and Right are drawn against the opposite
// edges of the paper; a line with only Left set and Center true is centered.
type Line struct {
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	Center bool   `json:"center,omitempty"`
	Small  bool   `json:"small,omitempty"`
	// Sub marks an indented secondary row, e.g. "2 FOR $3.48 EACH".
	Sub bool `json:"sub,omitempty"`
}

// Section is an ordered group of lines under one layout block.
type Section struct {
	Kind  SectionKind `json:"kind"`
	Lines []Line      `json:"lines"`
	// Barcode carries the decorative bar widths for the footer block.
	Barcode []int `json:"barcode,omitempty"`
}

// Logo describes the image block at the top of the receipt.
type Logo struct {
	Custom  bool   `json:"custom"`
	DataURI string `json:"data_uri,omitempty"`
	Tagline string `json:"tagline,omitempty"`
}

// Document is the fully laid out receipt: an ordered sequence of sections
// ready for rasterizing, PDF packaging or printing.
type Document struct {
	Logo     Logo      `json:"logo"`
	Sections []Section `json:"sections"`
}

const (
	defaultTagline = "Save money. Live better."
	displayLayout  = "01/02/2006 15:04:05"
)

// DisplayDate converts a datetime-local form value to the fixed receipt
// format (MM/DD/YYYY HH:MM:SS, 24-hour clock). Values that do not parse are
// passed through unchanged so a half-edited form still previews.
func DisplayDate(formValue string) string {
	for _, layout := range []string{formValueLayout, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, formValue); err == nil {
			return t.Format(displayLayout)
		}
	}
	return formValue
}

// Render lays the current state out as a receipt document. It is a pure
// function of its inputs except for the TC# footer line, which is freshly
// generated on every call and never stored.
func Render(store StoreInfo, txn TransactionInfo, payment PaymentInfo, items []LineItem, totals Totals) Document {
	doc := Document{Logo: logoFor(store)}

	doc.Sections = append(doc.Sections,
		logoSection(store),
		storeSection(store),
		headerSection(txn),
		itemsSection(items),
		totalsSection(payment, totals),
		tenderSection(payment, totals),
		footerSection(store, txn, items),
	)
	return doc
}

func logoFor(store StoreInfo) Logo {
	if store.UseCustomLogo && store.CustomLogo != "" {
		return Logo{Custom: true, DataURI: store.CustomLogo}
	}
	return Logo{Tagline: defaultTagline}
}

func logoSection(store StoreInfo) Section {
	sec := Section{Kind: SectionLogo}
	if !(store.UseCustomLogo && store.CustomLogo != "") {
		sec.Lines = append(sec.Lines, Line{Left: defaultTagline, Center: true, Small: true})
	}
	return sec
}

func storeSection(store StoreInfo) Section {
	return Section{Kind: SectionStore, Lines: []Line{
		{Left: strings.ToUpper(store.Address), Center: true},
		{Left: strings.ToUpper(store.City + ", " + store.StateZip), Center: true},
		{Left: "STORE #" + store.Number + " (" + store.Phone + ")", Center: true},
		{Left: "STR MANAGER " + strings.ToUpper(store.Manager), Center: true},
		{Left: "SUPERCENTER", Center: true},
	}}
}

func headerSection(txn TransactionInfo) Section {
	return Section{Kind: SectionHeader, Lines: []Line{
		{Left: "OP# " + txn.Operator, Right: DisplayDate(txn.Date), Small: true},
		{Left: "TE# " + txn.Terminal, Right: "CASHIER " + strings.ToUpper(txn.Cashier), Small: true},
		{Right: "REGISTER #" + txn.Register, Small: true},
	}}
}

func itemsSection(items []LineItem) Section {
	sec := Section{Kind: SectionItems}
	for _, it := range items {
		name := strings.ToUpper(it.Name)
		if name == "" {
			name = "ITEM"
		}
		extended := parseAmount(it.Price) * float64(parseQuantity(it.Quantity))
		sec.Lines = append(sec.Lines, Line{Left: name, Right: FormatAmount(extended)})

		if qty := parseQuantity(it.Quantity); qty > 1 {
			sec.Lines = append(sec.Lines, Line{
				Left:  strconv.Itoa(qty) + " FOR $" + FormatAmount(parseAmount(it.Price)) + " EACH",
				Small: true,
				Sub:   true,
			})
		}
	}
	return sec
}

func totalsSection(payment PaymentInfo, totals Totals) Section {
	return Section{Kind: SectionTotals, Lines: []Line{
		{Left: "SUBTOTAL", Right: FormatAmount(totals.Subtotal)},
		{Left: "TAX " + payment.TaxRate + "%", Right: FormatAmount(totals.TaxAmount)},
		{Left: "TOTAL", Right: FormatAmount(totals.Total)},
	}}
}

func tenderSection(payment PaymentInfo, totals Totals) Section {
	sec := Section{Kind: SectionTender, Lines: []Line{
		{Left: string(payment.Method) + " TEND", Right: FormatAmount(totals.Total)},
	}}

	// Card authorization details never appear on a cash sale. The switch is
	// kept exhaustive over the known tender types so a new method has to
	// decide which branch it belongs to.
	switch payment.Method {
	case MethodCash:
		return sec
	case MethodCredit, MethodDebit, MethodGiftCard:
	}

	sec.Lines = append(sec.Lines,
		Line{Left: "ACCOUNT #", Right: maskAccount(payment.CardLastFour), Small: true},
		Line{Left: "APPROVAL", Right: payment.ApprovalCode, Small: true},
		Line{Left: "REF #", Right: payment.ReferenceNumber, Small: true},
		Line{Left: "NETWORK ID", Right: payment.NetworkID, Small: true},
		Line{Left: "APPLICATION LABEL", Right: strings.ToLower(string(payment.Method)), Small: true},
		Line{Left: "AID", Right: payment.AID, Small: true},
		Line{Left: "TC", Right: payment.ARC, Small: true},
		Line{Left: "CHANGE DUE", Right: "$" + payment.Change, Small: true},
	)
	return sec
}

// maskAccount hides all but the last four digits behind twelve X's.
func maskAccount(lastFour string) string {
	return strings.Repeat("X", 12) + lastFour
}

func footerSection(store StoreInfo, txn TransactionInfo, items []LineItem) Section {
	sec := Section{Kind: SectionFooter, Barcode: barcodePattern()}
	sec.Lines = append(sec.Lines,
		Line{Left: "# ITEMS SOLD " + strconv.Itoa(len(items)), Center: true, Small: true},
		Line{Left: "TC# " + TransactionNumber(), Center: true, Small: true},
		Line{Left: "WE VALUE YOUR OPINION!", Center: true, Small: true},
		Line{Left: "Please give us your feedback at", Center: true, Small: true},
		Line{Left: "www.survey.walmart.com", Center: true, Small: true},
		Line{Left: "or call 1-800-925-6278", Center: true, Small: true},
		Line{Left: "for a chance to win a $1000 WALMART SHOPPING CARD", Center: true, Small: true},
		Line{Left: "Enter: " + store.SurveyCode, Center: true, Small: true},
		Line{Left: "YOUR RECEIPT FEATURES WALMART PAY", Center: true, Small: true},
		Line{Left: "See store for Rx price match details.", Center: true, Small: true},
		Line{Left: "RETURNS MUST BE MADE WITHIN 90 DAYS. SOME ITEMS CANNOT BE RETURNED.", Center: true, Small: true},
		Line{Left: "SEE BACK OF RECEIPT, WALMART.COM OR STORE FOR DETAILS.", Center: true, Small: true},
		Line{Left: DisplayDate(txn.Date), Center: true, Small: true},
		Line{Left: "CSM# " + strings.ToUpper(txn.Cashier), Center: true, Small: true},
		Line{Left: "THANK YOU FOR SHOPPING AT WALMART", Center: true, Small: true},
		Line{Left: defaultTagline, Center: true, Small: true},
	)
	return sec
}

// barcodePattern returns the decorative bar widths drawn under the footer:
// thirty bars, every third one thin.
func barcodePattern() []int {
	widths := make([]int, 30)
	for i := range widths {
		if i%3 == 0 {
			widths[i] = 1
		} else {
			widths[i] = 2
		}
	}
	return widths
}
