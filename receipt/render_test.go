package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDefaults(method PaymentMethod) Document {
	store := DefaultStoreInfo()
	txn := DefaultTransactionInfo()
	txn.Date = "2025-03-14T13:45"
	payment := DefaultPaymentInfo()
	payment.Method = method
	items := DefaultItems()
	return Render(store, txn, payment, items, Calculate(items, payment.TaxRate))
}

func sectionByKind(t *testing.T, doc Document, kind SectionKind) Section {
	t.Helper()
	for _, sec := range doc.Sections {
		if sec.Kind == kind {
			return sec
		}
	}
	t.Fatalf("section %s not found", kind)
	return Section{}
}

func TestRenderSectionOrder(t *testing.T) {
	doc := renderDefaults(MethodDebit)
	kinds := make([]SectionKind, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		kinds = append(kinds, sec.Kind)
	}
	assert.Equal(t, []SectionKind{
		SectionLogo, SectionStore, SectionHeader, SectionItems,
		SectionTotals, SectionTender, SectionFooter,
	}, kinds)
}

func TestRenderDefaultLogoTagline(t *testing.T) {
	doc := renderDefaults(MethodDebit)
	assert.False(t, doc.Logo.Custom)
	assert.Equal(t, "Save money. Live better.", doc.Logo.Tagline)
}

func TestRenderCustomLogoFallsBackWhenMissing(t *testing.T) {
	store := DefaultStoreInfo()
	store.UseCustomLogo = true // flag set but no image uploaded
	doc := Render(store, DefaultTransactionInfo(), DefaultPaymentInfo(), nil, Totals{})
	assert.False(t, doc.Logo.Custom)

	store.CustomLogo = "data:image/png;base64,AAAA"
	doc = Render(store, DefaultTransactionInfo(), DefaultPaymentInfo(), nil, Totals{})
	assert.True(t, doc.Logo.Custom)
	assert.Equal(t, store.CustomLogo, doc.Logo.DataURI)
}

func TestRenderStoreIdentityUpperCased(t *testing.T) {
	store := DefaultStoreInfo()
	store.Address = "300 walmart way"
	store.Manager = "sherrie black"
	doc := Render(store, DefaultTransactionInfo(), DefaultPaymentInfo(), nil, Totals{})

	sec := sectionByKind(t, doc, SectionStore)
	require.GreaterOrEqual(t, len(sec.Lines), 4)
	assert.Equal(t, "300 WALMART WAY", sec.Lines[0].Left)
	assert.Equal(t, "BENTONVILLE, AR 72712", sec.Lines[1].Left)
	assert.Equal(t, "STORE #5260 ((479) 555-1234)", sec.Lines[2].Left)
	assert.Equal(t, "STR MANAGER SHERRIE BLACK", sec.Lines[3].Left)
}

func TestRenderHeaderDateFormat(t *testing.T) {
	doc := renderDefaults(MethodDebit)
	sec := sectionByKind(t, doc, SectionHeader)

	require.Len(t, sec.Lines, 3)
	assert.Equal(t, "OP# 00482", sec.Lines[0].Left)
	assert.Equal(t, "03/14/2025 13:45:00", sec.Lines[0].Right)
	assert.Equal(t, "TE# SC011053", sec.Lines[1].Left)
	assert.Equal(t, "CASHIER JOHN", sec.Lines[1].Right)
	assert.Equal(t, "REGISTER #12", sec.Lines[2].Right)
}

func TestRenderItemsInInsertionOrder(t *testing.T) {
	items := []LineItem{
		{ID: "a", Name: "zebra food", Price: "2.00", Quantity: "1"},
		{ID: "b", Name: "apple", Price: "1.50", Quantity: "3"},
	}
	doc := Render(DefaultStoreInfo(), DefaultTransactionInfo(), DefaultPaymentInfo(), items, Calculate(items, "0"))
	sec := sectionByKind(t, doc, SectionItems)

	require.Len(t, sec.Lines, 3)
	assert.Equal(t, "ZEBRA FOOD", sec.Lines[0].Left)
	assert.Equal(t, "2.00", sec.Lines[0].Right)
	assert.Equal(t, "APPLE", sec.Lines[1].Left)
	assert.Equal(t, "4.50", sec.Lines[1].Right)

	// Quantity > 1 gets the secondary "N FOR $X EACH" row.
	assert.True(t, sec.Lines[2].Sub)
	assert.Equal(t, "3 FOR $1.50 EACH", sec.Lines[2].Left)
}

func TestRenderTotalsBlock(t *testing.T) {
	doc := renderDefaults(MethodDebit)
	sec := sectionByKind(t, doc, SectionTotals)

	require.Len(t, sec.Lines, 3)
	assert.Equal(t, "SUBTOTAL", sec.Lines[0].Left)
	assert.Equal(t, "4.72", sec.Lines[0].Right)
	assert.Equal(t, "TAX 6.625%", sec.Lines[1].Left)
	assert.Equal(t, "0.31", sec.Lines[1].Right)
	assert.Equal(t, "TOTAL", sec.Lines[2].Left)
	assert.Equal(t, "5.03", sec.Lines[2].Right)
}

func TestRenderCashTenderHasNoCardBlock(t *testing.T) {
	doc := renderDefaults(MethodCash)
	sec := sectionByKind(t, doc, SectionTender)

	assert.Equal(t, "CASH TEND", sec.Lines[0].Left)
	for _, line := range sec.Lines {
		assert.NotContains(t, line.Left, "ACCOUNT")
		assert.NotContains(t, line.Left, "APPROVAL")
		assert.NotContains(t, line.Left, "REF #")
		assert.NotContains(t, line.Left, "NETWORK")
		assert.NotContains(t, line.Left, "AID")
		assert.NotContains(t, line.Left, "CHANGE DUE")
	}
}

func TestRenderDebitTenderCardBlock(t *testing.T) {
	doc := renderDefaults(MethodDebit)
	sec := sectionByKind(t, doc, SectionTender)

	require.GreaterOrEqual(t, len(sec.Lines), 9)
	assert.Equal(t, "DEBIT TEND", sec.Lines[0].Left)

	account := sec.Lines[1]
	assert.Equal(t, "ACCOUNT #", account.Left)
	assert.Equal(t, "XXXXXXXXXXXX1924", account.Right)
	assert.True(t, strings.HasSuffix(account.Right, "1924"))
	assert.Equal(t, strings.Repeat("X", 12), account.Right[:12])

	assert.Equal(t, "APPLICATION LABEL", sec.Lines[5].Left)
	assert.Equal(t, "debit", sec.Lines[5].Right)
	assert.Equal(t, "CHANGE DUE", sec.Lines[8].Left)
	assert.Equal(t, "$0.00", sec.Lines[8].Right)
}

func TestRenderFooter(t *testing.T) {
	doc := renderDefaults(MethodDebit)
	sec := sectionByKind(t, doc, SectionFooter)

	assert.Equal(t, "# ITEMS SOLD 2", sec.Lines[0].Left)
	assert.Regexp(t, `^TC# \d{4}( \d{4}){5}$`, sec.Lines[1].Left)
	assert.Len(t, sec.Barcode, 30)

	var foundSurvey bool
	for _, line := range sec.Lines {
		if line.Left == "Enter: 7N5P0L1SL09X" {
			foundSurvey = true
		}
	}
	assert.True(t, foundSurvey, "survey code line missing")
}

// Rendering twice with unchanged inputs yields identical output everywhere
// except the receipt-local transaction number.
func TestRenderDeterministicExceptTransactionNumber(t *testing.T) {
	a := renderDefaults(MethodDebit)
	b := renderDefaults(MethodDebit)

	require.Len(t, b.Sections, len(a.Sections))
	for i := range a.Sections {
		if a.Sections[i].Kind != SectionFooter {
			assert.Equal(t, a.Sections[i], b.Sections[i])
			continue
		}
		fa, fb := a.Sections[i], b.Sections[i]
		require.Len(t, fb.Lines, len(fa.Lines))
		for j := range fa.Lines {
			if strings.HasPrefix(fa.Lines[j].Left, "TC# ") {
				assert.True(t, strings.HasPrefix(fb.Lines[j].Left, "TC# "))
				continue
			}
			assert.Equal(t, fa.Lines[j], fb.Lines[j])
		}
	}
}

func TestDisplayDatePassthroughOnBadInput(t *testing.T) {
	assert.Equal(t, "not-a-date", DisplayDate("not-a-date"))
}
