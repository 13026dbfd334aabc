package receipt

import (
	"github.com/google/uuid"
)

// Session owns the mutable receipt state for one user. It is the only place
// the entity groups are written; everything downstream (renderer, exporters)
// reads immutable snapshots. A session is confined to a single goroutine, the
// same way the form it backs is confined to a single user.
type Session struct {
	Store       StoreInfo
	Transaction TransactionInfo
	Payment     PaymentInfo
	Items       []LineItem

	listeners []func()
}

// NewSession returns a session holding the canonical defaults.
func NewSession() *Session {
	return &Session{
		Store:       DefaultStoreInfo(),
		Transaction: DefaultTransactionInfo(),
		Payment:     DefaultPaymentInfo(),
		Items:       DefaultItems(),
	}
}

// Subscribe registers a callback fired after every mutation, so a renderer
// never observes stale state.
func (s *Session) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// SetStore replaces the store info wholesale.
func (s *Session) SetStore(info StoreInfo) {
	s.Store = info
	s.notify()
}

// SetTransaction replaces the transaction info wholesale.
func (s *Session) SetTransaction(info TransactionInfo) {
	s.Transaction = info
	s.notify()
}

// SetPayment replaces the payment info wholesale.
func (s *Session) SetPayment(info PaymentInfo) {
	s.Payment = info
	s.notify()
}

// Entity group names accepted by UpdateField.
const (
	EntityStore       = "store"
	EntityTransaction = "transaction"
	EntityPayment     = "payment"
)

// UpdateField applies a targeted single-field update to one entity group.
// Values are stored verbatim and validated nowhere here; downstream parsing
// treats unparsable numbers as zero. Unknown entity or field names are silent
// no-ops, the same contract as UpdateItem.
func (s *Session) UpdateField(entity, field, value string) {
	changed := true
	switch entity {
	case EntityStore:
		switch field {
		case "number":
			s.Store.Number = value
		case "address":
			s.Store.Address = value
		case "city":
			s.Store.City = value
		case "state_zip":
			s.Store.StateZip = value
		case "phone":
			s.Store.Phone = value
		case "manager":
			s.Store.Manager = value
		case "survey_code":
			s.Store.SurveyCode = value
		case "use_custom_logo":
			s.Store.UseCustomLogo = value == "true"
		case "custom_logo":
			s.Store.CustomLogo = value
		default:
			changed = false
		}
	case EntityTransaction:
		switch field {
		case "date":
			s.Transaction.Date = value
		case "cashier":
			s.Transaction.Cashier = value
		case "register":
			s.Transaction.Register = value
		case "terminal":
			s.Transaction.Terminal = value
		case "operator":
			s.Transaction.Operator = value
		default:
			changed = false
		}
	case EntityPayment:
		switch field {
		case "tax_rate":
			s.Payment.TaxRate = value
		case "method":
			s.Payment.Method = PaymentMethod(value)
		case "card_last_four":
			s.Payment.CardLastFour = value
		case "change":
			s.Payment.Change = value
		case "approval_code":
			s.Payment.ApprovalCode = value
		case "reference_number":
			s.Payment.ReferenceNumber = value
		case "network_id":
			s.Payment.NetworkID = value
		case "aid":
			s.Payment.AID = value
		case "arc":
			s.Payment.ARC = value
		default:
			changed = false
		}
	default:
		changed = false
	}
	if changed {
		s.notify()
	}
}

// AddItem appends an empty line item with a fresh identifier and returns it.
func (s *Session) AddItem() LineItem {
	item := LineItem{ID: uuid.NewString(), Price: "0.00", Quantity: "1"}
	s.Items = append(s.Items, item)
	s.notify()
	return item
}

// AppendItems bulk-appends items, used by the filler and the product fetch.
func (s *Session) AppendItems(items []LineItem) {
	s.Items = append(s.Items, items...)
	s.notify()
}

// ItemField names an editable line item column.
type ItemField string

const (
	FieldName     ItemField = "name"
	FieldPrice    ItemField = "price"
	FieldQuantity ItemField = "quantity"
)

// UpdateItem sets one field of the item with the given id. Unknown ids and
// unknown fields are silent no-ops; the id space is generated internally, so
// a miss is a benign race (double click on a removed row), not an error.
func (s *Session) UpdateItem(id string, field ItemField, value string) {
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		switch field {
		case FieldName:
			s.Items[i].Name = value
		case FieldPrice:
			s.Items[i].Price = value
		case FieldQuantity:
			s.Items[i].Quantity = value
		default:
			return
		}
		s.notify()
		return
	}
}

// RemoveItem deletes the item with the given id, a no-op when absent.
func (s *Session) RemoveItem(id string) {
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			s.notify()
			return
		}
	}
}

// FillToTotal appends catalog items until the projected post-tax total
// approaches desiredTotal, using the session's current tax rate.
func (s *Session) FillToTotal(desiredTotal float64) {
	s.Items = FillToTotal(desiredTotal, s.Items, s.Payment.TaxRate)
	s.notify()
}

// Reset restores every entity group and the item list to the canonical
// defaults. The caller passes the user's confirmation; without it the reset
// is a no-op, since it discards the whole form.
func (s *Session) Reset(confirmed bool) {
	if !confirmed {
		return
	}
	s.Store = DefaultStoreInfo()
	s.Transaction = DefaultTransactionInfo()
	s.Payment = DefaultPaymentInfo()
	s.Items = DefaultItems()
	s.notify()
}

// Randomize regenerates the location-derived store fields from the location
// table, the card authorization fields, and the transaction metadata. Tax
// rate, payment method and the item list are deliberately left alone.
func (s *Session) Randomize() {
	loc := RandomLocation()
	s.Store.Number = loc.StoreNumber
	s.Store.Address = loc.Address
	s.Store.City = loc.City
	s.Store.StateZip = loc.StateZip()
	s.Store.Phone = loc.Phone
	s.Store.Manager = RandomManager()
	s.Store.SurveyCode = RandomSurveyCode()

	s.Transaction.Date = RandomDate()
	s.Transaction.Cashier = RandomCashier()
	s.Transaction.Register = RandomRegister()
	s.Transaction.Terminal = "SC" + RandomID(6)
	s.Transaction.Operator = RandomID(5)

	s.Payment.ApprovalCode = RandomDigits(6)
	s.Payment.ReferenceNumber = RandomDigits(12)
	s.Payment.NetworkID = RandomDigits(4)
	s.Payment.AID = "A" + RandomDigits(13)
	s.Payment.ARC = "R" + RandomDigits(12)

	s.notify()
}

// Totals recomputes the derived figures from the current state.
func (s *Session) Totals() Totals {
	return Calculate(s.Items, s.Payment.TaxRate)
}

// Render produces the receipt document for the current state.
func (s *Session) Render() Document {
	return Render(s.Store, s.Transaction, s.Payment, s.Items, s.Totals())
}
