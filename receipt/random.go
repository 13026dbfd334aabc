package receipt

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var firstNames = []string{
	"JOHN", "MARY", "ROBERT", "PATRICIA", "MICHAEL",
	"JENNIFER", "WILLIAM", "LINDA", "DAVID", "ELIZABETH",
}

var lastNames = []string{
	"SMITH", "JOHNSON", "WILLIAMS", "BROWN", "JONES",
	"GARCIA", "MILLER", "DAVIS", "RODRIGUEZ", "MARTINEZ",
}

// RandomID returns an upper-case alphanumeric identifier of the given length.
func RandomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// RandomDigits returns a numeric string of the given length, leading zeros allowed.
func RandomDigits(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte('0' + rand.IntN(10))
	}
	return string(b)
}

// RandomPhone returns a phone number in "(XXX) XXX-XXXX" form. Area code and
// exchange land in [100,999], the line number in [0000,9999] zero-padded.
func RandomPhone() string {
	return fmt.Sprintf("(%d) %d-%04d", 100+rand.IntN(900), 100+rand.IntN(900), rand.IntN(10000))
}

// RandomManager returns a "FIRST LAST" name from the fixed name lists.
func RandomManager() string {
	return firstNames[rand.IntN(len(firstNames))] + " " + lastNames[rand.IntN(len(lastNames))]
}

// RandomCashier returns a single first name.
func RandomCashier() string {
	return firstNames[rand.IntN(len(firstNames))]
}

// RandomSurveyCode returns an 11-character alphanumeric survey code.
func RandomSurveyCode() string {
	return RandomID(11)
}

// RandomStoreNumber returns a four-digit store number in [1000,9999].
func RandomStoreNumber() string {
	return strconv.Itoa(1000 + rand.IntN(9000))
}

// RandomRegister returns a register number in [1,40] as a string.
func RandomRegister() string {
	return strconv.Itoa(1 + rand.IntN(40))
}

// RandomLocation picks one entry from the store location table uniformly at random.
func RandomLocation() Location {
	return Locations[rand.IntN(len(Locations))]
}

// RandomDate returns a moment within the past 14 days with the hour forced
// into store hours [6,23] and a uniformly random minute, formatted for a
// datetime-local form control.
func RandomDate() string {
	t := time.Now().AddDate(0, 0, -rand.IntN(14))
	t = time.Date(t.Year(), t.Month(), t.Day(), 6+rand.IntN(18), rand.IntN(60), 0, 0, t.Location())
	return t.Format(formValueLayout)
}

const formValueLayout = "2006-01-02T15:04"

// NowFormValue formats the current local time for a datetime-local form control.
func NowFormValue() string {
	return time.Now().Format(formValueLayout)
}

// TransactionNumber builds the TC# line: six groups of four random digits.
// A fresh number is generated on every render and never stored.
func TransactionNumber() string {
	out := ""
	for i := 0; i < 6; i++ {
		if i > 0 {
			out += " "
		}
		out += RandomDigits(4)
	}
	return out
}
