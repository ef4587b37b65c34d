// Package person defines the address-book record and operations over record collections.
package person

import (
	"fmt"
	"time"
)

// DateLayout is the day.month.year text form of a birth date.
const DateLayout = "02.01.2006"

// parseLayout accepts unpadded day and month ("1.5.1990") as well as DateLayout.
const parseLayout = "2.1.2006"

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

// NewDate returns the calendar date year-month-day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a dd.mm.yyyy string. The year must have four digits.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("person: parsing date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// String returns the date as dd.mm.yyyy.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MonthCode returns the month as a two-digit string, "01" through "12".
func (d Date) MonthCode() string {
	return fmt.Sprintf("%02d", int(d.t.Month()))
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Person is a single address-book entry.
// Records carry no identifier; their position in a collection is their index.
type Person struct {
	Name    string // "Surname Name"
	Pnumber string // free-form, not validated
	Birth   Date
}

// Equal reports whether p and other hold the same field values.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name && p.Pnumber == other.Pnumber && p.Birth.Equal(other.Birth)
}

// CloneAll returns an independent copy of people. The result is never nil.
func CloneAll(people []Person) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		out = append(out, Person{
			Name:    p.Name,
			Pnumber: p.Pnumber,
			Birth:   NewDate(p.Birth.t.Year(), p.Birth.t.Month(), p.Birth.t.Day()),
		})
	}
	return out
}
