package calendar

import (
	"fmt"
	"time"
)

const (
	// KeyLayout is how dates are stored on records (DD-MM-YYYY).
	KeyLayout = "02-01-2006"
	// ExternalLayout is how dates travel over the API (YYYY-MM-DD).
	ExternalLayout = "2006-01-02"
)

// Day is a calendar date without a time component. All services and
// repositories work with Day; format conversion happens only at the HTTP
// boundary (ParseExternal) and at the storage boundary (Key).
type Day struct {
	t time.Time
}

func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Day {
	return FromTime(time.Now())
}

// ParseExternal parses a YYYY-MM-DD date, the only format accepted from
// clients.
func ParseExternal(s string) (Day, error) {
	t, err := time.Parse(ExternalLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Day{t: t}, nil
}

// ParseKey parses a stored DD-MM-YYYY date key.
func ParseKey(s string) (Day, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date key %q", s)
	}
	return Day{t: t}, nil
}

// Key renders the storage form (DD-MM-YYYY).
func (d Day) Key() string {
	return d.t.Format(KeyLayout)
}

// External renders the API form (YYYY-MM-DD).
func (d Day) External() string {
	return d.t.Format(ExternalLayout)
}

func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

func (d Day) Before(o Day) bool {
	return d.t.Before(o.t)
}

func (d Day) Equal(o Day) bool {
	return d.t.Equal(o.t)
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) String() string {
	return d.Key()
}
