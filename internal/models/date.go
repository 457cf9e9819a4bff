package models

import (
	"fmt"
	"time"
)

const (
	// dateLayout to format daty w JSON (ISO, rok-miesiąc-dzień)
	dateLayout = "2006-01-02"
	// queryDateLayout to format parametru dueDate w zapytaniach (dd/MM/yyyy)
	queryDateLayout = "02/01/2006"
)

// Date reprezentuje datę kalendarzową bez składnika czasu.
// Wartości są znormalizowane do północy UTC, więc dwie równe daty
// są równe również jako wartości Go.
type Date struct {
	t time.Time
}

// NewDate tworzy datę z podanego roku, miesiąca i dnia.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf obcina składnik czasu z podanego momentu.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today zwraca dzisiejszą datę.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDMY parsuje datę w formacie dd/MM/yyyy.
func ParseDMY(s string) (Date, error) {
	t, err := time.Parse(queryDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("nieprawidłowy format daty %q (oczekiwano dd/MM/yyyy): %w", s, err)
	}
	return DateOf(t), nil
}

// AddDays zwraca datę przesuniętą o podaną liczbę dni.
func (d Date) AddDays(days int) Date {
	return DateOf(d.t.AddDate(0, 0, days))
}

// Equal sprawdza czy dwie daty wskazują ten sam dzień.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before sprawdza czy data jest wcześniejsza niż podana.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// IsZero sprawdza czy data jest wartością zerową.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String zwraca datę w formacie ISO.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalJSON serializuje datę jako "rrrr-mm-dd".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parsuje datę z "rrrr-mm-dd".
func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(data))
	if err != nil {
		return fmt.Errorf("nieprawidłowy format daty %s (oczekiwano rrrr-mm-dd): %w", data, err)
	}
	d.t = t
	return nil
}
