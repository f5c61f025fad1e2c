// Package dateutil centralizes calendar-date handling. Every component that
// stores or compares fechas goes through here so the whole system shares one
// local-midnight convention and the dd/mm/yyyy storage format.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// LayoutFecha is the stored representation of a calendar date.
	LayoutFecha = "02/01/2006"
	// LayoutISO is the form produced by date inputs on the frontend.
	LayoutISO = "2006-01-02"
	// LayoutHora is the stored representation of a clock time.
	LayoutHora = "15:04:05"
)

var (
	isoRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	fechaRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// NormalizeLocalDate parses an input date in either YYYY-MM-DD or DD/MM/YYYY
// form and returns it anchored at local midnight. Parsing by parts avoids the
// UTC shift that time.Parse of a bare ISO date would introduce.
func NormalizeLocalDate(s string) (time.Time, error) {
	if m := isoRe.FindStringSubmatch(s); m != nil {
		t, err := time.ParseInLocation(LayoutISO, s, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil
	}
	if m := fechaRe.FindStringSubmatch(s); m != nil {
		t, err := time.ParseInLocation(LayoutFecha, s, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or DD/MM/YYYY", s)
}

// Truncate drops the time-of-day component, keeping year/month/day in the
// local zone.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// FormatFecha renders a time as the stored dd/mm/yyyy string.
func FormatFecha(t time.Time) string {
	return t.Format(LayoutFecha)
}

// FormatHora renders a time as the stored HH:MM:SS string.
func FormatHora(t time.Time) string {
	return t.Format(LayoutHora)
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayEnd returns the last representable instant of t's calendar day
// (local midnight plus 24h minus 1ms). Range filters use it so the hasta
// endpoint is inclusive of the whole day.
func DayEnd(t time.Time) time.Time {
	return Truncate(t).Add(24*time.Hour - time.Millisecond)
}

// InRange reports whether t falls inside [desde, hasta], day-granular and
// inclusive of both endpoints. A nil bound is open.
func InRange(t time.Time, desde, hasta *time.Time) bool {
	if desde != nil && t.Before(Truncate(*desde)) {
		return false
	}
	if hasta != nil && t.After(DayEnd(*hasta)) {
		return false
	}
	return true
}
