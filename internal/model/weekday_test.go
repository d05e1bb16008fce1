package model

import (
	"testing"
	"time"
)

func TestWeekdayLabels(t *testing.T) {
	cases := []struct {
		day   Weekday
		label string
	}{
		{Monday, "Pazartesi"},
		{Tuesday, "Salı"},
		{Wednesday, "Çarşamba"},
		{Thursday, "Perşembe"},
		{Friday, "Cuma"},
		{Saturday, "Cumartesi"},
		{Sunday, "Pazar"},
	}
	for _, c := range cases {
		if got := c.day.Label(); got != c.label {
			t.Fatalf("label(%d)=%q, want %q", c.day, got, c.label)
		}
		parsed, ok := ParseWeekday(c.label)
		if !ok || parsed != c.day {
			t.Fatalf("parse(%q)=%v,%v, want %v", c.label, parsed, ok, c.day)
		}
	}

	if _, ok := ParseWeekday("Flursday"); ok {
		t.Fatalf("parsed an unknown label")
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-01-04 is a Sunday, 2026-01-05 a Monday.
	sun := time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	if got := WeekdayOf(sun); got != Sunday {
		t.Fatalf("WeekdayOf(sun)=%v, want Sunday", got)
	}
	if got := WeekdayOf(mon); got != Monday {
		t.Fatalf("WeekdayOf(mon)=%v, want Monday", got)
	}
}
