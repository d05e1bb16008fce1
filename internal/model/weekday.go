package model

import "time"

// Weekday is the closed set of day labels daily tasks are scheduled under,
// running Monday..Sunday like the ISO week. Display labels are the Turkish
// day names the board has always used.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayLabels = [...]string{
	Monday:    "Pazartesi",
	Tuesday:   "Salı",
	Wednesday: "Çarşamba",
	Thursday:  "Perşembe",
	Friday:    "Cuma",
	Saturday:  "Cumartesi",
	Sunday:    "Pazar",
}

func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

// Label returns the display name for the day.
func (d Weekday) Label() string {
	if !d.Valid() {
		return weekdayLabels[Monday]
	}
	return weekdayLabels[d]
}

// WeekdayOf maps a wall-clock time to its Weekday. time.Weekday counts
// Sunday as 0, our week starts on Monday.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// ParseWeekday resolves a display label back to its Weekday.
func ParseWeekday(label string) (Weekday, bool) {
	for d, l := range weekdayLabels {
		if l == label {
			return Weekday(d), true
		}
	}
	return Monday, false
}
