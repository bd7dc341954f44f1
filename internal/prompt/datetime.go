package prompt

import "time"

// DayFraction is a quarter of the day.
type DayFraction int

// Day fractions.
const (
	Dawn      DayFraction = iota // 00h00m to 05h59m
	Morning                      // 06h00m to 11h59m
	Afternoon                    // 12h00m to 17h59m
	Night                        // 18h00m to 23h59m
)

// FractionOf returns the day fraction t falls in.
func FractionOf(t time.Time) DayFraction {
	switch hour := t.Hour(); {
	case hour < 6:
		return Dawn
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Night
	}
}

// DayOrdinal returns the English ordinal suffix of a day of the month.
func DayOrdinal(day int) string {
	if teen := day % 100; teen >= 11 && teen <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// calendarDate formats t as "(Mon) Jan 02" followed by the day ordinal.
func calendarDate(t time.Time) string {
	return t.Format("(Mon) Jan 02") + DayOrdinal(t.Day())
}

// clockTime formats t as a 24-hour "15h04m" clock.
func clockTime(t time.Time) string {
	return t.Format("15h04m")
}
