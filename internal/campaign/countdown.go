package campaign

import "time"

// Countdown selector values.
const (
	CountdownMothersDayUK = "mothers-day-uk"
	CountdownValentines   = "valentines"
	CountdownNone         = "none"
)

// EasterSunday returns Easter Sunday (Gregorian) for the given year, at
// midnight UTC. Anonymous Gregorian Computus (Meeus variant).
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MothersDayUK returns Mothering Sunday for the given year, defined here as
// 14 days before Easter Sunday (4th Sunday of Lent). The legacy browser
// countdown script used 21 days instead; that discrepancy is tracked in
// DESIGN.md rather than reconciled here.
func MothersDayUK(year int) time.Time {
	return EasterSunday(year).AddDate(0, 0, -14)
}

// CountdownDays returns the whole days from now until the campaign's target
// date, rolling over to next year when this year's date has passed. The
// second return is false when the campaign has no countdown.
func (c *Config) CountdownDays(now time.Time) (int, bool) {
	t := c.CountdownType
	if t == "" {
		t = CountdownMothersDayUK
	}
	switch t {
	case CountdownValentines:
		return daysUntil(now, func(year int) time.Time {
			return time.Date(year, time.February, 14, 0, 0, 0, 0, time.UTC)
		}), true
	case CountdownMothersDayUK:
		return daysUntil(now, MothersDayUK), true
	default:
		return 0, false
	}
}

func daysUntil(now time.Time, target func(year int) time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := target(today.Year())
	if next.Before(today) {
		next = target(today.Year() + 1)
	}
	days := int(next.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
