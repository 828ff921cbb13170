package holidays

import "time"

// Easter calculates Western (Gregorian) Easter Sunday using the
// Meeus/Jones/Butcher algorithm.
func Easter(year int) Date {
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
	day := ((h + l - 7*m + 114) % 31) + 1

	return NewDate(year, time.Month(month), day)
}

// OrthodoxEaster calculates Orthodox Easter Sunday using the Meeus Julian
// algorithm and converts the result to the Gregorian calendar.
func OrthodoxEaster(year int) Date {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := ((d + e + 114) % 31) + 1

	// Julian to Gregorian calendar offset
	offset := year/100 - year/400 - 2

	return NewDate(year, time.Month(month), day).AddDays(offset)
}
