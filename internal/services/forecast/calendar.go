package forecast

import "time"

// NextBusinessDay advances from last by offset business days, counting
// only Monday through Friday. Weekends are the only skipped days; no
// holiday calendar is modeled.
func NextBusinessDay(last time.Time, offset int) time.Time {
	d := last
	for counted := 0; counted < offset; {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	return d
}
