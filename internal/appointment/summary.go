package appointment

import (
	"time"
)

// Summary holds the dashboard rollup counts. The buckets are not disjoint:
// a past Scheduled appointment from this morning counts as both today and
// overdue.
type Summary struct {
	Total    int            `json:"total"`
	Upcoming int            `json:"upcoming"`
	Today    int            `json:"today"`
	ThisWeek int            `json:"this_week"`
	Overdue  int            `json:"overdue"`
	ByStatus map[Status]int `json:"by_status"`
	ByType   map[Type]int   `json:"by_type"`
}

// Summarize reduces the unfiltered appointment list to the dashboard
// counts in a single pass. Calendar buckets (today, this week) are
// evaluated in now's location; the week runs Monday 00:00 to the next
// Monday (ISO convention).
func Summarize(appts []Appointment, now time.Time) *Summary {
	sum := &Summary{
		ByStatus: make(map[Status]int),
		ByType:   make(map[Type]int),
	}

	loc := now.Location()
	weekStart := startOfISOWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	for _, a := range appts {
		sum.Total++
		sum.ByStatus[a.Status]++
		sum.ByType[a.Type]++

		local := a.DateTime.In(loc)

		if a.DateTime.After(now) && a.Status != StatusCancelled {
			sum.Upcoming++
		}
		if sameDay(local, now) {
			sum.Today++
		}
		if !local.Before(weekStart) && local.Before(weekEnd) {
			sum.ThisWeek++
		}
		if a.DateTime.Before(now) && a.Status == StatusScheduled {
			sum.Overdue++
		}
	}
	return sum
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfISOWeek returns Monday 00:00 of t's week in t's location.
func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	y, m, d := t.AddDate(0, 0, 1-weekday).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
