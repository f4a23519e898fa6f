package appointment

import (
	"strings"
	"time"
)

// Filters is the sparse criteria set for the appointment list. Every field
// is optional; set fields combine with AND semantics.
type Filters struct {
	Search         string     `form:"search"`
	Status         Status     `form:"status"`
	Type           Type       `form:"type"`
	FamilyMemberID *int64     `form:"family_member_id"`
	Priority       Priority   `form:"priority"`
	Provider       string     `form:"provider"`
	From           *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To             *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// Filter returns the appointments satisfying all set criteria, keeping the
// input's relative order. An empty Filters value matches everything. Pure
// function: the input slice is never modified.
func Filter(appts []Appointment, f Filters) []Appointment {
	out := make([]Appointment, 0)
	for _, a := range appts {
		if matches(&a, &f) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a *Appointment, f *Filters) bool {
	if f.Search != "" && !matchesSearch(a, f.Search) {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.FamilyMemberID != nil && a.FamilyMemberID != *f.FamilyMemberID {
		return false
	}
	if f.Priority != "" && a.Priority != f.Priority {
		return false
	}
	if f.Provider != "" && a.Provider.Name != f.Provider {
		return false
	}
	if f.From != nil && a.DateTime.Before(*f.From) {
		return false
	}
	if f.To != nil && a.DateTime.After(*f.To) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the title,
// the assigned member's display name, the provider name and the type; any
// one field matching is enough.
func matchesSearch(a *Appointment, term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.FamilyMemberName), needle) ||
		strings.Contains(strings.ToLower(a.Provider.Name), needle) ||
		strings.Contains(strings.ToLower(string(a.Type)), needle)
}
