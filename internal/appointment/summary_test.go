package appointment

import (
	"testing"
	"time"
)

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, time.Now())
	if sum.Total != 0 || sum.Upcoming != 0 || sum.Today != 0 || sum.ThisWeek != 0 || sum.Overdue != 0 {
		t.Fatalf("expected all-zero summary, got %+v", sum)
	}
}

func TestSummarizeCounts(t *testing.T) {
	// Wednesday noon, fixed zone so calendar buckets are deterministic.
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	appts := []Appointment{
		{ID: "1", DateTime: now.AddDate(0, 0, -1), Status: StatusScheduled, Type: TypeDental},
		{ID: "2", DateTime: now.AddDate(0, 0, 1), Status: StatusConfirmed, Type: TypeGeneralCheckup},
		{ID: "3", DateTime: now.Add(-2 * time.Hour), Status: StatusCompleted, Type: TypeDental},
	}

	sum := Summarize(appts, now)

	if sum.Total != 3 {
		t.Errorf("total = %d, want 3", sum.Total)
	}
	if sum.Today != 1 {
		t.Errorf("today = %d, want 1 (id 3)", sum.Today)
	}
	if sum.Upcoming != 1 {
		t.Errorf("upcoming = %d, want 1 (id 2)", sum.Upcoming)
	}
	if sum.Overdue != 1 {
		t.Errorf("overdue = %d, want 1 (id 1)", sum.Overdue)
	}
	if sum.ByStatus[StatusScheduled] != 1 || sum.ByStatus[StatusConfirmed] != 1 || sum.ByStatus[StatusCompleted] != 1 {
		t.Errorf("byStatus = %v", sum.ByStatus)
	}
	if sum.ByType[TypeDental] != 2 {
		t.Errorf("byType[Dental] = %d, want 2", sum.ByType[TypeDental])
	}
}

// upcoming plus its complement (past-or-now, or cancelled) partitions the
// whole list.
func TestSummarizePartitionProperty(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	appts := []Appointment{
		{ID: "1", DateTime: now.AddDate(0, 0, -3), Status: StatusScheduled},
		{ID: "2", DateTime: now.AddDate(0, 0, 2), Status: StatusConfirmed},
		{ID: "3", DateTime: now.AddDate(0, 0, 4), Status: StatusCancelled},
		{ID: "4", DateTime: now.Add(-time.Minute), Status: StatusCompleted},
		{ID: "5", DateTime: now.Add(time.Minute), Status: StatusScheduled},
	}

	sum := Summarize(appts, now)

	complement := 0
	for _, a := range appts {
		if !a.DateTime.After(now) || a.Status == StatusCancelled {
			complement++
		}
	}
	if sum.Upcoming+complement != sum.Total {
		t.Fatalf("partition violated: upcoming=%d complement=%d total=%d",
			sum.Upcoming, complement, sum.Total)
	}
}

func TestSummarizeOverdueTracksStatus(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	appts := []Appointment{
		{ID: "1", DateTime: now.AddDate(0, 0, -2), Status: StatusScheduled},
		{ID: "2", DateTime: now.AddDate(0, 0, -1), Status: StatusScheduled},
	}

	before := Summarize(appts, now)
	if before.Overdue != 2 {
		t.Fatalf("overdue = %d, want 2", before.Overdue)
	}

	// Confirming one removes it from overdue without changing total or
	// today.
	appts[0].Status = StatusConfirmed
	after := Summarize(appts, now)
	if after.Overdue != 1 {
		t.Errorf("overdue = %d after status change, want 1", after.Overdue)
	}
	if after.Total != before.Total || after.Today != before.Today {
		t.Errorf("unrelated counts changed: before=%+v after=%+v", before, after)
	}
}

func TestSummarizeOverdueAndTodayOverlap(t *testing.T) {
	now := time.Date(2026, 8, 26, 18, 0, 0, 0, time.UTC)

	// This morning, still Scheduled: counts as both today and overdue.
	appts := []Appointment{
		{ID: "1", DateTime: now.Add(-8 * time.Hour), Status: StatusScheduled},
	}

	sum := Summarize(appts, now)
	if sum.Today != 1 || sum.Overdue != 1 {
		t.Fatalf("expected today=1 overdue=1, got today=%d overdue=%d", sum.Today, sum.Overdue)
	}
}

func TestSummarizeThisWeekISOBoundaries(t *testing.T) {
	// Wednesday 2026-08-26; ISO week runs Monday 08-24 through Sunday 08-30.
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	appts := []Appointment{
		{ID: "mon", DateTime: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), Status: StatusScheduled},
		{ID: "sun", DateTime: time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC), Status: StatusScheduled},
		{ID: "prev-sun", DateTime: time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC), Status: StatusScheduled},
		{ID: "next-mon", DateTime: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), Status: StatusScheduled},
	}

	sum := Summarize(appts, now)
	if sum.ThisWeek != 2 {
		t.Fatalf("thisWeek = %d, want 2 (Monday start through Sunday end)", sum.ThisWeek)
	}
}

func TestStartOfISOWeek(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		// Monday maps to itself.
		{time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
		// Sunday belongs to the week that started six days earlier.
		{time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := startOfISOWeek(tc.in); !got.Equal(tc.want) {
			t.Errorf("startOfISOWeek(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
