package family

import (
	"context"
	"testing"

	"github.com/mesikahq/family-health/internal/activity"
)

type fixedCounter struct {
	counts map[int64]int
}

func (c *fixedCounter) CountByFamilyMember(_ context.Context, memberID int64) int {
	return c.counts[memberID]
}

func newTestService() Service {
	records := &fixedCounter{counts: map[int64]int{1: 2}}
	meds := &fixedCounter{counts: map[int64]int{1: 3}}
	appts := &fixedCounter{counts: map[int64]int{1: 1}}
	return NewService(NewStore(), activity.NewService(10), records, meds, appts)
}

func validMember() *FamilyMember {
	return &FamilyMember{
		FullName:     "Jane Doe",
		RelationType: "Spouse",
		PhoneNumber:  "555-0102",
	}
}

func TestCreateFamilyMember(t *testing.T) {
	svc := newTestService()
	m := validMember()

	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestCreateFamilyMember_Validation(t *testing.T) {
	svc := newTestService()

	m := validMember()
	m.FullName = ""
	if err := svc.Create(context.Background(), m); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	m = validMember()
	m.RelationType = ""
	if err := svc.Create(context.Background(), m); err != ErrRelationRequired {
		t.Fatalf("expected ErrRelationRequired, got %v", err)
	}

	members, _ := svc.List(context.Background())
	if len(members) != 0 {
		t.Fatal("failed creates must not mutate the list")
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := newTestService()
	names := []string{"John Doe", "Jane Doe", "Jimmy Doe"}
	for _, name := range names {
		m := validMember()
		m.FullName = name
		if err := svc.Create(context.Background(), m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	members, _ := svc.List(context.Background())
	if len(members) != 3 {
		t.Fatalf("list length = %d, want 3", len(members))
	}
	for i, name := range names {
		if members[i].FullName != name {
			t.Errorf("position %d = %q, want %q", i, members[i].FullName, name)
		}
	}
}

func TestUpdateFamilyMember_MissingIDSignalsNotFound(t *testing.T) {
	svc := newTestService()
	m := validMember()
	m.ID = 999

	if err := svc.Update(context.Background(), m); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFamilyMember_MissingIDIsNoOp(t *testing.T) {
	svc := newTestService()
	m := validMember()
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), 999); err != nil {
		t.Fatalf("delete of unknown ID should be a no-op, got %v", err)
	}
	members, _ := svc.List(context.Background())
	if len(members) != 1 {
		t.Fatalf("list length = %d, want 1", len(members))
	}
}

func TestCreateThenDeleteRoundTrip(t *testing.T) {
	svc := newTestService()
	keep := validMember()
	if err := svc.Create(context.Background(), keep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, _ := svc.List(context.Background())

	transient := validMember()
	transient.FullName = "Transient Member"
	if err := svc.Create(context.Background(), transient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), transient.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := svc.List(context.Background())
	if len(after) != len(before) {
		t.Fatalf("list length = %d, want %d", len(after), len(before))
	}
	for i := range after {
		if after[i].ID != before[i].ID || after[i].FullName != before[i].FullName {
			t.Errorf("entry %d changed after round trip", i)
		}
	}
}

func TestMemberName(t *testing.T) {
	svc := newTestService()
	m := validMember()
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, err := svc.MemberName(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", name)
	}

	if _, err := svc.MemberName(context.Background(), 999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountsAreDerived(t *testing.T) {
	svc := newTestService()
	m := validMember()
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts, err := svc.Counts(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.HealthRecords != 2 || counts.Medications != 3 || counts.Appointments != 1 {
		t.Errorf("counts = %+v, want {2 3 1}", counts)
	}
}

func TestCounts_MissingMember(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Counts(context.Background(), 999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
