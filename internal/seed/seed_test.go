package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesikahq/family-health/internal/activity"
	"github.com/mesikahq/family-health/internal/appointment"
	"github.com/mesikahq/family-health/internal/family"
	"github.com/mesikahq/family-health/internal/healthrecord"
	"github.com/mesikahq/family-health/internal/medication"
	"github.com/mesikahq/family-health/internal/profile"
)

const sampleSeed = `
profile:
  email: demo@phrm.com
  first_name: John
  last_name: Doe

family_members:
  - full_name: John Doe
    relation_type: Self
  - full_name: Jane Doe
    relation_type: Spouse
    emergency_contact: true

medications:
  - family_member_id: 1
    name: Lisinopril
    dosage: 10mg
    frequency: Once daily
    is_active: true

appointments:
  - title: Annual Physical
    family_member_id: 2
    date_time: 2026-09-15T10:00:00Z

health_records:
  - family_member_id: 1
    record_type: Lab Result
    title: Blood Panel
    date_recorded: 2026-03-10T00:00:00Z
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	data, err := Load(writeSeedFile(t, sampleSeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Profile == nil || data.Profile.Email != "demo@phrm.com" {
		t.Error("profile not parsed")
	}
	if len(data.FamilyMembers) != 2 || len(data.Medications) != 1 ||
		len(data.Appointments) != 1 || len(data.HealthRecords) != 1 {
		t.Errorf("wrong section sizes: %+v", data)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeSeedFile(t, "family_members: {not a list")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestApplyAssignsPositionalMemberIDs(t *testing.T) {
	data, err := Load(writeSeedFile(t, sampleSeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	act := activity.NewService(50)
	profiles := profile.NewService(act)
	records := healthrecord.NewService(healthrecord.NewStore(), act)
	meds := medication.NewService(medication.NewStore(), act)

	var appts appointment.Service
	families := family.NewService(family.NewStore(), act, records, meds,
		counterFunc(func(ctx context.Context, id int64) int {
			return appts.CountByFamilyMember(ctx, id)
		}))
	appts = appointment.NewService(appointment.NewStore(), act, families)

	if err := Apply(context.Background(), data, profiles, families, meds, appts, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	members, _ := families.List(context.Background())
	if len(members) != 2 || members[0].ID != 1 || members[1].ID != 2 {
		t.Fatalf("members not created with positional IDs: %+v", members)
	}

	// References by position resolve to real members after seeding.
	appointments, _ := appts.List(context.Background(), appointment.Filters{})
	if len(appointments) != 1 {
		t.Fatalf("got %d appointments, want 1", len(appointments))
	}
	if appointments[0].FamilyMemberName != "Jane Doe" {
		t.Errorf("member name = %q, want Jane Doe", appointments[0].FamilyMemberName)
	}

	if _, err := profiles.Get(context.Background()); err != nil {
		t.Errorf("profile not initialized: %v", err)
	}
}

func TestApplyRejectsInvalidRecords(t *testing.T) {
	bad := `
family_members:
  - full_name: ""
    relation_type: Self
`
	data, err := Load(writeSeedFile(t, bad))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	act := activity.NewService(10)
	profiles := profile.NewService(act)
	records := healthrecord.NewService(healthrecord.NewStore(), act)
	meds := medication.NewService(medication.NewStore(), act)
	families := family.NewService(family.NewStore(), act, records, meds,
		counterFunc(func(context.Context, int64) int { return 0 }))
	appts := appointment.NewService(appointment.NewStore(), act, families)

	if err := Apply(context.Background(), data, profiles, families, meds, appts, records); err == nil {
		t.Fatal("expected a validation error from the family service")
	}
}

type counterFunc func(ctx context.Context, memberID int64) int

func (f counterFunc) CountByFamilyMember(ctx context.Context, memberID int64) int {
	return f(ctx, memberID)
}
