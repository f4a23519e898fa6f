package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesikahq/family-health/internal/appointment"
	"github.com/mesikahq/family-health/internal/family"
	"github.com/mesikahq/family-health/internal/healthrecord"
	"github.com/mesikahq/family-health/internal/medication"
	"github.com/mesikahq/family-health/internal/profile"
)

// Data is the demo dataset loaded at startup in demo mode. Family members
// are created in file order and receive IDs 1..n, so the family_member_id
// references in the other sections are positions in the members list.
type Data struct {
	Profile       *profile.UserProfile        `yaml:"profile"`
	FamilyMembers []family.FamilyMember       `yaml:"family_members"`
	Medications   []medication.Medication     `yaml:"medications"`
	Appointments  []appointment.Appointment   `yaml:"appointments"`
	HealthRecords []healthrecord.HealthRecord `yaml:"health_records"`
}

func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

// Apply pushes the dataset through the regular services so validation and
// ID assignment behave exactly as for user-entered data.
func Apply(
	ctx context.Context,
	data *Data,
	profiles profile.Service,
	families family.Service,
	medications medication.Service,
	appointments appointment.Service,
	records healthrecord.Service,
) error {
	if data.Profile != nil {
		if err := profiles.Initialize(ctx, data.Profile); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
	}
	for i := range data.FamilyMembers {
		if err := families.Create(ctx, &data.FamilyMembers[i]); err != nil {
			return fmt.Errorf("seed family member %q: %w", data.FamilyMembers[i].FullName, err)
		}
	}
	for i := range data.Medications {
		if err := medications.Create(ctx, &data.Medications[i]); err != nil {
			return fmt.Errorf("seed medication %q: %w", data.Medications[i].Name, err)
		}
	}
	for i := range data.Appointments {
		if err := appointments.Create(ctx, &data.Appointments[i]); err != nil {
			return fmt.Errorf("seed appointment %q: %w", data.Appointments[i].Title, err)
		}
	}
	for i := range data.HealthRecords {
		if err := records.Create(ctx, &data.HealthRecords[i]); err != nil {
			return fmt.Errorf("seed health record %q: %w", data.HealthRecords[i].Title, err)
		}
	}
	return nil
}
