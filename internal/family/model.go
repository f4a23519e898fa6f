package family

import (
	"time"
)

// FamilyMember is one person whose health information is tracked on the
// dashboard. RelationType is free text ("Spouse", "Child", ...).
type FamilyMember struct {
	ID               int64      `json:"id" yaml:"id"`
	FullName         string     `json:"full_name" yaml:"full_name"`
	RelationType     string     `json:"relation_type" yaml:"relation_type"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	PhoneNumber      string     `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	EmergencyContact bool       `json:"emergency_contact" yaml:"emergency_contact"`
	Notes            string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" yaml:"updated_at"`
}

// MemberCounts are the per-member rollups shown on the family cards. They
// are always derived from the authoritative lists, never stored.
type MemberCounts struct {
	HealthRecords int `json:"health_records"`
	Medications   int `json:"medications"`
	Appointments  int `json:"appointments"`
}

// Validate performs basic validation of family member data.
func (m *FamilyMember) Validate() error {
	if m.FullName == "" {
		return ErrNameRequired
	}
	if m.RelationType == "" {
		return ErrRelationRequired
	}
	return nil
}
