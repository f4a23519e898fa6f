package medication

import (
	"time"
)

// Medication is one prescription or supplement tracked for a family member.
// IsActive and EndDate are independently settable and deliberately not
// reconciled against each other.
type Medication struct {
	ID             int64      `json:"id" yaml:"id"`
	FamilyMemberID int64      `json:"family_member_id" yaml:"family_member_id"`
	Name           string     `json:"name" yaml:"name"`
	Dosage         string     `json:"dosage" yaml:"dosage"`
	Frequency      string     `json:"frequency" yaml:"frequency"`
	StartDate      time.Time  `json:"start_date" yaml:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	PrescribedBy   string     `json:"prescribed_by,omitempty" yaml:"prescribed_by,omitempty"`
	Purpose        string     `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	SideEffects    string     `json:"side_effects,omitempty" yaml:"side_effects,omitempty"`
	IsActive       bool       `json:"is_active" yaml:"is_active"`
	Notes          string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" yaml:"updated_at"`
}

// Summary backs the medication screen's rollup cards.
type Summary struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	EndingSoon int `json:"ending_soon"`
	Daily      int `json:"daily"`
}

func (m *Medication) Validate() error {
	if m.Name == "" {
		return ErrNameRequired
	}
	if m.Dosage == "" {
		return ErrDosageRequired
	}
	if m.Frequency == "" {
		return ErrFrequencyRequired
	}
	if m.FamilyMemberID == 0 {
		return ErrMemberRequired
	}
	return nil
}
