package healthrecord

import (
	"time"
)

// HealthRecord is one dated entry in a family member's medical history
// (diagnosis, lab result, vaccination, ...). RecordType, severity and
// status are free text.
type HealthRecord struct {
	ID             int64     `json:"id" yaml:"id"`
	FamilyMemberID int64     `json:"family_member_id" yaml:"family_member_id"`
	RecordType     string    `json:"record_type" yaml:"record_type"`
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description,omitempty" yaml:"description,omitempty"`
	DateRecorded   time.Time `json:"date_recorded" yaml:"date_recorded"`
	DoctorName     string    `json:"doctor_name,omitempty" yaml:"doctor_name,omitempty"`
	HospitalClinic string    `json:"hospital_clinic,omitempty" yaml:"hospital_clinic,omitempty"`
	Severity       string    `json:"severity,omitempty" yaml:"severity,omitempty"`
	Status         string    `json:"status,omitempty" yaml:"status,omitempty"`
	Notes          string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

func (r *HealthRecord) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	if r.RecordType == "" {
		return ErrTypeRequired
	}
	if r.FamilyMemberID == 0 {
		return ErrMemberRequired
	}
	if r.DateRecorded.IsZero() {
		return ErrDateRequired
	}
	return nil
}
