package appointment

import (
	"time"
)

type Type string

const (
	TypeGeneralCheckup  Type = "General Checkup"
	TypeSpecialistVisit Type = "Specialist Visit"
	TypeEmergency       Type = "Emergency"
	TypeDental          Type = "Dental"
	TypeEyeExam         Type = "Eye Exam"
	TypePhysicalTherapy Type = "Physical Therapy"
	TypeMentalHealth    Type = "Mental Health"
	TypeVaccination     Type = "Vaccination"
	TypeLaboratory      Type = "Laboratory"
	TypeImaging         Type = "Imaging"
	TypeSurgery         Type = "Surgery"
	TypeFollowUp        Type = "Follow-up"
	TypeTelemedicine    Type = "Telemedicine"
	TypeOther           Type = "Other"
)

var validTypes = map[Type]bool{
	TypeGeneralCheckup: true, TypeSpecialistVisit: true, TypeEmergency: true,
	TypeDental: true, TypeEyeExam: true, TypePhysicalTherapy: true,
	TypeMentalHealth: true, TypeVaccination: true, TypeLaboratory: true,
	TypeImaging: true, TypeSurgery: true, TypeFollowUp: true,
	TypeTelemedicine: true, TypeOther: true,
}

type Status string

const (
	StatusScheduled   Status = "Scheduled"
	StatusConfirmed   Status = "Confirmed"
	StatusCancelled   Status = "Cancelled"
	StatusCompleted   Status = "Completed"
	StatusNoShow      Status = "No-Show"
	StatusRescheduled Status = "Rescheduled"
)

var validStatuses = map[Status]bool{
	StatusScheduled: true, StatusConfirmed: true, StatusCancelled: true,
	StatusCompleted: true, StatusNoShow: true, StatusRescheduled: true,
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true, PriorityUrgent: true,
}

type LocationType string

const (
	LocationInPerson     LocationType = "In-Person"
	LocationTelemedicine LocationType = "Telemedicine"
	LocationHomeVisit    LocationType = "Home Visit"
)

// Provider is the embedded health provider record on an appointment.
type Provider struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Specialty string  `json:"specialty" yaml:"specialty"`
	Phone     string  `json:"phone" yaml:"phone"`
	Email     string  `json:"email,omitempty" yaml:"email,omitempty"`
	Address   string  `json:"address" yaml:"address"`
	Rating    float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// Location is discriminated by Type; the remaining fields only apply to
// some kinds (Address/Room for in-person, MeetingLink/Platform for
// telemedicine).
type Location struct {
	Type        LocationType `json:"type" yaml:"type"`
	Address     string       `json:"address,omitempty" yaml:"address,omitempty"`
	Room        string       `json:"room,omitempty" yaml:"room,omitempty"`
	MeetingLink string       `json:"meeting_link,omitempty" yaml:"meeting_link,omitempty"`
	Platform    string       `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// Appointment is a scheduled visit for one family member. DateTime is kept
// in UTC; FamilyMemberName is denormalized for display and search.
type Appointment struct {
	ID               string    `json:"id" yaml:"id"`
	Title            string    `json:"title" yaml:"title"`
	Type             Type      `json:"type" yaml:"type"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	FamilyMemberID   int64     `json:"family_member_id" yaml:"family_member_id"`
	FamilyMemberName string    `json:"family_member_name" yaml:"family_member_name"`
	Provider         Provider  `json:"provider" yaml:"provider"`
	DateTime         time.Time `json:"date_time" yaml:"date_time"`
	Duration         int       `json:"duration" yaml:"duration"`
	Location         Location  `json:"location" yaml:"location"`
	Status           Status    `json:"status" yaml:"status"`
	Priority         Priority  `json:"priority" yaml:"priority"`
	ReminderSet      bool      `json:"reminder_set" yaml:"reminder_set"`
	ReminderTime     int       `json:"reminder_time,omitempty" yaml:"reminder_time,omitempty"`
	Notes            string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	FollowUpRequired bool      `json:"follow_up_required" yaml:"follow_up_required"`
	Cost             float64   `json:"cost,omitempty" yaml:"cost,omitempty"`
	InsuranceCovered bool      `json:"insurance_covered" yaml:"insurance_covered"`
	CreatedAt        time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" yaml:"updated_at"`
}

func (a *Appointment) Validate() error {
	if a.Title == "" {
		return ErrTitleRequired
	}
	if a.FamilyMemberID == 0 {
		return ErrMemberRequired
	}
	if a.DateTime.IsZero() {
		return ErrDateTimeRequired
	}
	if a.Type != "" && !validTypes[a.Type] {
		return ErrInvalidType
	}
	if a.Status != "" && !validStatuses[a.Status] {
		return ErrInvalidStatus
	}
	if a.Priority != "" && !validPriorities[a.Priority] {
		return ErrInvalidPriority
	}
	return nil
}
