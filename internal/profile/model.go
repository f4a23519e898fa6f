package profile

import (
	"time"
)

type Address struct {
	Street  string `json:"street,omitempty" yaml:"street,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" yaml:"zip_code,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name" yaml:"name"`
	Relationship string `json:"relationship" yaml:"relationship"`
	Phone        string `json:"phone" yaml:"phone"`
}

// MedicalInfo carries the free-growing self-reported lists shown on the
// profile screen.
type MedicalInfo struct {
	BloodType         string   `json:"blood_type,omitempty" yaml:"blood_type,omitempty"`
	Allergies         []string `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	ChronicConditions []string `json:"chronic_conditions,omitempty" yaml:"chronic_conditions,omitempty"`
	Medications       []string `json:"medications,omitempty" yaml:"medications,omitempty"`
}

type Notifications struct {
	Email bool `json:"email" yaml:"email"`
	SMS   bool `json:"sms" yaml:"sms"`
	Push  bool `json:"push" yaml:"push"`
}

type Preferences struct {
	Theme         string        `json:"theme,omitempty" yaml:"theme,omitempty"`
	Notifications Notifications `json:"notifications" yaml:"notifications"`
}

// UserProfile is the account holder's own record. Email is immutable once
// the profile exists.
type UserProfile struct {
	ID               string            `json:"id" yaml:"id"`
	Email            string            `json:"email" yaml:"email"`
	FirstName        string            `json:"first_name" yaml:"first_name"`
	LastName         string            `json:"last_name" yaml:"last_name"`
	DateOfBirth      *time.Time        `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	Gender           string            `json:"gender,omitempty" yaml:"gender,omitempty"`
	Phone            string            `json:"phone,omitempty" yaml:"phone,omitempty"`
	Address          *Address          `json:"address,omitempty" yaml:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty" yaml:"emergency_contact,omitempty"`
	MedicalInfo      *MedicalInfo      `json:"medical_info,omitempty" yaml:"medical_info,omitempty"`
	Avatar           string            `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Preferences      *Preferences      `json:"preferences,omitempty" yaml:"preferences,omitempty"`
	CreatedAt        time.Time         `json:"created_at" yaml:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" yaml:"updated_at"`
}

// clone returns a copy sharing no pointers with the receiver, so callers
// can mutate what they get back without reaching the stored record.
func (p *UserProfile) clone() *UserProfile {
	cp := *p
	if p.DateOfBirth != nil {
		d := *p.DateOfBirth
		cp.DateOfBirth = &d
	}
	if p.Address != nil {
		a := *p.Address
		cp.Address = &a
	}
	if p.EmergencyContact != nil {
		e := *p.EmergencyContact
		cp.EmergencyContact = &e
	}
	if p.MedicalInfo != nil {
		mi := *p.MedicalInfo
		mi.Allergies = append([]string(nil), p.MedicalInfo.Allergies...)
		mi.ChronicConditions = append([]string(nil), p.MedicalInfo.ChronicConditions...)
		mi.Medications = append([]string(nil), p.MedicalInfo.Medications...)
		cp.MedicalInfo = &mi
	}
	if p.Preferences != nil {
		pr := *p.Preferences
		cp.Preferences = &pr
	}
	return &cp
}

// UpdateRequest carries the updatable profile fields. Email is not among
// them. Nil fields are left unchanged.
type UpdateRequest struct {
	FirstName        *string           `json:"first_name,omitempty"`
	LastName         *string           `json:"last_name,omitempty"`
	DateOfBirth      *time.Time        `json:"date_of_birth,omitempty"`
	Gender           *string           `json:"gender,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
	MedicalInfo      *MedicalInfo      `json:"medical_info,omitempty"`
	Avatar           *string           `json:"avatar,omitempty"`
	Preferences      *Preferences      `json:"preferences,omitempty"`
}
