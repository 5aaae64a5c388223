package model

import (
	"strings"
	"time"
)

// StatusPending is the status every new appointment starts in, regardless of
// what the public caller submits.
const StatusPending = "pending"

// Appointment is a consultation request submitted from the public site.
type Appointment struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateAppointmentRequest is the public intake payload. The frontend has
// shipped both "name" and "fullName" over time, so both are accepted.
// Status is accepted but ignored: intake may not pre-approve itself.
type CreateAppointmentRequest struct {
	Name          string `json:"name"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
	Status        string `json:"status"`
}

// Appointment normalizes the request into an Appointment: the name alias is
// resolved, required fields are trimmed, optional fields default to "", and
// status is forced to pending. Returns ok=false if name, email or phone is
// empty after normalization.
func (r CreateAppointmentRequest) Appointment() (Appointment, bool) {
	name := ResolveName(r.Name, r.FullName)
	email := strings.TrimSpace(r.Email)
	phone := strings.TrimSpace(r.Phone)

	if name == "" || email == "" || phone == "" {
		return Appointment{}, false
	}

	return Appointment{
		Name:          name,
		Email:         email,
		Phone:         phone,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		Message:       r.Message,
		Status:        StatusPending,
	}, true
}

// AppointmentPatch is the admin update payload. Unlike intake, status is
// honored here.
type AppointmentPatch struct {
	Name          *string `json:"name"`
	FullName      *string `json:"fullName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	PreferredDate *string `json:"preferredDate"`
	PreferredTime *string `json:"preferredTime"`
	Message       *string `json:"message"`
	Status        *string `json:"status"`
}

// ResolvedName collapses the name/fullName alias pair into the single name
// column value, or nil when neither field was submitted.
func (p AppointmentPatch) ResolvedName() *string {
	if p.Name == nil && p.FullName == nil {
		return nil
	}
	var name, fullName string
	if p.Name != nil {
		name = *p.Name
	}
	if p.FullName != nil {
		fullName = *p.FullName
	}
	resolved := ResolveName(name, fullName)
	return &resolved
}

// ResolveName returns the first non-empty of name and fullName after
// trimming whitespace.
func ResolveName(name, fullName string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return strings.TrimSpace(fullName)
}
