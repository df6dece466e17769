package domain

import (
	"time"

	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// AppointmentStatus represents the status of an appointment in the shop backend
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentApproved  AppointmentStatus = "Approved"
	AppointmentRejected  AppointmentStatus = "Rejected"
	AppointmentCancelled AppointmentStatus = "Cancelled"
	AppointmentCompleted AppointmentStatus = "Completed"
)

// Appointment is an existing booking at a shop, as seen from the backend
type Appointment struct {
	ID              int64
	ShopUsername    string
	ClientName      string
	ClientEmail     string
	PhoneNumber     string
	Date            time.Time
	StartTime       types.TimeString
	Services        []ServiceLine
	Status          AppointmentStatus
	RejectionReason *string
}

// IsActive returns true if the appointment still occupies slots
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentApproved
}

// TotalDurationMinutes returns the summed duration of all service lines
func (a *Appointment) TotalDurationMinutes() int {
	total := 0
	for _, l := range a.Services {
		total += l.TotalMinutes()
	}
	return total
}

// Window returns the reservation window the appointment occupies
func (a *Appointment) Window() ReservationWindow {
	return NewReservationWindow(a.StartTime, a.TotalDurationMinutes())
}
