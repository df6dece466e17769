package domain

import (
	"time"

	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// SessionState represents the lifecycle stage of an edit session
type SessionState string

const (
	// SessionIdle - created but the client has not entered editing yet
	SessionIdle SessionState = "idle"
	// SessionEditing - the client is changing date, time or services
	SessionEditing SessionState = "editing"
	// SessionConfirmed - changes are frozen into a snapshot, not yet sent
	SessionConfirmed SessionState = "confirmed"
	// SessionSubmitted - the change request was accepted by the backend
	SessionSubmitted SessionState = "submitted"
)

// EditSession is an OTP-authorized editing session over one appointment.
// Original* hold the appointment as it was when the session started,
// Edit* hold the client's working copy, Changed* hold the confirmed
// snapshot of what actually differs (nil = unchanged).
type EditSession struct {
	ID            int64
	Token         string
	ShopUsername  string
	PhoneNumber   string
	AppointmentID int64
	ClientName    string
	ClientEmail   string
	State         SessionState

	OriginalDate     time.Time
	OriginalTime     types.TimeString
	OriginalServices []ServiceLine

	EditDate     time.Time
	EditTime     types.TimeString // zero = no slot selected
	EditServices []ServiceLine

	ChangedDate     *time.Time
	ChangedTime     *types.TimeString
	ChangedServices []ServiceLine

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanEdit returns true if the session accepts mutations
func (s *EditSession) CanEdit() bool {
	return s.State == SessionEditing
}

// CanConfirm returns true if the session can freeze its changes
func (s *EditSession) CanConfirm() bool {
	return s.State == SessionEditing
}

// CanFinish returns true if the session is confirmed and has something to submit
func (s *EditSession) CanFinish() bool {
	return s.State == SessionConfirmed && s.HasChanges()
}

// HasChanges returns true if the confirmed snapshot differs from the original
func (s *EditSession) HasChanges() bool {
	return s.ChangedDate != nil || s.ChangedTime != nil || s.ChangedServices != nil
}

// HasSelection returns true if a slot is currently picked
func (s *EditSession) HasSelection() bool {
	return !s.EditTime.IsZero()
}

// DateChanged returns true if the working date differs from the original
func (s *EditSession) DateChanged() bool {
	return !SameDay(s.EditDate, s.OriginalDate)
}

// TimeChanged returns true if a slot is picked and differs from the
// original start time on the original date. A picked time on another
// date always counts as changed.
func (s *EditSession) TimeChanged() bool {
	if s.EditTime.IsZero() {
		return false
	}
	return s.DateChanged() || s.EditTime != s.OriginalTime
}

// ServicesChanged returns true if the working service list differs from
// the original in membership or quantity. Order is not significant.
func (s *EditSession) ServicesChanged() bool {
	if len(s.EditServices) != len(s.OriginalServices) {
		return true
	}
	byID := make(map[int64]int, len(s.OriginalServices))
	for _, l := range s.OriginalServices {
		byID[l.ServiceID] = l.Quantity
	}
	for _, l := range s.EditServices {
		qty, ok := byID[l.ServiceID]
		if !ok || qty != l.Quantity {
			return true
		}
	}
	return false
}

// EditTotalMinutes returns the total duration of the working service list
func (s *EditSession) EditTotalMinutes() int {
	total := 0
	for _, l := range s.EditServices {
		total += l.TotalMinutes()
	}
	return total
}

// SameDay reports whether two instants fall on the same civil date in
// the business zone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(BusinessZone).Date()
	by, bm, bd := b.In(BusinessZone).Date()
	return ay == by && am == bm && ad == bd
}
