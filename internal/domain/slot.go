package domain

import "github.com/avdeez/Shop-SchedulerService/pkg/types"

// SlotStatus represents the availability of a single slot in the grid
type SlotStatus string

const (
	// SlotFree - the slot can be selected
	SlotFree SlotStatus = "free"
	// SlotOccupied - an existing booking covers the slot start
	SlotOccupied SlotStatus = "occupied"
	// SlotBooked - the slot belongs to the client's current selection
	SlotBooked SlotStatus = "booked"
)

// TimeSlot is one cell of the availability grid
type TimeSlot struct {
	Time   types.TimeString
	Status SlotStatus
}

// IsFree returns true if the slot can be selected
func (s TimeSlot) IsFree() bool {
	return s.Status == SlotFree
}

// IsOccupied returns true if an existing booking covers the slot
func (s TimeSlot) IsOccupied() bool {
	return s.Status == SlotOccupied
}

// IsBooked returns true if the slot is part of the current selection
func (s TimeSlot) IsBooked() bool {
	return s.Status == SlotBooked
}

// WorkingInterval is a single open interval of a shop's working day
type WorkingInterval struct {
	Open  types.TimeString
	Close types.TimeString
}

// ReservationWindow is the half-open time range [Start, End) occupied by
// a booking. End may pass midnight ("24:30") for bookings that run past
// closing, comparisons still work because TimeString allows hours >= 24.
type ReservationWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// NewReservationWindow builds the window for a booking starting at start
// with the given total duration. A non-positive duration produces an
// empty window that contains nothing.
func NewReservationWindow(start types.TimeString, totalMinutes int) ReservationWindow {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	end, err := start.AddMinutes(totalMinutes)
	if err != nil {
		end = start
	}
	return ReservationWindow{Start: start, End: end}
}

// Contains reports whether a slot starting at t falls inside the window.
// The range is half-open: the slot at End is not covered.
func (w ReservationWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Start) && t.IsBefore(w.End)
}

// IsEmpty returns true if the window covers no time at all
func (w ReservationWindow) IsEmpty() bool {
	return !w.Start.IsBefore(w.End)
}
