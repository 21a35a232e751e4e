// Package policy holds the pure rules deciding who may move a reservation where, and when.
package policy

import (
	"time"

	"cozycup/internal/domain/reservation"
)

type edge struct {
	from reservation.Status
	to   reservation.Status
}

var transitions = map[reservation.Kind]map[edge]struct{}{
	reservation.KindOrder: {
		{reservation.StatusConfirmed, reservation.StatusInPrep}:    {},
		{reservation.StatusInPrep, reservation.StatusReady}:        {},
		{reservation.StatusReady, reservation.StatusPickedUp}:      {},
		{reservation.StatusConfirmed, reservation.StatusCancelled}: {},
	},
	reservation.KindBooking: {
		{reservation.StatusBooked, reservation.StatusCancelled}: {},
		{reservation.StatusBooked, reservation.StatusCheckedIn}: {},
	},
}

func IsLegalTransition(kind reservation.Kind, from, to reservation.Status) bool {
	_, ok := transitions[kind][edge{from, to}]
	return ok
}

// IsTerminal reports whether status has no outgoing edge for kind.
func IsTerminal(kind reservation.Kind, status reservation.Status) bool {
	for e := range transitions[kind] {
		if e.from == status {
			return false
		}
	}
	return true
}

// CustomerCanCancel is true while now is at least window before start.
func CustomerCanCancel(now, start time.Time, window time.Duration) bool {
	return !now.After(start.Add(-window))
}

// CustomerTransitionAllowed is the only move a customer may request on their own
// reservation: initial state to CANCELLED, inside the cancellation window.
func CustomerTransitionAllowed(kind reservation.Kind, from, to reservation.Status, now, start time.Time, window time.Duration) bool {
	if from != kind.InitialStatus() || to != reservation.StatusCancelled {
		return false
	}
	return CustomerCanCancel(now, start, window)
}

type CheckInWindow struct {
	Early     time.Duration
	LateGrace time.Duration
}

// Allows reports whether now lies in [start-Early, end+LateGrace].
func (w CheckInWindow) Allows(now, start, end time.Time) bool {
	opens := start.Add(-w.Early)
	closes := end.Add(w.LateGrace)
	return !now.Before(opens) && !now.After(closes)
}

// CancelWindows holds the customer self-cancel margins per reservation kind.
type CancelWindows struct {
	Order   time.Duration
	Booking time.Duration
}

func (c CancelWindows) For(kind reservation.Kind) time.Duration {
	if kind == reservation.KindBooking {
		return c.Booking
	}
	return c.Order
}
