package entity

import "time"

// ModifierState is the lifecycle state of a time-bounded price modifier.
// It is derived from the modifier's window at evaluation time and never
// persisted; repeated derivation over the same instant is stable, so sweeps
// are safe to re-run.
type ModifierState int

const (
	// ModifierPending means the window has not opened yet.
	ModifierPending ModifierState = iota
	// ModifierActive means now is within [startDate, endDate].
	ModifierActive
	// ModifierExpired means the window has closed but derived fields may
	// still be stamped on entities.
	ModifierExpired
	// ModifierCleared means the modifier was soft deleted; teardown applies.
	ModifierCleared
)

// String implements fmt.Stringer.
func (s ModifierState) String() string {
	switch s {
	case ModifierPending:
		return "pending"
	case ModifierActive:
		return "active"
	case ModifierExpired:
		return "expired"
	case ModifierCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// modifierStateAt derives the state from a window and the soft-delete flag.
func modifierStateAt(now, start, end time.Time, isActive bool) ModifierState {
	if !isActive {
		return ModifierCleared
	}
	if now.Before(start) {
		return ModifierPending
	}
	if now.After(end) {
		return ModifierExpired
	}

	return ModifierActive
}
