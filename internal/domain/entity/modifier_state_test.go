package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModifierStateAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		isActive bool
		want     ModifierState
	}{
		{"before window", start.Add(-time.Hour), true, ModifierPending},
		{"at window start", start, true, ModifierActive},
		{"inside window", start.Add(24 * time.Hour), true, ModifierActive},
		{"at window end", end, true, ModifierActive},
		{"after window", end.Add(time.Second), true, ModifierExpired},
		{"soft deleted inside window", start.Add(24 * time.Hour), false, ModifierCleared},
		{"soft deleted after window", end.Add(time.Hour), false, ModifierCleared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, modifierStateAt(tt.now, start, end, tt.isActive))
		})
	}
}

func TestModifierState_String(t *testing.T) {
	assert.Equal(t, "pending", ModifierPending.String())
	assert.Equal(t, "active", ModifierActive.String())
	assert.Equal(t, "expired", ModifierExpired.String())
	assert.Equal(t, "cleared", ModifierCleared.String())
}

func TestDiscount_StateAt_DerivedNotPersisted(t *testing.T) {
	d := &Discount{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	// The same discount evaluates to different states over time without any
	// field changing.
	assert.Equal(t, ModifierPending, d.StateAt(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, ModifierActive, d.StateAt(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, ModifierExpired, d.StateAt(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))

	d.IsActive = false
	assert.Equal(t, ModifierCleared, d.StateAt(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
}
