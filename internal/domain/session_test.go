package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younesAM01/StayFit-BookingService/pkg/ptr"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

func TestSession_StatusChecks(t *testing.T) {
	tests := []struct {
		status         SessionStatus
		active         bool
		canCancel      bool
		canComplete    bool
		canReschedule  bool
		terminal       bool
	}{
		{status: StatusPending, active: true, canCancel: true, canComplete: false, canReschedule: true, terminal: false},
		{status: StatusScheduled, active: true, canCancel: true, canComplete: true, canReschedule: true, terminal: false},
		{status: StatusCompleted, active: true, canCancel: false, canComplete: false, canReschedule: false, terminal: true},
		{status: StatusCancelled, active: false, canCancel: false, canComplete: false, canReschedule: false, terminal: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := &Session{Status: tt.status}
			assert.Equal(t, tt.active, s.IsActive())
			assert.Equal(t, tt.canCancel, s.CanBeCancelled())
			assert.Equal(t, tt.canComplete, s.CanBeCompleted())
			assert.Equal(t, tt.canReschedule, s.CanBeRescheduled())
			assert.Equal(t, tt.terminal, s.IsTerminal())
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]SessionStatus{
		{StatusPending, StatusScheduled},
		{StatusPending, StatusCancelled},
		{StatusScheduled, StatusCompleted},
		{StatusScheduled, StatusCancelled},
	}
	forbidden := [][2]SessionStatus{
		{StatusPending, StatusCompleted},
		{StatusScheduled, StatusPending},
		{StatusCompleted, StatusScheduled},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusScheduled},
		{StatusCancelled, StatusPending},
	}

	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
	for _, tr := range forbidden {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestSession_HasConsumedCredit(t *testing.T) {
	packID := ptr.Ptr(int64(5))

	tests := []struct {
		name string
		s    Session
		want bool
	}{
		{name: "paid with pack", s: Session{ClientPackID: packID, Status: StatusScheduled}, want: true},
		{name: "free session", s: Session{ClientPackID: packID, Status: StatusScheduled, IsFree: true}, want: false},
		{name: "no pack", s: Session{Status: StatusScheduled}, want: false},
		{name: "cancelled already restored", s: Session{ClientPackID: packID, Status: StatusCancelled}, want: false},
		{name: "completed keeps credit", s: Session{ClientPackID: packID, Status: StatusCompleted}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.HasConsumedCredit())
		})
	}
}

func TestSession_SlotKey(t *testing.T) {
	s := &Session{
		SessionDate: time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		HourOfDay:   types.HourOfDay(17),
	}
	assert.Equal(t, "2026-09-07#17", s.SlotKey())
}
