package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []OrderStatus{
	StatusNew, StatusPreparing, StatusReady,
	StatusDispatched, StatusDelivered, StatusPickedUp, StatusCancelled,
}

func TestAdvance_Next(t *testing.T) {
	tests := []struct {
		current  OrderStatus
		expected OrderStatus
		wantErr  bool
	}{
		{current: StatusNew, expected: StatusPreparing},
		{current: StatusPreparing, expected: StatusReady},
		{current: StatusReady, wantErr: true},
		{current: StatusDispatched, wantErr: true},
		{current: StatusDelivered, wantErr: true},
		{current: StatusPickedUp, wantErr: true},
		{current: StatusCancelled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got, err := Advance(tt.current, ActionNext)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadAction)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAdvance_Unconditional(t *testing.T) {
	actions := map[Action]OrderStatus{
		ActionCancel:     StatusCancelled,
		ActionDispatched: StatusDispatched,
		ActionDelivered:  StatusDelivered,
		ActionPickedUp:   StatusPickedUp,
	}

	for action, expected := range actions {
		for _, current := range allStatuses {
			got, err := Advance(current, action)
			assert.NoError(t, err)
			assert.Equal(t, expected, got, "%s from %s", action, current)
		}
	}
}

func TestAdvance_UnknownAction(t *testing.T) {
	for _, action := range []Action{"", "NEXT", "skip", ActionSetPaid, "listo"} {
		_, err := Advance(StatusNew, action)
		assert.ErrorIs(t, err, ErrBadAction, "action %q", action)
	}
}

func TestOrderStatus_HandedOver(t *testing.T) {
	for _, s := range []OrderStatus{StatusNew, StatusPreparing, StatusReady, StatusCancelled} {
		assert.False(t, s.HandedOver(), "status %q", s)
	}
	for _, s := range []OrderStatus{StatusDispatched, StatusDelivered, StatusPickedUp} {
		assert.True(t, s.HandedOver(), "status %q", s)
	}
}

func TestOrder_Late(t *testing.T) {
	now := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	assert.True(t, Order{CreatedAt: now.Add(-time.Hour)}.Late(now, time.Hour))
	assert.False(t, Order{CreatedAt: now.Add(-59 * time.Minute)}.Late(now, time.Hour))
	assert.False(t, Order{}.Late(now, time.Hour))
	assert.False(t, Order{CreatedAt: now.Add(-2 * time.Hour)}.Late(now, 0))
}
