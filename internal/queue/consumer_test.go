package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderConfirmed(t *testing.T) {
	ev := BookingConfirmedEvent{
		BookingID:     7,
		UserID:        3,
		ShowID:        1,
		SeatsBooked:   2,
		AmountCharged: 200,
		ConfirmedAt:   "2026-08-30T10:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	line, err := renderConfirmed(body)
	require.NoError(t, err)
	require.Equal(t, "2026-08-30T10:00:00Z CONFIRMED booking=7 user=3 show=1 seats=2 amount=200", line)
}

func TestRenderCancelled(t *testing.T) {
	ev := BookingCancelledEvent{
		BookingID:      7,
		UserID:         3,
		ShowID:         1,
		SeatsReleased:  2,
		AmountRefunded: 200,
		CancelledAt:    "2026-08-30T11:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	line, err := renderCancelled(body)
	require.NoError(t, err)
	require.Equal(t, "2026-08-30T11:00:00Z CANCELLED booking=7 user=3 show=1 seats=2 refund=200", line)
}

func TestRenderRejectsMalformedPayload(t *testing.T) {
	_, err := renderConfirmed([]byte("{not json"))
	require.Error(t, err)
	_, err = renderCancelled([]byte("{not json"))
	require.Error(t, err)
}
