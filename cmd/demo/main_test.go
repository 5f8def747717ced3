package main

import (
	"bytes"
	"context"
	"testing"

	"hotelbooking/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, logger.Discard()))

	want := `Booking failed: User balance is insufficient for this booking
Booking failed: Check-in date must be before check-out date
Booking succeeded
Booking failed: Room is not available for the selected dates
Booking succeeded
Rooms (latest -> oldest):
Room 3 | MASTER_SUITE | price 3000
Room 2 | JUNIOR_SUITE | price 2000
Room 1 | MASTER_SUITE | price 10000
Bookings (latest -> oldest):
Booking room 3 (MASTER_SUITE, price 3000) | user 2 (balance at booking 10000) | 2026-07-07 -> 2026-07-08 | total 3000
Booking room 1 (STANDARD, price 1000) | user 1 (balance at booking 5000) | 2026-07-07 -> 2026-07-08 | total 1000
Users (latest -> oldest):
User 2 | balance 7000
User 1 | balance 4000
`
	assert.Equal(t, want, out.String())
}
