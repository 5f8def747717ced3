package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"hotelbooking/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	rooms    []model.Room
	users    []model.User
	bookings []model.Booking
}

func (s staticSource) Rooms() []model.Room       { return s.rooms }
func (s staticSource) Users() []model.User       { return s.users }
func (s staticSource) Bookings() []model.Booking { return s.bookings }

func sample() staticSource {
	return staticSource{
		rooms: []model.Room{
			{RoomNumber: 1, RoomType: model.RoomTypeMasterSuite, PricePerNight: 10000},
			{RoomNumber: 2, RoomType: model.RoomTypeJuniorSuite, PricePerNight: 2000},
		},
		users: []model.User{
			{UserID: 1, Balance: 4000},
			{UserID: 2, Balance: 7000},
		},
		bookings: []model.Booking{
			{
				RoomNumber: 1, RoomType: model.RoomTypeStandard, PricePerNight: 1000,
				UserID: 1, BalanceBeforeBooking: 5000,
				CheckIn: model.NewDate(2026, time.July, 7), CheckOut: model.NewDate(2026, time.July, 8),
				TotalPrice: 1000,
			},
			{
				RoomNumber: 3, RoomType: model.RoomTypeMasterSuite, PricePerNight: 3000,
				UserID: 2, BalanceBeforeBooking: 10000,
				CheckIn: model.NewDate(2026, time.July, 7), CheckOut: model.NewDate(2026, time.July, 8),
				TotalPrice: 3000,
			},
		},
	}
}

func TestPrintAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(sample(), &buf).PrintAll())

	want := "Rooms (latest -> oldest):\n" +
		"Room 2 | JUNIOR_SUITE | price 2000\n" +
		"Room 1 | MASTER_SUITE | price 10000\n" +
		"Bookings (latest -> oldest):\n" +
		"Booking room 3 (MASTER_SUITE, price 3000) | user 2 (balance at booking 10000) | 2026-07-07 -> 2026-07-08 | total 3000\n" +
		"Booking room 1 (STANDARD, price 1000) | user 1 (balance at booking 5000) | 2026-07-07 -> 2026-07-08 | total 1000\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintAllUsers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(sample(), &buf).PrintAllUsers())

	assert.Equal(t, "Users (latest -> oldest):\nUser 2 | balance 7000\nUser 1 | balance 4000\n", buf.String())
}

func TestPrint_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(staticSource{}, &buf)
	require.NoError(t, p.PrintAll())
	require.NoError(t, p.PrintAllUsers())

	assert.Equal(t, "Rooms (latest -> oldest):\nBookings (latest -> oldest):\nUsers (latest -> oldest):\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPrint_WriteError(t *testing.T) {
	assert.EqualError(t, NewPrinter(sample(), failingWriter{}).PrintAll(), "closed pipe")
}
