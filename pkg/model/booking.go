package model

import (
	"time"
)

// Booking is the record written to the ledger when a room is booked.
// Room and user fields are copies taken at commit time and never change
// afterwards, whatever happens to the live Room or User.
type Booking struct {
	ID                   string    `json:"id"`
	RoomNumber           int       `json:"room_number"`
	RoomType             RoomType  `json:"room_type"`
	PricePerNight        int       `json:"price_per_night"`
	UserID               int       `json:"user_id"`
	BalanceBeforeBooking int       `json:"balance_before_booking"`
	CheckIn              Date      `json:"check_in"`
	CheckOut             Date      `json:"check_out"`
	TotalPrice           int       `json:"total_price"`
	CreatedAt            time.Time `json:"created_at"`
}

func (b Booking) Stay() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

func (b Booking) Nights() int {
	return b.Stay().Nights()
}
