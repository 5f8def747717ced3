package report

import (
	"fmt"
	"io"
	"slices"

	"hotelbooking/pkg/model"
)

// Source is the read side of the hotel the printer needs.
type Source interface {
	Rooms() []model.Room
	Users() []model.User
	Bookings() []model.Booking
}

// Printer renders plain-text listings, latest entry first.
type Printer struct {
	src Source
	out io.Writer
}

func NewPrinter(src Source, out io.Writer) *Printer {
	return &Printer{src: src, out: out}
}

func (p *Printer) PrintAll() error {
	if err := p.PrintRooms(); err != nil {
		return err
	}
	return p.PrintBookings()
}

func (p *Printer) PrintAllUsers() error {
	return p.PrintUsers()
}

func (p *Printer) PrintRooms() error {
	if _, err := fmt.Fprintln(p.out, "Rooms (latest -> oldest):"); err != nil {
		return err
	}
	rooms := p.src.Rooms()
	for _, room := range slices.Backward(rooms) {
		if _, err := fmt.Fprintln(p.out, FormatRoom(room)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) PrintBookings() error {
	if _, err := fmt.Fprintln(p.out, "Bookings (latest -> oldest):"); err != nil {
		return err
	}
	bookings := p.src.Bookings()
	for _, b := range slices.Backward(bookings) {
		if _, err := fmt.Fprintln(p.out, FormatBooking(b)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) PrintUsers() error {
	if _, err := fmt.Fprintln(p.out, "Users (latest -> oldest):"); err != nil {
		return err
	}
	users := p.src.Users()
	for _, u := range slices.Backward(users) {
		if _, err := fmt.Fprintln(p.out, FormatUser(u)); err != nil {
			return err
		}
	}
	return nil
}

func FormatRoom(r model.Room) string {
	return fmt.Sprintf("Room %d | %s | price %d", r.RoomNumber, r.RoomType, r.PricePerNight)
}

// FormatBooking uses the snapshot held by the booking, never the current room or user.
func FormatBooking(b model.Booking) string {
	return fmt.Sprintf("Booking room %d (%s, price %d) | user %d (balance at booking %d) | %s | total %d",
		b.RoomNumber, b.RoomType, b.PricePerNight,
		b.UserID, b.BalanceBeforeBooking,
		b.Stay(),
		b.TotalPrice,
	)
}

func FormatUser(u model.User) string {
	return fmt.Sprintf("User %d | balance %d", u.UserID, u.Balance)
}
