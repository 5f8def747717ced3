// Command demo replays a fixed scenario against an in-memory hotel and
// prints the resulting state to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"hotelbooking/internal/bookings/report"
	"hotelbooking/internal/bookings/repository"
	"hotelbooking/internal/bookings/service"
	"hotelbooking/internal/bookings/validator"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
)

type bookingAttempt struct {
	userID, roomNumber int
	checkIn, checkOut  model.Date
}

func date(month time.Month, day int) model.Date {
	return model.NewDate(2026, month, day)
}

func main() {
	log := logger.Discard()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		log = logger.New(logger.Config{
			Level:   level,
			Format:  logger.TEXT,
			Output:  os.Stderr,
			Service: "demo",
		})
	}

	if err := run(context.Background(), os.Stdout, log); err != nil {
		log.Fatal("Demo failed", "error", err)
	}
}

func run(ctx context.Context, out io.Writer, log *logger.Logger) error {
	hotel := service.NewHotelService(
		repository.NewMemoryEntityStore(),
		repository.NewMemoryLedger(),
		validator.NewEntityValidator(log),
		log,
	)

	rooms := []model.Room{
		{RoomNumber: 1, RoomType: model.RoomTypeStandard, PricePerNight: 1000},
		{RoomNumber: 2, RoomType: model.RoomTypeJuniorSuite, PricePerNight: 2000},
		{RoomNumber: 3, RoomType: model.RoomTypeMasterSuite, PricePerNight: 3000},
	}
	for _, r := range rooms {
		if err := hotel.SetRoom(ctx, r.RoomNumber, r.RoomType, r.PricePerNight); err != nil {
			return err
		}
	}
	if err := hotel.SetUser(ctx, 1, 5000); err != nil {
		return err
	}
	if err := hotel.SetUser(ctx, 2, 10000); err != nil {
		return err
	}

	arrival := date(time.July, 7)
	attempts := []bookingAttempt{
		{1, 2, date(time.June, 30), arrival},
		{1, 2, arrival, date(time.June, 30)},
		{1, 1, arrival, arrival.AddDays(1)},
		{2, 1, arrival, arrival.AddDays(2)},
		{2, 3, arrival, arrival.AddDays(1)},
	}
	for _, a := range attempts {
		if _, err := hotel.BookRoom(ctx, a.userID, a.roomNumber, a.checkIn, a.checkOut); err != nil {
			fmt.Fprintf(out, "Booking failed: %s\n", apperrors.AsAppError(err).Message)
			continue
		}
		fmt.Fprintln(out, "Booking succeeded")
	}

	if err := hotel.SetRoom(ctx, 1, model.RoomTypeMasterSuite, 10000); err != nil {
		return err
	}

	printer := report.NewPrinter(hotel, out)
	if err := printer.PrintAll(); err != nil {
		return err
	}
	return printer.PrintAllUsers()
}
