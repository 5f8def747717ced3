package events

import (
	"context"
	"fmt"
	"strconv"

	"hotelbooking/pkg/kafka"
	"hotelbooking/pkg/model"
)

const (
	EventTypeBookingCreated = "booking.created"
	SchemaVersion           = "1"
)

// Publisher announces committed bookings to the outside world.
type Publisher interface {
	PublishBookingCreated(ctx context.Context, booking model.Booking) error
	Close() error
}

// BookingCreated is the payload of a booking.created event.
type BookingCreated struct {
	BookingID            string         `json:"booking_id"`
	RoomNumber           int            `json:"room_number"`
	RoomType             model.RoomType `json:"room_type"`
	PricePerNight        int            `json:"price_per_night"`
	UserID               int            `json:"user_id"`
	BalanceBeforeBooking int            `json:"balance_before_booking"`
	CheckIn              model.Date     `json:"check_in"`
	CheckOut             model.Date     `json:"check_out"`
	Nights               int            `json:"nights"`
	TotalPrice           int            `json:"total_price"`
}

func NewBookingCreated(b model.Booking) BookingCreated {
	return BookingCreated{
		BookingID:            b.ID,
		RoomNumber:           b.RoomNumber,
		RoomType:             b.RoomType,
		PricePerNight:        b.PricePerNight,
		UserID:               b.UserID,
		BalanceBeforeBooking: b.BalanceBeforeBooking,
		CheckIn:              b.CheckIn,
		CheckOut:             b.CheckOut,
		Nights:               b.Nights(),
		TotalPrice:           b.TotalPrice,
	}
}

type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, model.Booking) error { return nil }
func (NopPublisher) Close() error { return nil }

type KafkaPublisher struct {
	producer *kafka.Producer
	source   string
}

func NewKafkaPublisher(producer *kafka.Producer, source string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		source:   source,
	}
}

// PublishBookingCreated keys messages by room number so one room's
// bookings land on one partition in commit order.
func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, booking model.Booking) error {
	msg, err := kafka.NewMessage().
		WithKey(strconv.Itoa(booking.RoomNumber)).
		WithValue(NewBookingCreated(booking)).
		WithTopic(p.producer.Topic()).
		WithTimestamp(booking.CreatedAt).
		WithEventID("").
		WithEventType(EventTypeBookingCreated).
		WithCorrelationID(booking.ID).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build booking event: %w", err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish booking event %s: %w", booking.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
