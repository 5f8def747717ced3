package service

import (
	"context"
	"errors"
	"math"
	"slices"
	"sync"
	"time"

	"hotelbooking/internal/bookings/events"
	"hotelbooking/internal/bookings/repository"
	"hotelbooking/internal/bookings/validator"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/google/uuid"
)

type HotelService interface {
	SetRoom(ctx context.Context, roomNumber int, roomType model.RoomType, pricePerNight int) error
	SetUser(ctx context.Context, userID int, balance int) error
	BookRoom(ctx context.Context, userID int, roomNumber int, checkIn, checkOut model.Date) (model.Booking, error)

	Room(roomNumber int) (model.Room, bool)
	User(userID int) (model.User, bool)
	// Rooms and Users are in insertion order, Bookings oldest first.
	Rooms() []model.Room
	Users() []model.User
	Bookings() []model.Booking
}

type Option func(*hotelService)

// WithClock sets the source of Booking.CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *hotelService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *hotelService) {
		s.newID = newID
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *hotelService) {
		s.publisher = p
	}
}

// WithPublishTimeout bounds each booking event publish. Zero means no bound
// beyond the caller's context.
func WithPublishTimeout(d time.Duration) Option {
	return func(s *hotelService) {
		s.publishTimeout = d
	}
}

type hotelService struct {
	// mu serialises every write so a booking's checks and its commit are
	// one atomic step. Reads go straight to the store and ledger.
	mu sync.Mutex

	store     repository.EntityStore
	ledger    repository.Ledger
	validator *validator.EntityValidator
	log       *logger.Logger

	publisher      events.Publisher
	publishTimeout time.Duration
	now            func() time.Time
	newID          func() string
}

func NewHotelService(
	store repository.EntityStore,
	ledger repository.Ledger,
	validator *validator.EntityValidator,
	log *logger.Logger,
	opts ...Option,
) HotelService {
	s := &hotelService{
		store:     store,
		ledger:    ledger,
		validator: validator,
		log:       log,
		publisher: events.NopPublisher{},
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *hotelService) SetRoom(ctx context.Context, roomNumber int, roomType model.RoomType, pricePerNight int) error {
	room := model.Room{
		RoomNumber:    roomNumber,
		RoomType:      roomType,
		PricePerNight: pricePerNight,
	}
	if err := s.validate(s.validator.ValidateRoom(&room)); err != nil {
		s.log.Warn("Room rejected", "room_number", roomNumber, "error", err)
		return err
	}

	s.mu.Lock()
	created := s.store.UpsertRoom(room)
	s.mu.Unlock()

	s.log.Debug("Room stored",
		"room_number", room.RoomNumber,
		"room_type", room.RoomType,
		"price_per_night", room.PricePerNight,
		"created", created,
	)
	return nil
}

func (s *hotelService) SetUser(ctx context.Context, userID int, balance int) error {
	user := model.User{
		UserID:  userID,
		Balance: balance,
	}
	if err := s.validate(s.validator.ValidateUser(&user)); err != nil {
		s.log.Warn("User rejected", "user_id", userID, "error", err)
		return err
	}

	s.mu.Lock()
	created := s.store.UpsertUser(user)
	s.mu.Unlock()

	s.log.Debug("User stored",
		"user_id", user.UserID,
		"balance", user.Balance,
		"created", created,
	)
	return nil
}

func (s *hotelService) BookRoom(ctx context.Context, userID int, roomNumber int, checkIn, checkOut model.Date) (model.Booking, error) {
	booking, err := s.commitBooking(userID, roomNumber, checkIn, checkOut)
	if err != nil {
		s.log.Warn("Booking rejected",
			"user_id", userID,
			"room_number", roomNumber,
			"check_in", checkIn,
			"check_out", checkOut,
			"code", apperrors.CodeOf(err),
			"error", err,
		)
		return model.Booking{}, err
	}

	s.log.Info("Booking created successfully",
		"id", booking.ID,
		"room_number", booking.RoomNumber,
		"user_id", booking.UserID,
		"check_in", booking.CheckIn,
		"check_out", booking.CheckOut,
		"nights", booking.Nights(),
		"total_price", booking.TotalPrice,
	)

	s.publish(ctx, booking)
	return booking, nil
}

// commitBooking runs every check and, only if all pass, debits the user and
// appends to the ledger. Any error leaves the store and ledger untouched.
func (s *hotelService) commitBooking(userID int, roomNumber int, checkIn, checkOut model.Date) (model.Booking, error) {
	if checkIn.IsZero() {
		return model.Booking{}, apperrors.InvalidInput("Check-in date is required")
	}
	if checkOut.IsZero() {
		return model.Booking{}, apperrors.InvalidInput("Check-out date is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.FindUser(userID)
	if !ok {
		return model.Booking{}, apperrors.NotFoundWithID("User", userID)
	}
	room, ok := s.store.FindRoom(roomNumber)
	if !ok {
		return model.Booking{}, apperrors.NotFoundWithID("Room", roomNumber)
	}

	stay := model.DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if !checkIn.Before(checkOut) {
		return model.Booking{}, apperrors.InvalidInput("Check-in date must be before check-out date")
	}

	if err := s.ensureAvailable(room.RoomNumber, stay); err != nil {
		return model.Booking{}, err
	}

	nights := stay.Nights()
	if nights > math.MaxInt/room.PricePerNight {
		return model.Booking{}, apperrors.InvalidInput("Stay is too long to price")
	}
	totalPrice := nights * room.PricePerNight

	if user.Balance < totalPrice {
		return model.Booking{}, apperrors.InsufficientBalance("User balance is insufficient for this booking").
			WithDetails(map[string]any{
				"balance":     user.Balance,
				"total_price": totalPrice,
			})
	}

	// room and user are value copies, so the booking cannot see later upserts.
	booking := model.Booking{
		ID:                   s.newID(),
		RoomNumber:           room.RoomNumber,
		RoomType:             room.RoomType,
		PricePerNight:        room.PricePerNight,
		UserID:               user.UserID,
		BalanceBeforeBooking: user.Balance,
		CheckIn:              checkIn,
		CheckOut:             checkOut,
		TotalPrice:           totalPrice,
		CreatedAt:            s.now(),
	}

	s.store.SetBalance(user.UserID, user.Balance-totalPrice)
	s.ledger.Append(booking)

	return booking, nil
}

func (s *hotelService) ensureAvailable(roomNumber int, stay model.DateRange) error {
	for existing := range s.ledger.BookingsForRoom(roomNumber) {
		if stay.Overlaps(existing.Stay()) {
			return apperrors.RoomUnavailable("Room is not available for the selected dates").
				WithDetails(map[string]any{
					"room_number":         roomNumber,
					"conflicting_booking": existing.ID,
					"conflicting_stay":    existing.Stay().String(),
				})
		}
	}
	return nil
}

// publish is best effort: the booking is already committed and stays so.
func (s *hotelService) publish(ctx context.Context, booking model.Booking) {
	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}

	if err := s.publisher.PublishBookingCreated(ctx, booking); err != nil {
		s.log.Error("Failed to publish booking event",
			"id", booking.ID,
			"room_number", booking.RoomNumber,
			"error", err,
		)
	}
}

func (s *hotelService) validate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.InvalidInput(verrs.First()).
			WithDetails(map[string]any{"error": verrs.Error()})
	}
	return apperrors.InvalidInput(err.Error())
}

func (s *hotelService) Room(roomNumber int) (model.Room, bool) {
	return s.store.FindRoom(roomNumber)
}

func (s *hotelService) User(userID int) (model.User, bool) {
	return s.store.FindUser(userID)
}

func (s *hotelService) Rooms() []model.Room {
	return s.store.AllRooms()
}

func (s *hotelService) Users() []model.User {
	return s.store.AllUsers()
}

func (s *hotelService) Bookings() []model.Booking {
	bookings := make([]model.Booking, 0, s.ledger.Len())
	return slices.AppendSeq(bookings, s.ledger.All())
}
