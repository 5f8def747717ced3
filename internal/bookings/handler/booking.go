package handler

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"hotelbooking/internal/bookings/service"
	apperrors "hotelbooking/pkg/errors"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RoomRequest struct {
	RoomType      string `json:"room_type"`
	PricePerNight int    `json:"price_per_night"`
}

type UserRequest struct {
	Balance int `json:"balance"`
}

// BookingRequest dates accept YYYY-MM-DD or an RFC 3339 timestamp.
type BookingRequest struct {
	UserID     int    `json:"user_id"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type HotelHandler struct {
	service  service.HotelService
	location *time.Location
	log      *logger.Logger
}

// NewHotelHandler cuts timestamps to calendar dates in loc.
func NewHotelHandler(svc service.HotelService, loc *time.Location, log *logger.Logger) *HotelHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &HotelHandler{
		service:  svc,
		location: loc,
		log:      log,
	}
}

func (h *HotelHandler) PutRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	number, err := httputil.PathInt(ps, "number")
	if err != nil {
		h.writeError(w, "PutRoom", err)
		return
	}

	var req RoomRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "PutRoom", err)
		return
	}

	roomType, ok := model.ParseRoomType(req.RoomType)
	if !ok {
		roomType = model.RoomType(req.RoomType)
	}

	if err := h.service.SetRoom(r.Context(), number, roomType, req.PricePerNight); err != nil {
		h.writeError(w, "PutRoom", err)
		return
	}

	room := model.Room{RoomNumber: number, RoomType: roomType, PricePerNight: req.PricePerNight}
	if err := httputil.WriteSuccess(w, room); err != nil {
		h.log.Error("failed to write success response", "handler", "PutRoom", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) ListRooms(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	rooms := h.service.Rooms()
	slices.Reverse(rooms)
	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "ListRooms", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) PutUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathInt(ps, "id")
	if err != nil {
		h.writeError(w, "PutUser", err)
		return
	}

	var req UserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "PutUser", err)
		return
	}

	if err := h.service.SetUser(r.Context(), id, req.Balance); err != nil {
		h.writeError(w, "PutUser", err)
		return
	}

	user := model.User{UserID: id, Balance: req.Balance}
	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "PutUser", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) ListUsers(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	users := h.service.Users()
	slices.Reverse(users)
	if err := httputil.WriteSuccess(w, users); err != nil {
		h.log.Error("failed to write success response", "handler", "ListUsers", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req BookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}

	checkIn, err := h.parseDate("check_in", req.CheckIn)
	if err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}
	checkOut, err := h.parseDate("check_out", req.CheckOut)
	if err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}

	booking, err := h.service.BookRoom(r.Context(), req.UserID, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateBooking", "operation", "WriteCreated", "error", err)
	}
}

func (h *HotelHandler) ListBookings(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	bookings := h.service.Bookings()
	slices.Reverse(bookings)
	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "ListBookings", "operation", "WriteSuccess", "error", err)
	}
}

// parseDate leaves an empty value as the zero Date so the engine reports
// the missing field. Timestamps are converted into h.location before the
// calendar date is taken.
func (h *HotelHandler) parseDate(field, raw string) (model.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Date{}, nil
	}
	if d, err := model.ParseDate(raw); err == nil {
		return d, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return model.DateOf(t, h.location), nil
	}
	return model.Date{}, apperrors.InvalidInput("Invalid " + field + ": expected YYYY-MM-DD or RFC 3339").
		WithDetails(map[string]any{"field": field, "value": raw})
}

func (h *HotelHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.PUT("/api/v1/rooms/:number", h.PutRoom)
	router.GET("/api/v1/rooms", h.ListRooms)
	router.PUT("/api/v1/users/:id", h.PutUser)
	router.GET("/api/v1/users", h.ListUsers)
	router.POST("/api/v1/bookings", h.CreateBooking)
	router.GET("/api/v1/bookings", h.ListBookings)
}
