package client

import (
	"context"
	"fmt"
	"net/http"

	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
)

// APIError is a non-2xx answer from the hotel service.
type APIError struct {
	StatusCode int
	apperrors.ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is matches the service's error sentinels by code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*apperrors.AppError)
	return ok && t.Code == e.Code
}

type HotelClient struct {
	httpClient *HttpClient
}

func NewHotelClient(baseURL string) *HotelClient {
	return &HotelClient{httpClient: NewHttpClient(baseURL)}
}

func (c *HotelClient) SetRoom(ctx context.Context, roomNumber int, roomType model.RoomType, pricePerNight int) (model.Room, error) {
	var room model.Room
	resp, err := c.httpClient.PUT(ctx, fmt.Sprintf("/api/v1/rooms/%d", roomNumber), map[string]any{
		"room_type":       roomType,
		"price_per_night": pricePerNight,
	})
	return room, decode(resp, err, http.StatusOK, &room)
}

func (c *HotelClient) SetUser(ctx context.Context, userID int, balance int) (model.User, error) {
	var user model.User
	resp, err := c.httpClient.PUT(ctx, fmt.Sprintf("/api/v1/users/%d", userID), map[string]any{
		"balance": balance,
	})
	return user, decode(resp, err, http.StatusOK, &user)
}

// BookRoom sends idempotencyKey when non-empty so a retry cannot book twice.
func (c *HotelClient) BookRoom(ctx context.Context, userID, roomNumber int, checkIn, checkOut model.Date, idempotencyKey string) (model.Booking, error) {
	body := map[string]any{
		"user_id":     userID,
		"room_number": roomNumber,
		"check_in":    checkIn,
		"check_out":   checkOut,
	}
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	var booking model.Booking
	resp, err := c.httpClient.POSTWithHeaders(ctx, "/api/v1/bookings", body, headers)
	return booking, decode(resp, err, http.StatusCreated, &booking)
}

func (c *HotelClient) Rooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	resp, err := c.httpClient.GET(ctx, "/api/v1/rooms")
	return rooms, decode(resp, err, http.StatusOK, &rooms)
}

func (c *HotelClient) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	resp, err := c.httpClient.GET(ctx, "/api/v1/users")
	return users, decode(resp, err, http.StatusOK, &users)
}

func (c *HotelClient) Bookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	resp, err := c.httpClient.GET(ctx, "/api/v1/bookings")
	return bookings, decode(resp, err, http.StatusOK, &bookings)
}

func decode(resp *Response, err error, want int, target any) error {
	if err != nil {
		return err
	}
	if resp.StatusCode != want {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := resp.DecodeJSON(&apiErr.ErrorResponse); err != nil {
			apiErr.Message = string(resp.Body)
		}
		return apiErr
	}

	envelope := struct {
		Data any `json:"data"`
	}{Data: target}
	if err := resp.DecodeJSON(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
