package model

type User struct {
	UserID  int `json:"user_id" validate:"gt=0"`
	Balance int `json:"balance" validate:"gte=0"`
}
