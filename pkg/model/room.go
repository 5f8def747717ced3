package model

import "strings"

type RoomType string

const (
	RoomTypeStandard    RoomType = "STANDARD"
	RoomTypeJuniorSuite RoomType = "JUNIOR_SUITE"
	RoomTypeMasterSuite RoomType = "MASTER_SUITE"
)

var RoomTypes = []RoomType{RoomTypeStandard, RoomTypeJuniorSuite, RoomTypeMasterSuite}

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeJuniorSuite, RoomTypeMasterSuite:
		return true
	}
	return false
}

// ParseRoomType accepts any letter case and returns ok=false for unknown names.
func ParseRoomType(s string) (RoomType, bool) {
	t := RoomType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

type Room struct {
	RoomNumber    int      `json:"room_number" validate:"gt=0"`
	RoomType      RoomType `json:"room_type" validate:"required,room_type"`
	PricePerNight int      `json:"price_per_night" validate:"gt=0"`
}
