package validator

import (
	"testing"

	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoom(t *testing.T) {
	v := NewEntityValidator(logger.Discard())

	tests := []struct {
		name      string
		room      model.Room
		wantField string
		wantMsg   string
	}{
		{
			name: "valid",
			room: model.Room{RoomNumber: 1, RoomType: model.RoomTypeStandard, PricePerNight: 1000},
		},
		{
			name:      "zero room number",
			room:      model.Room{RoomNumber: 0, RoomType: model.RoomTypeStandard, PricePerNight: 1000},
			wantField: "room_number",
			wantMsg:   "Room number must be positive",
		},
		{
			name:      "negative room number",
			room:      model.Room{RoomNumber: -3, RoomType: model.RoomTypeStandard, PricePerNight: 1000},
			wantField: "room_number",
			wantMsg:   "Room number must be positive",
		},
		{
			name:      "missing room type",
			room:      model.Room{RoomNumber: 1, PricePerNight: 1000},
			wantField: "room_type",
			wantMsg:   "Room type is required",
		},
		{
			name:      "unknown room type",
			room:      model.Room{RoomNumber: 1, RoomType: "PENTHOUSE", PricePerNight: 1000},
			wantField: "room_type",
			wantMsg:   "Room type must be one of: STANDARD, JUNIOR_SUITE, MASTER_SUITE",
		},
		{
			name:      "zero price",
			room:      model.Room{RoomNumber: 1, RoomType: model.RoomTypeMasterSuite, PricePerNight: 0},
			wantField: "price_per_night",
			wantMsg:   "Room price must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRoom(&tt.room)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.Equal(t, tt.wantMsg, verrs.First())
		})
	}
}

func TestValidateRoom_ReportsEveryField(t *testing.T) {
	v := NewEntityValidator(logger.Discard())

	err := v.ValidateRoom(&model.Room{})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)
	assert.Equal(t, "Room number must be positive", verrs.First())
	assert.Contains(t, verrs.Error(), "validation failed: 3 error(s)")
}

func TestValidateUser(t *testing.T) {
	v := NewEntityValidator(logger.Discard())

	assert.NoError(t, v.ValidateUser(&model.User{UserID: 1, Balance: 0}))
	assert.NoError(t, v.ValidateUser(&model.User{UserID: 2, Balance: 5000}))

	var verrs ValidationErrors
	require.ErrorAs(t, v.ValidateUser(&model.User{UserID: 0, Balance: 10}), &verrs)
	assert.Equal(t, "User id must be positive", verrs.First())

	require.ErrorAs(t, v.ValidateUser(&model.User{UserID: 1, Balance: -1}), &verrs)
	assert.Equal(t, "User balance cannot be negative", verrs.First())
}
