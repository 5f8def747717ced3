package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// First returns the message of the first failing field, in struct order.
func (v ValidationErrors) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

// Messages keyed by json field name and validator tag.
var fieldMessages = map[string]map[string]string{
	"room_number": {
		"gt": "Room number must be positive",
	},
	"room_type": {
		"required":  "Room type is required",
		"room_type": "Room type must be one of: " + roomTypeList(),
	},
	"price_per_night": {
		"gt": "Room price must be positive",
	},
	"user_id": {
		"gt": "User id must be positive",
	},
	"balance": {
		"gte": "User balance cannot be negative",
	},
}

func roomTypeList() string {
	names := make([]string, 0, len(model.RoomTypes))
	for _, t := range model.RoomTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

type EntityValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewEntityValidator(log *logger.Logger) *EntityValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("room_type", validateRoomType); err != nil {
		log.Fatal("Failed to register 'room_type' validator",
			"error", err,
		)
	}

	log.Debug("Entity validator initialized successfully")

	return &EntityValidator{
		validate: v,
		logger:   log,
	}
}

func validateRoomType(fl validator.FieldLevel) bool {
	rt, ok := fl.Field().Interface().(model.RoomType)
	if !ok {
		return false
	}
	return rt.Valid()
}

func (v *EntityValidator) ValidateRoom(room *model.Room) error {
	return v.validateStruct(room)
}

func (v *EntityValidator) ValidateUser(user *model.User) error {
	return v.validateStruct(user)
}

func (v *EntityValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *EntityValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message, ok := fieldMessages[err.Field()][err.Tag()]
		if !ok {
			switch err.Tag() {
			case "required":
				message = fmt.Sprintf("%s is required", err.Field())
			case "gt":
				message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
			case "gte":
				message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
			default:
				message = err.Error()
			}
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
