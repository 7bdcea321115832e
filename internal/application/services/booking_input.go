package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "playo/internal/domain/bookings"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names so the caller knows what to fix
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type CreateBookingInput struct {
	UserName      string  `json:"user_name" validate:"required"`
	UserEmail     string  `json:"user_email" validate:"required"`
	UserPhone     string  `json:"user_phone" validate:"required"`
	ActivityID    string  `json:"activity_id" validate:"required"`
	ActivityName  string  `json:"activity_name" validate:"required"`
	VenueName     string  `json:"venue_name" validate:"required"`
	VenueAddress  string  `json:"venue_address" validate:"required"`
	SportType     string  `json:"sport_type" validate:"required"`
	Date          string  `json:"date" validate:"required"`
	TimeSlot      string  `json:"time_slot" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"gt=0"`
	PricePerHour  float64 `json:"price_per_hour" validate:"gte=0"`
	NumPlayers    int     `json:"num_players" validate:"gte=1"`
}

// Validate returns a domain ValidationError listing every offending field.
func (in CreateBookingInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	return &domain.ValidationError{Fields: fields}
}
