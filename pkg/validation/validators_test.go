package validation_test

import (
	"errors"
	"testing"

	"go-forex-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

type phoneOnly struct {
	Phone string `json:"phone" validate:"required,intl_phone"`
}

func TestIntlPhone(t *testing.T) {
	v := validation.New()

	valid := []string{
		"+919913647948",
		"919913647948",
		"+14155552671",
		"1",
		"+123456789012345", // 16 digits total
	}
	for _, phone := range valid {
		assert.NoError(t, v.Struct(phoneOnly{Phone: phone}), "expected %q to be valid", phone)
	}

	invalid := []string{
		"0123456789",        // leading zero
		"+0123456789",       // leading zero after plus
		"+1234567890123456", // 17 digits total
		"+91 9913647948",    // space
		"(415) 555-2671",    // formatting characters
		"12-34",
		"abc",
	}
	for _, phone := range invalid {
		assert.Error(t, v.Struct(phoneOnly{Phone: phone}), "expected %q to be rejected", phone)
	}
}

type contactShape struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,intl_phone"`
	Service string `json:"service" validate:"required,max=100"`
}

func TestFormatUsesJSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Struct(contactShape{
		Name:    "R",
		Email:   "bad-email",
		Phone:   "0123",
		Service: "",
	})
	assert.Error(t, err)

	formatted := validation.Format(err)
	var vErr *validation.Error
	assert.True(t, errors.As(formatted, &vErr))

	fields := make(map[string]string, len(vErr.Fields))
	for _, fe := range vErr.Fields {
		fields[fe.Field] = fe.Message
	}

	assert.Equal(t, "Name must be between 2 and 50 characters", fields["name"])
	assert.Equal(t, "Please provide a valid email", fields["email"])
	assert.Equal(t, "Please provide a valid phone number", fields["phone"])
	assert.Equal(t, "Service is required", fields["service"])
	// All failures collected, none short-circuited
	assert.Len(t, vErr.Fields, 4)
}

func TestFormatPassesThroughNonValidationErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, plain, validation.Format(plain))
}
