package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEIN(t *testing.T) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type probe struct {
		EIN string `validate:"ein"`
	}

	tests := []struct {
		ein   string
		valid bool
	}{
		{"77-0479905", true},
		{"13-3433452", true},
		{"770479905", false},
		{"77-047990", false},
		{"77-04799050", false},
		{"7A-0479905", false},
		{"77_0479905", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ein, func(t *testing.T) {
			err := v.Struct(probe{EIN: tt.ein})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTrimStruct(t *testing.T) {
	req := CreateIntentRequest{
		CharityName: "  Room to Read \n",
		CharityEIN:  " 77-0479905 ",
		Amount:      50,
		Currency:    " USD",
	}
	TrimStruct(&req)

	assert.Equal(t, "Room to Read", req.CharityName)
	assert.Equal(t, "77-0479905", req.CharityEIN)
	assert.Equal(t, "USD", req.Currency)
}

func TestTrimStruct_PreservesInteriorText(t *testing.T) {
	req := CreateIntentRequest{CharityName: "Doctors Without Borders"}
	TrimStruct(&req)
	assert.Equal(t, "Doctors Without Borders", req.CharityName)
}

func TestTrimStruct_NonStructInput(t *testing.T) {
	// Must not panic on non-pointer or non-struct input.
	TrimStruct("plain string")
	TrimStruct(nil)
	s := "x"
	TrimStruct(&s)
}
