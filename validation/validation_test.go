// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"202-555-7821", true},
		{"(202) 555-7821", true},
		{"+44 20 7946 0958", true},
		{"202.555.7821", true},
		{"555-0100", true},
		{"12-34", false},
		{"call me maybe", false},
		{"202-555-7821 ext", false},
		{"-----------", false},
		{"+1 (202) 555-7821 0000 00", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.in))
		})
	}
}

func TestIsValidProfileURL(t *testing.T) {
	assert.True(t, IsValidProfileURL(""))
	assert.True(t, IsValidProfileURL("https://www.linkedin.com/in/someone"))
	assert.True(t, IsValidProfileURL("http://example.com"))
	assert.False(t, IsValidProfileURL("linkedin.com/in/someone"))
	assert.False(t, IsValidProfileURL("ftp://example.com"))
	assert.False(t, IsValidProfileURL("https://"))
}

type sample struct {
	Email  string  `json:"email" validate:"required,email"`
	Phone  string  `json:"phone" validate:"phone"`
	Choice string  `json:"choice" validate:"oneof=Yes No"`
	Link   *string `json:"link,omitempty" validate:"omitnil,profile_url"`
	Hidden string  `json:"-" validate:"max=3"`
}

func TestStruct(t *testing.T) {
	link := "https://example.com/me"
	ok := sample{Email: "a@b.co", Phone: "202-555-0100", Choice: "Yes", Link: &link}
	require.NoError(t, Struct(ok))

	ok.Link = nil
	require.NoError(t, Struct(ok), "nil link is skipped")

	bad := "nope"
	err := Struct(sample{Email: "x", Phone: "1", Choice: "Maybe", Link: &bad, Hidden: "toolong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	fields := Fields(err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.Equal(t, []string{"email", "phone", "choice", "link", "Hidden"}, names)
	assert.Equal(t, "must be a valid email address", fields[0].Error)
	assert.Equal(t, "must be one of: Yes No", fields[2].Error)
	assert.Equal(t, "must not exceed 3 characters", fields[4].Error)

	assert.Contains(t, err.Error(), "email must be a valid email address")
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct(42)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestFields_Wrapped(t *testing.T) {
	err := fmt.Errorf("update: %w", &Error{Fields: []FieldError{{Field: "email", Error: "is required"}}})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, []FieldError{{Field: "email", Error: "is required"}}, Fields(err))
	assert.Nil(t, Fields(errors.New("other")))
}
