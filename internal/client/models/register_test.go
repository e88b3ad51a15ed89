package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		contact string
		pass    string
		want    error
	}{
		{"email", "a@b.com", "hunter22", nil},
		{"phone", "0123456789", "hunter22", nil},
		{"short password", "a@b.com", "12345", ErrPasswordTooShort},
		{"nine digits", "012345678", "hunter22", ErrBadContact},
		{"no tld", "a@b", "hunter22", ErrBadContact},
		{"empty contact", "", "hunter22", ErrBadContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &RegisterRequest{EmailID: tt.contact, Password: tt.pass}
			assert.Equal(t, tt.want, r.Validate())
		})
	}
}

func TestComposeDateOfBirth(t *testing.T) {
	got, err := ComposeDateOfBirth(1, "Jan", 2000)
	assert.NoError(t, err)
	assert.Equal(t, "1-Jan-2000", got)

	got, err = ComposeDateOfBirth(31, "Dec", 1999)
	assert.NoError(t, err)
	assert.Equal(t, "31-Dec-1999", got)

	for _, bad := range []struct {
		day   int
		month string
		year  int
	}{{0, "Jan", 2000}, {32, "Jan", 2000}, {1, "January", 2000}, {1, "Jan", 0}} {
		_, err := ComposeDateOfBirth(bad.day, bad.month, bad.year)
		assert.ErrorIs(t, err, ErrBadDateOfBirth)
	}
}
