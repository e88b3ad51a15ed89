package models

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
)

const MinPasswordLength = 6

var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var (
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var (
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrBadContact       = errors.New("please enter a valid email or phone number")
	ErrBadDateOfBirth   = errors.New("please enter a valid date of birth")
)

// Validate runs the checks done before a registration is sent. The server
// applies its own rules on top.
func (r *RegisterRequest) Validate() error {
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !phoneRegex.MatchString(r.EmailID) && !emailRegex.MatchString(r.EmailID) {
		return ErrBadContact
	}
	return nil
}

// ComposeDateOfBirth formats a date as D-Mon-YYYY, e.g. 1-Jan-2000.
func ComposeDateOfBirth(day int, month string, year int) (string, error) {
	if day < 1 || day > 31 || !slices.Contains(Months, month) || year < 1 {
		return "", ErrBadDateOfBirth
	}
	return strconv.Itoa(day) + "-" + month + "-" + strconv.Itoa(year), nil
}
