package models

import "time"

// User is the persisted identity record. PasswordHash never leaves the
// server; outward-facing code uses Profile.
type User struct {
	ID           string    `json:"-"`
	FirstName    string    `json:"firstName"`
	SurName      string    `json:"surName"`
	DateOfBirth  string    `json:"dateOfBirth"`
	Gender       string    `json:"gender"`
	EmailID      string    `json:"emailId"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// PublicProfile is the subset of a User that is safe to return to clients.
type PublicProfile struct {
	FirstName   string `json:"firstName"`
	SurName     string `json:"surName"`
	EmailID     string `json:"emailId"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

func (u *User) Profile() PublicProfile {
	return PublicProfile{
		FirstName:   u.FirstName,
		SurName:     u.SurName,
		EmailID:     u.EmailID,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
	}
}
