// Package models holds the client-side view of the auth API payloads.
package models

// Profile is the public part of an account as returned by the server.
type Profile struct {
	FirstName   string `json:"firstName"`
	SurName     string `json:"surName"`
	EmailID     string `json:"emailId"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// Session is the result of a successful register or login.
type Session struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    Profile `json:"user"`
}

type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	SurName     string `json:"surName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	EmailID     string `json:"emailId"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}
