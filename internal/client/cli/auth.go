package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

// Register collects the sign-up form, checks it locally and creates the
// account. The issued token is cached like after a login.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{}
	var err error

	if req.FirstName, err = a.ask("Enter first name"); err != nil {
		return err
	}
	if req.SurName, err = a.ask("Enter surname"); err != nil {
		return err
	}
	if req.EmailID, err = a.ask("Enter email or 10-digit phone number"); err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if req.DateOfBirth, err = a.askDateOfBirth(); err != nil {
		return err
	}
	if req.Gender, err = a.ask("Enter gender"); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}

	s, err := a.authService.Register(ctx, req)
	if err != nil {
		return err
	}

	a.email = s.User.EmailID
	a.println(s.Message)
	return nil
}

func (a *App) askDateOfBirth() (string, error) {
	day, err := a.askNumber("Date of birth: day (1-31)")
	if err != nil {
		return "", err
	}
	month, err := a.ask("Date of birth: month (" + strings.Join(models.Months, ", ") + ")")
	if err != nil {
		return "", err
	}
	year, err := a.askNumber("Date of birth: year")
	if err != nil {
		return "", err
	}
	return models.ComposeDateOfBirth(day, month, year)
}

func (a *App) askNumber(prompt string) (int, error) {
	s, err := a.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, models.ErrBadDateOfBirth
	}
	return n, nil
}

func (a *App) Login(ctx context.Context) error {
	prompt := "Enter email or phone number"
	if a.email != "" {
		prompt += " [" + a.email + "]"
	}

	emailID, err := a.ask(prompt)
	if err != nil {
		return err
	}
	if emailID == "" {
		emailID = a.email
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, emailID, password)
	if err != nil {
		return err
	}

	a.email = s.User.EmailID
	a.println(s.Message)
	return nil
}

// WhoAmI prints the profile of the cached session.
func (a *App) WhoAmI(ctx context.Context) error {
	p, err := a.authService.WhoAmI(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		a.email = ""
	}
	if err != nil {
		return err
	}

	a.println(fmt.Sprintf("Name:          %s %s", p.FirstName, p.SurName))
	a.println(fmt.Sprintf("Email/phone:   %s", p.EmailID))
	a.println(fmt.Sprintf("Date of birth: %s", p.DateOfBirth))
	a.println(fmt.Sprintf("Gender:        %s", p.Gender))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.email = ""
	a.println("Logged out")
	return nil
}

// describe turns err into a line fit for the user.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		return "you are not logged in, run login first"
	case errors.Is(err, client.ErrUnauthorized):
		return "session expired or invalid, please log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return err.Error()
	}
}
