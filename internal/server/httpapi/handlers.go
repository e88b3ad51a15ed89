package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
)

const (
	msgRegistered      = "User Registered Successfully!"
	msgLoggedIn        = "Login Successful!"
	msgLoggedOut       = "Logged out successfully"
	msgFieldsRequired  = "All fields are required"
	msgPasswordTooLong = "Password must be at most 72 bytes"
	msgUserExists      = "User already exists!"
	msgUserNotFound    = "User not found"
	msgInvalidPassword = "Invalid password"
	msgNoToken         = "Access Denied. No Token Provided."
	msgBadToken        = "Invalid or Expired Token"
	msgInternal        = "Internal Server Error"
	msgRouteNotFound   = "Route not found"
)

const healthTimeout = 2 * time.Second

type handlers struct {
	users   UserService
	store   Pinger
	metrics *metrics.Metrics
	cookie  CookieOptions
	logger  logging.Logger
}

type registerRequest struct {
	FirstName   string `json:"firstName"`
	SurName     string `json:"surName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	EmailID     string `json:"emailId"`
	Password    string `json:"password"`
}

type loginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Message string               `json:"message"`
	Token   string               `json:"token"`
	User    models.PublicProfile `json:"user"`
}

func (h *handlers) record(operation, outcome string) {
	if h.metrics != nil {
		h.metrics.RecordOperation(operation, outcome)
	}
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.record("register", metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"message": msgFieldsRequired})
		return
	}

	sess, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		FirstName:   req.FirstName,
		SurName:     req.SurName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		EmailID:     req.EmailID,
		Password:    req.Password,
	})
	if err != nil {
		h.fail(c, "register", err)
		return
	}

	h.record("register", metrics.OutcomeSuccess)
	setTokenCookie(c, h.cookie, sess.Token)
	c.JSON(http.StatusOK, sessionResponse{Message: msgRegistered, Token: sess.Token, User: sess.User})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.record("login", metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"message": msgFieldsRequired})
		return
	}

	sess, err := h.users.Login(c.Request.Context(), req.EmailID, req.Password)
	if err != nil {
		h.fail(c, "login", err)
		return
	}

	h.record("login", metrics.OutcomeSuccess)
	setTokenCookie(c, h.cookie, sess.Token)
	c.JSON(http.StatusOK, sessionResponse{Message: msgLoggedIn, Token: sess.Token, User: sess.User})
}

func (h *handlers) userData(c *gin.Context) {
	claims := c.MustGet(claimsKey).(*auth.Claims)

	profile, err := h.users.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		h.fail(c, "user_data", err)
		return
	}

	h.record("user_data", metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, profile)
}

func (h *handlers) logout(c *gin.Context) {
	if err := h.users.Logout(c.Request.Context()); err != nil {
		h.fail(c, "logout", err)
		return
	}

	h.record("logout", metrics.OutcomeSuccess)
	clearTokenCookie(c, h.cookie)
	c.JSON(http.StatusOK, gin.H{"message": msgLoggedOut})
}

func (h *handlers) health(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			h.logger.Warn(c.Request.Context(), "store ping failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail maps a service error onto a status and message. Internal details
// are logged, never returned.
func (h *handlers) fail(c *gin.Context, operation string, err error) {
	status, msg := http.StatusInternalServerError, msgInternal

	switch {
	case errors.Is(err, common.ErrPasswordTooLong):
		status, msg = http.StatusBadRequest, msgPasswordTooLong
	case errors.Is(err, common.ErrValidation):
		status, msg = http.StatusBadRequest, msgFieldsRequired
	case errors.Is(err, common.ErrDuplicateIdentity):
		status, msg = http.StatusBadRequest, msgUserExists
	case errors.Is(err, common.ErrInvalidCredential):
		status, msg = http.StatusBadRequest, msgInvalidPassword
	case errors.Is(err, common.ErrNotFound):
		status, msg = http.StatusBadRequest, msgUserNotFound
		if operation == "user_data" {
			status = http.StatusNotFound
		}
	}

	if status == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), operation+" failed", "error", err)
		h.record(operation, metrics.OutcomeError)
	} else {
		h.record(operation, metrics.OutcomeRejected)
	}

	c.JSON(status, gin.H{"message": msg})
}
