package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
)

// UserService is what the handlers need from services.UserService.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Session, error)
	Login(ctx context.Context, emailID, password string) (*services.Session, error)
	Authenticate(token string) (*auth.Claims, error)
	Profile(ctx context.Context, userID string) (*models.PublicProfile, error)
	Logout(ctx context.Context) error
}

// Pinger reports whether the credential store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Users          UserService
	Store          Pinger
	Metrics        *metrics.Metrics
	Logger         logging.Logger
	AllowedOrigins []string
	Cookie         CookieOptions
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(opts Options) *gin.Engine {
	h := &handlers{
		users:   opts.Users,
		store:   opts.Store,
		metrics: opts.Metrics,
		cookie:  opts.Cookie,
		logger:  opts.Logger.With("module", "http_handlers"),
	}

	r := gin.New()
	r.Use(
		requestLogger(opts.Logger.With("module", "http_access"), opts.Metrics),
		recovery(opts.Logger.With("module", "http_recovery")),
	)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Cookie"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.POST("/register", h.register)
	r.POST("/login", h.login)
	r.GET("/user-data", h.requireToken(), h.userData)
	r.POST("/logout", h.logout)

	r.GET("/health", h.health)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgRouteNotFound})
	})

	return r
}
