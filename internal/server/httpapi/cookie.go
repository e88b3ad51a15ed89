package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// CookieOptions controls the attributes of the token cookie.
type CookieOptions struct {
	// Production turns on Secure and SameSite=None for cross-site frontends.
	Production bool
	Domain     string
	MaxAge     time.Duration
}

func (o CookieOptions) sameSite() http.SameSite {
	if o.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func setTokenCookie(c *gin.Context, o CookieOptions, token string) {
	c.SetSameSite(o.sameSite())
	c.SetCookie(common.TokenCookieName, token, int(o.MaxAge.Seconds()), "/", o.Domain, o.Production, true)
}

func clearTokenCookie(c *gin.Context, o CookieOptions) {
	c.SetSameSite(o.sameSite())
	c.SetCookie(common.TokenCookieName, "", -1, "/", o.Domain, o.Production, true)
}
