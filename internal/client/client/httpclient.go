package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/netx"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	return c.session(ctx, "/register", req)
}

func (c *HTTPClient) Login(ctx context.Context, emailID, password string) (*models.Session, error) {
	return c.session(ctx, "/login", models.LoginRequest{EmailID: emailID, Password: password})
}

func (c *HTTPClient) session(ctx context.Context, path string, body any) (*models.Session, error) {
	resp, err := c.do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return nil, err
	}

	s := &models.Session{}
	if err := resp.Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *HTTPClient) UserData(ctx context.Context, token string) (*models.Profile, error) {
	header := http.Header{}
	header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	resp, err := c.do(ctx, http.MethodGet, "/user-data", nil, header)
	if err != nil {
		return nil, err
	}

	p := &models.Profile{}
	if err := resp.Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	return err
}

// do performs the call and turns every non-2xx status into an error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, header http.Header) (*netx.Response, error) {
	resp, err := netx.DoJSON(ctx, c.http, method, c.baseURL+path, body, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.Status >= 200 && resp.Status < 300 {
		return resp, nil
	}

	apiErr := &APIError{Status: resp.Status}
	var msg struct {
		Message string `json:"message"`
	}
	if resp.Decode(&msg) == nil {
		apiErr.Message = msg.Message
	}

	switch {
	case resp.Status == http.StatusUnauthorized || resp.Status == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case resp.Status >= 500:
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, apiErr)
	default:
		return nil, apiErr
	}
}
