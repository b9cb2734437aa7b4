package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/semtisem/dracoon-go/errs"
	"github.com/semtisem/dracoon-go/pkg/utils"
)

// ReqCallback mutates a request before it is sent, the place for query
// params and bodies of the individual endpoints.
type ReqCallback func(req *resty.Request)

// Client is the shared session every resource adapter talks through. It owns
// the OAuth2 token state and reconnects with the refresh token once the
// access token goes stale.
type Client struct {
	cfg  Config
	http *resty.Client
	log  *logrus.Entry

	mu   sync.Mutex
	conn *connection
}

func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	utils.InitLog(cfg.Debug, cfg.LogFile)
	c := &Client{
		cfg: cfg,
		log: utils.Log.WithField("module", "client"),
	}
	c.http = resty.New().
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryResetReaders(true).
		SetTimeout(cfg.Timeout)
	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})
	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

func (c *Client) apiURL(path string) string {
	return c.cfg.BaseURL + apiPrefix + path
}

// Connect performs the OAuth2 flow selected by creds and stores the token
// pair on success.
func (c *Client) Connect(ctx context.Context, creds Credentials) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked(ctx, creds)
}

func (c *Client) connectLocked(ctx context.Context, creds Credentials) error {
	form := map[string]string{"grant_type": string(creds.Grant)}
	switch creds.Grant {
	case GrantPassword:
		form["username"] = creds.Username
		form["password"] = creds.Password
	case GrantAuthCode:
		form["code"] = creds.Code
		form["redirect_uri"] = creds.RedirectURI
	case GrantRefreshToken:
		form["refresh_token"] = creds.RefreshToken
	default:
		return errs.NewErr(errs.InvalidArgument, "unknown grant type %q", creds.Grant)
	}

	u := c.cfg.BaseURL + oauthTokenPath
	var tok TokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetFormData(form).
		SetResult(&tok).
		Post(u)
	if err != nil {
		c.log.WithError(err).Error("token request failed")
		return &errs.ConnectError{URL: u, Err: err}
	}
	if !resp.IsSuccess() {
		c.log.WithField("status", resp.StatusCode()).Error("authentication failed")
		return errs.FromResponse(resp.StatusCode(), u, resp.Body())
	}

	c.conn = &connection{TokenResponse: tok, connectedAt: time.Now()}
	c.log.WithField("grant", string(creds.Grant)).Info("connected")
	return nil
}

// Connected reports whether a token pair is present, regardless of expiry.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// CheckConnection reports whether the access token is present and not
// expired. Purely local, no request is made.
func (c *Client) CheckConnection() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.fresh(time.Now())
}

// TestConnection pings the authenticated ping endpoint.
func (c *Client) TestConnection(ctx context.Context) error {
	return c.Request(ctx, http.MethodGet, "/auth/ping", nil, nil)
}

// RefreshToken returns the current refresh token, empty when disconnected.
func (c *Client) RefreshToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return ""
	}
	return c.conn.TokenResponse.RefreshToken
}

// Logout revokes both tokens and drops the connection state. Revocation
// failures are logged but do not keep the state around.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()
	if conn == nil {
		return nil
	}

	var firstErr error
	revoke := func(hint, token string) {
		if token == "" {
			return
		}
		resp, err := c.http.R().
			SetContext(ctx).
			SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
			SetFormData(map[string]string{
				"token_type_hint": hint,
				"token":           token,
			}).
			Post(c.cfg.BaseURL + oauthRevokePath)
		if err != nil {
			c.log.WithError(err).Warnf("revoking %s failed", hint)
			if firstErr == nil {
				firstErr = &errs.ConnectError{URL: c.cfg.BaseURL + oauthRevokePath, Err: err}
			}
			return
		}
		if !resp.IsSuccess() {
			c.log.WithField("status", resp.StatusCode()).Warnf("revoking %s failed", hint)
			if firstErr == nil {
				firstErr = errs.FromResponse(resp.StatusCode(), c.cfg.BaseURL+oauthRevokePath, resp.Body())
			}
		}
	}
	revoke("access_token", conn.AccessToken)
	revoke("refresh_token", conn.TokenResponse.RefreshToken)
	if firstErr == nil {
		c.log.Info("logged out")
	}
	return firstErr
}

// GetAuthorizeURL builds the browser URL for the authorization code flow.
func (c *Client) GetAuthorizeURL(redirectURI, state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", "all")
	if state != "" {
		q.Set("state", state)
	}
	return c.cfg.BaseURL + oauthAuthorizePath + "?" + q.Encode()
}

// ensureConnected makes sure a usable access token is present, performing a
// single refresh-token reconnect when the current one is stale.
func (c *Client) ensureConnected(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errs.NotConnected
	}
	if c.conn.fresh(time.Now()) {
		return nil
	}
	if c.conn.TokenResponse.RefreshToken == "" {
		return errs.NewErr(errs.NotConnected, "access token expired and no refresh token available")
	}
	c.log.Debug("access token stale, reconnecting")
	return c.connectLocked(ctx, RefreshTokenFlow(c.conn.TokenResponse.RefreshToken))
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return ""
	}
	return c.conn.AccessToken
}

// Request performs an authenticated API call. path is relative to /api/v4.
// out, when non-nil, receives the decoded JSON answer. A 401 is answered
// with one refresh-and-replay before the error surfaces.
func (c *Client) Request(ctx context.Context, method, path string, callback ReqCallback, out any) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	return c.do(ctx, method, c.apiURL(path), callback, out, true)
}

// Public performs an unauthenticated API call (public resource group).
func (c *Client) Public(ctx context.Context, method, path string, callback ReqCallback, out any) error {
	return c.do(ctx, method, c.apiURL(path), callback, out, false)
}

func (c *Client) do(ctx context.Context, method, u string, callback ReqCallback, out any, allowReauth bool) error {
	req := c.http.R().SetContext(ctx)
	if tok := c.accessToken(); tok != "" {
		req.SetHeader("Authorization", "Bearer "+tok)
	}
	if out != nil {
		req.SetResult(out)
	}
	if callback != nil {
		callback(req)
	}

	resp, err := req.Execute(method, u)
	if err != nil {
		c.log.WithError(err).WithField("url", u).Error("request failed")
		return &errs.ConnectError{URL: u, Err: err}
	}
	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized && allowReauth {
		if refresh := c.RefreshToken(); refresh != "" {
			c.mu.Lock()
			err := c.connectLocked(ctx, RefreshTokenFlow(refresh))
			c.mu.Unlock()
			if err != nil {
				return err
			}
			return c.do(ctx, method, u, callback, out, false)
		}
	}

	apiErr := errs.FromResponse(resp.StatusCode(), u, resp.Body())
	c.log.WithFields(logrus.Fields{
		"status": resp.StatusCode(),
		"url":    u,
	}).Error(apiErr.Message)
	return apiErr
}
