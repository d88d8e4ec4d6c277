package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/storegate/console/pkg/config"
	pkgerrors "github.com/storegate/console/pkg/errors"
	"github.com/storegate/console/pkg/logger"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
)

// ErrUnreachable marks a transport-level failure: the identity service
// could not be reached at all. HTTP error statuses never carry it.
var ErrUnreachable = errors.New("identity service unreachable")

// IsUnreachable reports whether err is a transport-level failure.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type authPayload struct {
	User  *Identity `json:"user"`
	Token string    `json:"token"`
}

// Client consumes the identity service login/register contract.
type Client struct {
	baseURL string
	http    *http.Client
	logg    *logger.Logger
}

func NewClient(cfg config.IdentityConfig, logg *logger.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("identity base url is required")
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		logg:    logg,
	}, nil
}

// Login exchanges credentials for an identity and token.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, string, error) {
	req := loginRequest{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid credentials payload")
	}
	return c.post(ctx, loginPath, req)
}

// Register creates a new standard-role identity and returns it with its
// token, mirroring the login response shape.
func (c *Client) Register(ctx context.Context, email, password, name string) (*Identity, string, error) {
	req := registerRequest{Email: email, Password: password, Name: name, Role: "user"}
	if err := validate.Struct(req); err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid registration payload")
	}
	return c.post(ctx, registerPath, req)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Identity, string, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInvalidResponse, err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", pkgerrors.New(pkgerrors.CodeAuthRejected,
			fmt.Sprintf("identity service rejected request with status %d", resp.StatusCode)).
			WithDetails(map[string]any{"status": resp.StatusCode})
	}

	return parseAuthPayload(raw)
}

func parseAuthPayload(raw []byte) (*Identity, string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "undefined" {
		return nil, "", pkgerrors.New(pkgerrors.CodeInvalidResponse, "empty response body")
	}

	var payload authPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInvalidResponse, err, "decode response body")
	}
	if payload.User == nil || payload.Token == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeInvalidResponse, "response missing user or token")
	}
	if !payload.User.Valid() {
		return nil, "", pkgerrors.New(pkgerrors.CodeInvalidResponse, "response user record incomplete")
	}
	return payload.User, payload.Token, nil
}
