package festival

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/apiclient/client"
)

// Auth handles authentication endpoints
type Auth struct {
	client *client.Client
}

// Login authenticates user and stores the issued token
func (a *Auth) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	return a.authenticate(ctx, "auth/login", body)
}

// Register creates user and stores the issued token
func (a *Auth) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	if strings.TrimSpace(request.Username) == "" || strings.TrimSpace(request.Password) == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrMissingField)
	}
	return a.authenticate(ctx, "auth/register", request)
}

func (a *Auth) authenticate(ctx context.Context, path string, body any) (*AuthResponse, error) {
	ret, err := client.Do[AuthResponse](ctx, a.client, path, &client.Options{Method: "POST", Data: body})
	if err != nil {
		return nil, err
	}
	if ret == nil || ret.BearerToken() == "" {
		return nil, ErrNoToken
	}
	if err = a.client.SetToken(ctx, ret.BearerToken()); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	return ret, nil
}

// Me returns the authenticated user
func (a *Auth) Me(ctx context.Context) (*User, error) {
	return client.Do[User](ctx, a.client, "auth/me", nil)
}

// Logout clears the stored token
func (a *Auth) Logout(ctx context.Context) error {
	return a.client.SetToken(ctx, "")
}

// LoggedIn returns true if a token is stored and has not expired
func (a *Auth) LoggedIn(ctx context.Context) bool {
	if a.client.Token(ctx) == "" {
		return false
	}
	return !a.client.Tokens().Expired(ctx, timeNow())
}
