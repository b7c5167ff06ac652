package festival

import (
	"context"
	"net/http"

	"github.com/viant/apiclient/client"
)

// Users handles user endpoints
type Users struct {
	client *client.Client
}

// Get returns user by username, nil if it does not exist
func (u *Users) Get(ctx context.Context, username string) (*User, error) {
	ret, err := client.Do[User](ctx, u.client, "users/"+segment(username), nil)
	if client.StatusCode(err) == http.StatusNotFound {
		return nil, nil
	}
	return ret, err
}

// List returns all users
func (u *Users) List(ctx context.Context) ([]*User, error) {
	ret, err := client.Do[[]*User](ctx, u.client, "users", nil)
	if err != nil || ret == nil {
		return nil, err
	}
	return *ret, nil
}

// UsernameExists returns true if username is taken
func (u *Users) UsernameExists(ctx context.Context, username string) (bool, error) {
	return u.exists(ctx, "users/exists/username/"+segment(username))
}

// EmailExists returns true if email is taken
func (u *Users) EmailExists(ctx context.Context, email string) (bool, error) {
	return u.exists(ctx, "users/exists/email/"+segment(email))
}

func (u *Users) exists(ctx context.Context, path string) (bool, error) {
	ret, err := client.Do[bool](ctx, u.client, path, nil)
	if err != nil || ret == nil {
		return false, err
	}
	return *ret, nil
}
