package spacepoint

import (
	"context"
	"fmt"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// UserService wraps the /users resource family. Every operation requires an
// admin session.
type UserService struct {
	rest *client.Client
}

// List returns every user account.
func (s *UserService) List(ctx context.Context) ([]*schema.User, error) {
	var out []*schema.User
	if err := s.rest.Get(ctx, "/users/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, id int) (*schema.User, error) {
	var out schema.User
	if err := s.rest.Get(ctx, fmt.Sprintf("/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create provisions a new account.
func (s *UserService) Create(ctx context.Context, input *schema.UserInput) (*schema.User, error) {
	var out schema.User
	if err := s.rest.Post(ctx, "/users/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an account's writable fields.
func (s *UserService) Update(ctx context.Context, id int, input *schema.UserInput) (*schema.User, error) {
	var out schema.User
	if err := s.rest.Put(ctx, fmt.Sprintf("/users/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
