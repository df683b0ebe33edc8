package spacepoint

import (
	"context"
	"fmt"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// WorkshopService wraps the /workshops resource family.
type WorkshopService struct {
	rest *client.Client
}

// List returns every workshop visible to the current session.
func (s *WorkshopService) List(ctx context.Context) ([]*schema.Workshop, error) {
	var out []*schema.Workshop
	if err := s.rest.Get(ctx, "/workshops/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one workshop by id.
func (s *WorkshopService) Get(ctx context.Context, id int) (*schema.Workshop, error) {
	var out schema.Workshop
	if err := s.rest.Get(ctx, fmt.Sprintf("/workshops/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create schedules a new workshop. Requires an admin or operations session.
func (s *WorkshopService) Create(ctx context.Context, input *schema.WorkshopInput) (*schema.Workshop, error) {
	var out schema.Workshop
	if err := s.rest.Post(ctx, "/workshops/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a workshop's writable fields.
func (s *WorkshopService) Update(ctx context.Context, id int, input *schema.WorkshopInput) (*schema.Workshop, error) {
	var out schema.Workshop
	if err := s.rest.Put(ctx, fmt.Sprintf("/workshops/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a workshop.
func (s *WorkshopService) Delete(ctx context.Context, id int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("/workshops/%d", id))
}
