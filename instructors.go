package spacepoint

import (
	"context"
	"fmt"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// InstructorService wraps the /instructors resource family.
type InstructorService struct {
	rest *client.Client
}

// List returns every instructor.
func (s *InstructorService) List(ctx context.Context) ([]*schema.Instructor, error) {
	var out []*schema.Instructor
	if err := s.rest.Get(ctx, "/instructors/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one instructor by id.
func (s *InstructorService) Get(ctx context.Context, id int) (*schema.Instructor, error) {
	var out schema.Instructor
	if err := s.rest.Get(ctx, fmt.Sprintf("/instructors/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new instructor.
func (s *InstructorService) Create(ctx context.Context, input *schema.InstructorInput) (*schema.Instructor, error) {
	var out schema.Instructor
	if err := s.rest.Post(ctx, "/instructors/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an instructor's writable fields.
func (s *InstructorService) Update(ctx context.Context, id int, input *schema.InstructorInput) (*schema.Instructor, error) {
	var out schema.Instructor
	if err := s.rest.Put(ctx, fmt.Sprintf("/instructors/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an instructor record.
func (s *InstructorService) Delete(ctx context.Context, id int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("/instructors/%d", id))
}
