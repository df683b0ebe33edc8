package spacepoint

import (
	"context"
	"fmt"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// CubesatService wraps the /cubesats resource family, the CubeSat kit
// inventory. Instructor sessions see only their own fleet; admin and
// operations sessions see everything.
type CubesatService struct {
	rest *client.Client
}

// List returns the CubeSats visible to the current session.
func (s *CubesatService) List(ctx context.Context) ([]*schema.Cubesat, error) {
	var out []*schema.Cubesat
	if err := s.rest.Get(ctx, "/cubesats/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one CubeSat by id.
func (s *CubesatService) Get(ctx context.Context, id int) (*schema.Cubesat, error) {
	var out schema.Cubesat
	if err := s.rest.Get(ctx, fmt.Sprintf("/cubesats/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new CubeSat kit. The service derives completeness and
// the missing-items summary from the component counts.
func (s *CubesatService) Create(ctx context.Context, input *schema.CubesatInput) (*schema.Cubesat, error) {
	var out schema.Cubesat
	if err := s.rest.Post(ctx, "/cubesats/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a CubeSat's writable fields; completeness is recomputed.
func (s *CubesatService) Update(ctx context.Context, id int, input *schema.CubesatInput) (*schema.Cubesat, error) {
	var out schema.Cubesat
	if err := s.rest.Put(ctx, fmt.Sprintf("/cubesats/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a CubeSat record.
func (s *CubesatService) Delete(ctx context.Context, id int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("/cubesats/%d", id))
}

// ExportExcel downloads the whole inventory as an Excel workbook. The bytes
// are returned verbatim; this is the one endpoint that does not speak JSON.
func (s *CubesatService) ExportExcel(ctx context.Context) ([]byte, error) {
	result, err := s.rest.Dispatch(ctx, "/cubesats/export/excel")
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
