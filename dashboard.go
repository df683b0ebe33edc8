package spacepoint

import (
	"context"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// DashboardService wraps the dashboard aggregates served to privileged
// roles.
type DashboardService struct {
	rest *client.Client
}

// Statistics returns fleet and instructor aggregates.
func (s *DashboardService) Statistics(ctx context.Context) (*schema.DashboardStatistics, error) {
	var out schema.DashboardStatistics
	if err := s.rest.Get(ctx, "/dashboard/dashboard/statistics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
