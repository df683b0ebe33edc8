package spacepoint

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// NotificationService wraps the /notifications resource family, scoped to
// the current session's user.
type NotificationService struct {
	rest *client.Client
}

// List returns the session user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]*schema.Notification, error) {
	var out []*schema.Notification
	if err := s.rest.Get(ctx, "/notifications/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead flags one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id int) error {
	_, err := s.rest.Dispatch(ctx, fmt.Sprintf("/notifications/%d/read", id),
		client.WithMethod(http.MethodPut))
	return err
}
