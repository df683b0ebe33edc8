package spacepoint

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// ReceiptService wraps the /receipts resource family: equipment receipts
// issued against a CubeSat and approved by its instructor.
type ReceiptService struct {
	rest *client.Client
}

// Create issues a receipt for the given CubeSat and notifies its instructor
// for approval. Requires an admin or operations session.
func (s *ReceiptService) Create(ctx context.Context, input *schema.ReceiptInput) (*schema.ReceiptCreated, error) {
	var out schema.ReceiptCreated
	if err := s.rest.Post(ctx, "/receipts/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every receipt, newest first.
func (s *ReceiptService) List(ctx context.Context) ([]*schema.Receipt, error) {
	var out []*schema.Receipt
	if err := s.rest.Get(ctx, "/receipts/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one receipt by id.
func (s *ReceiptService) Get(ctx context.Context, id int) (*schema.Receipt, error) {
	var out schema.Receipt
	if err := s.rest.Get(ctx, fmt.Sprintf("/receipts/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Approve marks a receipt approved. Only the instructor the receipt was
// issued to may approve it; the service also flags the CubeSat as received.
func (s *ReceiptService) Approve(ctx context.Context, id int) error {
	_, err := s.rest.Dispatch(ctx, fmt.Sprintf("/receipts/%d/approve", id),
		client.WithMethod(http.MethodPut))
	return err
}

// Delete removes a receipt and its approval notifications.
func (s *ReceiptService) Delete(ctx context.Context, id int) error {
	return s.rest.Delete(ctx, fmt.Sprintf("/receipts/%d", id))
}
