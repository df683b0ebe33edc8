package spacepoint

import (
	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/session"
)

// Client bundles the session store, the request client and the typed
// services for one authenticated session.
type Client struct {
	store session.Store
	rest  *client.Client

	auth          *AuthService
	workshops     *WorkshopService
	users         *UserService
	cubesats      *CubesatService
	instructors   *InstructorService
	receipts      *ReceiptService
	notifications *NotificationService
	dashboard     *DashboardService
}

// New creates a Client.
func New(options ...Option) *Client {
	config := &config{store: session.NewMemoryStore()}
	for _, opt := range options {
		opt(config)
	}
	rest := client.New(append(config.clientOptions, client.WithStore(config.store))...)
	ret := &Client{store: config.store, rest: rest}
	ret.auth = &AuthService{rest: rest, store: config.store}
	ret.workshops = &WorkshopService{rest: rest}
	ret.users = &UserService{rest: rest}
	ret.cubesats = &CubesatService{rest: rest}
	ret.instructors = &InstructorService{rest: rest}
	ret.receipts = &ReceiptService{rest: rest}
	ret.notifications = &NotificationService{rest: rest}
	ret.dashboard = &DashboardService{rest: rest}
	return ret
}

// Session exposes the session store.
func (c *Client) Session() session.Store {
	return c.store
}

// Rest exposes the underlying request client for endpoints without a typed
// service.
func (c *Client) Rest() *client.Client {
	return c.rest
}

// Auth returns the login/logout service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Workshops returns the workshop service.
func (c *Client) Workshops() *WorkshopService {
	return c.workshops
}

// Users returns the user administration service.
func (c *Client) Users() *UserService {
	return c.users
}

// Cubesats returns the CubeSat inventory service.
func (c *Client) Cubesats() *CubesatService {
	return c.cubesats
}

// Instructors returns the instructor service.
func (c *Client) Instructors() *InstructorService {
	return c.instructors
}

// Receipts returns the equipment receipt service.
func (c *Client) Receipts() *ReceiptService {
	return c.receipts
}

// Notifications returns the notification service.
func (c *Client) Notifications() *NotificationService {
	return c.notifications
}

// Dashboard returns the dashboard service.
func (c *Client) Dashboard() *DashboardService {
	return c.dashboard
}
