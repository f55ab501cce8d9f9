// Package frontend is the client core of Billed: the containers behind the
// Bills, Login, NewBill and Dashboard views. Rendering is left to callers;
// every collaborator is injected through Options.
package frontend

//go:generate mockgen -source=frontend.go -destination=mocks/mock_store.go -package=mocks
//go:generate mockgen -source=../localstore/localstore.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"
	"log/slog"

	"github.com/ElvisGalvez/bill-app/internal/localstore"
	"github.com/ElvisGalvez/bill-app/internal/models"
)

// Routes of the application views.
const (
	RouteLogin          = "/"
	RouteBills          = "#employee/bills"
	RouteNewBill        = "#employee/bill/new"
	RouteAdminDashboard = "#admin/dashboard"
)

// HomeRoute returns the landing view for role.
func HomeRoute(role models.Role) string {
	if role == models.RoleAdmin {
		return RouteAdminDashboard
	}
	return RouteBills
}

// Store is the remote store the containers talk to.
type Store interface {
	Bills() BillsAPI
	Users() UsersAPI
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type BillsAPI interface {
	List(ctx context.Context) ([]models.Bill, error)
	Create(ctx context.Context, upload models.BillUpload) (*models.UploadResult, error)
	Update(ctx context.Context, key string, bill models.Bill) (*models.Bill, error)
}

type UsersAPI interface {
	Create(ctx context.Context, session models.Session) error
}

// Navigator switches the current view.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Modal is the receipt preview dialog.
type Modal interface {
	SetBody(html string)
	// Modal issues a display command such as "show".
	Modal(command string)
	// Width is the dialog width in pixels.
	Width() int
}

// Element is a rendered element carrying data attributes.
type Element interface {
	GetAttribute(name string) string
}

// Options wires a container. Store may be nil, in which case remote
// operations are no-ops.
type Options struct {
	Store     Store
	Storage   localstore.Storage
	Navigator Navigator
	Modal     Modal
	Logger    *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) navigate(route string) {
	if o.Navigator != nil {
		o.Navigator.Navigate(route)
	}
}
