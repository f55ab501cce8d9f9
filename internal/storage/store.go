// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/ElvisGalvez/bill-app/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Store defines the persistence operations of the backend.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreateBill persists a new bill. bill.ID must be set by the caller.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID. Returns ErrNotFound if missing.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// UpdateBill replaces every field of an existing bill.
	// Returns ErrNotFound if the bill does not exist.
	UpdateBill(ctx context.Context, bill *models.Bill) error

	// ListBills returns the bills owned by email, or all bills when email is
	// empty, oldest first.
	ListBills(ctx context.Context, email string) ([]models.Bill, error)

	// CreateUser inserts a user. Returns ErrConflict for a taken email.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns ErrNotFound when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns ErrNotFound when no user has that ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
