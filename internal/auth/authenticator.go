package auth

import (
	"context"

	"github.com/ElvisGalvez/bill-app/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// The service layer only sees this, so password auth can be swapped for
// another scheme without touching the RPC handlers.
type Authenticator interface {
	// Register creates a new account of the given role.
	// Returns ErrEmailExists when the email is already registered.
	Register(ctx context.Context, role models.Role, name, email, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the matching user.
	// Any mismatch is reported as ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks the credential before an account is created.
	ValidateCredential(credential string) error
}
