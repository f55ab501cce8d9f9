package frontend

import (
	"context"
	"fmt"
	"sync"

	"github.com/ElvisGalvez/bill-app/internal/localstore"
	"github.com/ElvisGalvez/bill-app/internal/models"
)

// LoginState is the progress of the last login submission.
type LoginState int

const (
	StateIdle LoginState = iota
	StateAuthenticating
	StateAuthenticated
	StateCreatingAccount
	StateSessionPersisted
	StateNavigatedHome
	StateFailed
)

func (s LoginState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateCreatingAccount:
		return "creating_account"
	case StateSessionPersisted:
		return "session_persisted"
	case StateNavigatedHome:
		return "navigated_home"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("LoginState(%d)", int(s))
	}
}

// Login backs the login screen. Submissions may run concurrently; the last
// one to write wins.
type Login struct {
	opts Options

	mu    sync.Mutex
	state LoginState
}

func NewLogin(opts Options) *Login {
	return &Login{opts: opts}
}

// LastState reports where the most recent submission got to.
func (l *Login) LastState() LoginState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Login) setState(s LoginState) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

// HandleSubmitEmployee submits the employee login form.
func (l *Login) HandleSubmitEmployee(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	return l.Submit(ctx, models.RoleEmployee, creds)
}

// HandleSubmitAdmin submits the administration login form.
func (l *Login) HandleSubmitAdmin(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	return l.Submit(ctx, models.RoleAdmin, creds)
}

// Submit logs in with creds, creating the account when login fails, then
// persists the session and navigates to the role's landing view.
//
// With no store configured Submit does nothing and returns nil, nil. An
// account creation failure is returned unchanged and nothing is persisted.
// A successful login without a token clears any stored token.
func (l *Login) Submit(ctx context.Context, role models.Role, creds models.Credentials) (*models.Session, error) {
	if l.opts.Store == nil {
		return nil, nil
	}

	logger := l.opts.logger().With("email", creds.Email, "type", role)
	session := models.NewSession(role, creds)

	l.setState(StateAuthenticating)
	resp, err := l.opts.Store.Login(ctx, models.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	if err != nil {
		logger.Info("Login failed, creating account", "error", err)
		l.setState(StateCreatingAccount)

		if err := l.opts.Store.Users().Create(ctx, session); err != nil {
			logger.Error("Account creation failed", "error", err)
			l.setState(StateFailed)
			return nil, err
		}
	} else if resp != nil && resp.JWT != "" {
		if err := l.opts.Storage.SetItem(localstore.KeyJWT, resp.JWT); err != nil {
			l.setState(StateFailed)
			return nil, fmt.Errorf("failed to store token: %w", err)
		}
	} else if err := l.opts.Storage.RemoveItem(localstore.KeyJWT); err != nil {
		// A token left by an earlier user must not outlive this login.
		l.setState(StateFailed)
		return nil, fmt.Errorf("failed to clear token: %w", err)
	}
	l.setState(StateAuthenticated)

	if err := localstore.SaveSession(l.opts.Storage, session); err != nil {
		l.setState(StateFailed)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	l.setState(StateSessionPersisted)

	l.opts.navigate(HomeRoute(role))
	l.setState(StateNavigatedHome)

	logger.Debug("Logged in")
	return &session, nil
}
