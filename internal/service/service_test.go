package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/ElvisGalvez/bill-app/internal/auth"
	"github.com/ElvisGalvez/bill-app/internal/files"
	"github.com/ElvisGalvez/bill-app/internal/middleware"
	"github.com/ElvisGalvez/bill-app/internal/models"
	"github.com/ElvisGalvez/bill-app/internal/storage/sqlite"
	"github.com/ElvisGalvez/bill-app/pkg/api"
	"github.com/ElvisGalvez/bill-app/pkg/logging"
)

type testServer struct {
	auth  api.AuthServiceClient
	bills api.BillServiceClient
	jwt   *auth.JWTManager
	users *auth.PasswordAuthenticator
	store *sqlite.SQLiteStore
}

// setupTestServer wires both services over a temp SQLite database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()
	store, err := sqlite.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := logging.Discard()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	uploads := files.Dir{Root: filepath.Join(dir, "public"), BaseURL: "http://localhost/public"}

	authPath, authHandler := api.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, logger))
	billPath, billHandler := api.NewBillServiceHandler(
		NewBillService(store, uploads, logger),
		connect.WithInterceptors(middleware.RequireAuth(jwtManager, store)),
	)

	mux := http.NewServeMux()
	mux.Handle(authPath, authHandler)
	mux.Handle(billPath, billHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{
		auth:  api.NewAuthServiceClient(http.DefaultClient, server.URL),
		bills: api.NewBillServiceClient(http.DefaultClient, server.URL),
		jwt:   jwtManager,
		users: authenticator,
		store: store,
	}
}

// token registers a user and returns a bearer token for it.
func (s *testServer) token(t *testing.T, role models.Role, email string) string {
	t.Helper()
	user, err := s.users.Register(context.Background(), role, "", email, "azerty")
	if err != nil {
		t.Fatalf("failed to register %s: %v", email, err)
	}
	token, err := s.jwt.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func upload(t *testing.T, s *testServer, token, email string) string {
	t.Helper()
	resp, err := s.bills.CreateBill(context.Background(), withToken(&api.CreateBillRequest{
		File:     []byte("png bytes"),
		FileName: "receipt.png",
		Email:    email,
	}, token))
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	return resp.Msg.Key
}

func TestCreateUserThenLogin(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	created, err := s.auth.CreateUser(ctx, connect.NewRequest(&api.CreateUserRequest{
		Type:     models.RoleEmployee,
		Email:    "johndoe@email.com",
		Password: "azerty",
	}))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.Msg.User.Name != "johndoe" {
		t.Errorf("expected name johndoe, got %q", created.Msg.User.Name)
	}
	if _, err := s.jwt.Validate(created.Msg.JWT); err != nil {
		t.Errorf("CreateUser token does not validate: %v", err)
	}

	resp, err := s.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "johndoe@email.com",
		Password: "azerty",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := s.jwt.Validate(resp.Msg.JWT)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "johndoe@email.com" || claims.Type != models.RoleEmployee {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestCreateUserErrors(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	if _, err := s.auth.CreateUser(ctx, connect.NewRequest(&api.CreateUserRequest{
		Type: models.RoleAdmin, Email: "admin@company.tld", Password: "azerty",
	})); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	tests := []struct {
		name string
		req  *api.CreateUserRequest
		code connect.Code
	}{
		{"duplicate email", &api.CreateUserRequest{Type: models.RoleAdmin, Email: "admin@company.tld", Password: "azerty"}, connect.CodeAlreadyExists},
		{"bad email", &api.CreateUserRequest{Type: models.RoleAdmin, Email: "not-an-email", Password: "azerty"}, connect.CodeInvalidArgument},
		{"unknown role", &api.CreateUserRequest{Type: "Manager", Email: "m@company.tld", Password: "azerty"}, connect.CodeInvalidArgument},
		{"short password", &api.CreateUserRequest{Type: models.RoleEmployee, Email: "e@company.tld", Password: "abc"}, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.auth.CreateUser(ctx, connect.NewRequest(tt.req))
			if got := connect.CodeOf(err); got != tt.code {
				t.Errorf("expected %v, got %v (%v)", tt.code, got, err)
			}
		})
	}
}

func TestLoginUnknownUser(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Email:    "nobody@email.com",
		Password: "azerty",
	}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestBillRPCsRequireToken(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.bills.ListBills(context.Background(), connect.NewRequest(&api.ListBillsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestCreateBill(t *testing.T) {
	s := setupTestServer(t)
	token := s.token(t, models.RoleEmployee, "a@company.tld")

	resp, err := s.bills.CreateBill(context.Background(), withToken(&api.CreateBillRequest{
		File:     []byte("jpg bytes"),
		FileName: "Receipt.JPG",
		Email:    "a@company.tld",
	}, token))
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	if resp.Msg.Key == "" {
		t.Fatal("expected a key")
	}
	if want := "http://localhost/public/" + resp.Msg.Key + ".jpg"; resp.Msg.FileURL != want {
		t.Errorf("expected url %s, got %s", want, resp.Msg.FileURL)
	}

	bill, err := s.store.GetBill(context.Background(), resp.Msg.Key)
	if err != nil {
		t.Fatalf("bill not stored: %v", err)
	}
	if bill.Status != models.StatusPending || bill.Pct != models.DefaultPct || bill.Email != "a@company.tld" {
		t.Errorf("unexpected stub bill: %+v", bill)
	}
}

func TestCreateBillRejections(t *testing.T) {
	s := setupTestServer(t)
	token := s.token(t, models.RoleEmployee, "a@company.tld")
	ctx := context.Background()

	tests := []struct {
		name string
		req  *api.CreateBillRequest
		code connect.Code
	}{
		{"pdf", &api.CreateBillRequest{File: []byte("x"), FileName: "receipt.pdf", Email: "a@company.tld"}, connect.CodeInvalidArgument},
		{"empty file", &api.CreateBillRequest{File: []byte{}, FileName: "receipt.png", Email: "a@company.tld"}, connect.CodeInvalidArgument},
		{"other employee", &api.CreateBillRequest{File: []byte("x"), FileName: "receipt.png", Email: "b@company.tld"}, connect.CodePermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.bills.CreateBill(ctx, withToken(tt.req, token))
			if got := connect.CodeOf(err); got != tt.code {
				t.Errorf("expected %v, got %v (%v)", tt.code, got, err)
			}
		})
	}
}

func TestListBillsScopedByRole(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	alice := s.token(t, models.RoleEmployee, "alice@company.tld")
	bob := s.token(t, models.RoleEmployee, "bob@company.tld")
	admin := s.token(t, models.RoleAdmin, "admin@company.tld")

	upload(t, s, alice, "alice@company.tld")
	upload(t, s, alice, "alice@company.tld")
	upload(t, s, bob, "bob@company.tld")

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"alice", alice, 2},
		{"bob", bob, 1},
		{"admin", admin, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.bills.ListBills(ctx, withToken(&api.ListBillsRequest{}, tt.token))
			if err != nil {
				t.Fatalf("ListBills failed: %v", err)
			}
			if len(resp.Msg.Bills) != tt.want {
				t.Errorf("expected %d bills, got %d", tt.want, len(resp.Msg.Bills))
			}
		})
	}
}

func TestUpdateBill(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	employee := s.token(t, models.RoleEmployee, "a@company.tld")
	admin := s.token(t, models.RoleAdmin, "admin@company.tld")
	other := s.token(t, models.RoleEmployee, "b@company.tld")
	key := upload(t, s, employee, "a@company.tld")

	form := models.Bill{
		Type:   "Transports",
		Name:   "Vol Paris Londres",
		Date:   "2023-04-04",
		Status: models.StatusPending,
	}

	t.Run("owner completes the form", func(t *testing.T) {
		resp, err := s.bills.UpdateBill(ctx, withToken(&api.UpdateBillRequest{Key: key, Bill: form}, employee))
		if err != nil {
			t.Fatalf("UpdateBill failed: %v", err)
		}
		got := resp.Msg.Bill
		if got.ID != key || got.Email != "a@company.tld" || got.FileName != "receipt.png" {
			t.Errorf("identity or file fields not kept: %+v", got)
		}
		if got.Pct != models.DefaultPct {
			t.Errorf("expected default pct, got %d", got.Pct)
		}
	})

	t.Run("employee cannot accept", func(t *testing.T) {
		accepted := form
		accepted.Status = models.StatusAccepted
		_, err := s.bills.UpdateBill(ctx, withToken(&api.UpdateBillRequest{Key: key, Bill: accepted}, employee))
		if connect.CodeOf(err) != connect.CodePermissionDenied {
			t.Errorf("expected PermissionDenied, got %v", err)
		}
	})

	t.Run("other employee", func(t *testing.T) {
		_, err := s.bills.UpdateBill(ctx, withToken(&api.UpdateBillRequest{Key: key, Bill: form}, other))
		if connect.CodeOf(err) != connect.CodePermissionDenied {
			t.Errorf("expected PermissionDenied, got %v", err)
		}
	})

	t.Run("admin refuses", func(t *testing.T) {
		refused := form
		refused.Status = models.StatusRefused
		refused.CommentAdmin = "pas de justificatif"
		if _, err := s.bills.UpdateBill(ctx, withToken(&api.UpdateBillRequest{Key: key, Bill: refused}, admin)); err != nil {
			t.Fatalf("UpdateBill failed: %v", err)
		}

		stored, err := s.store.GetBill(ctx, key)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if stored.Status != models.StatusRefused || stored.CommentAdmin != "pas de justificatif" {
			t.Errorf("review not stored: %+v", stored)
		}
	})

	t.Run("employee cannot reopen a reviewed bill", func(t *testing.T) {
		reopened := form
		reopened.Name = "edited after refusal"
		_, err := s.bills.UpdateBill(ctx, withToken(&api.UpdateBillRequest{Key: key, Bill: reopened}, employee))
		if connect.CodeOf(err) != connect.CodePermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v", err)
		}

		stored, err := s.store.GetBill(ctx, key)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if stored.Status != models.StatusRefused || stored.Name != form.Name {
			t.Errorf("reviewed bill changed: %+v", stored)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := s.bills.UpdateBill(ctx, withToken(&api.UpdateBillRequest{Key: "missing", Bill: form}, admin))
		if connect.CodeOf(err) != connect.CodeNotFound {
			t.Errorf("expected NotFound, got %v", err)
		}
	})
}
