// Package remote implements the client store over the backend's Connect
// services.
package remote

import (
	"context"

	"connectrpc.com/connect"

	"github.com/ElvisGalvez/bill-app/internal/frontend"
	"github.com/ElvisGalvez/bill-app/internal/localstore"
	"github.com/ElvisGalvez/bill-app/internal/models"
	"github.com/ElvisGalvez/bill-app/pkg/api"
)

// Store talks to the backend. The token saved in local storage at login is
// sent with every call.
type Store struct {
	auth    api.AuthServiceClient
	bills   api.BillServiceClient
	storage localstore.Storage
}

var _ frontend.Store = (*Store)(nil)

func New(httpClient connect.HTTPClient, baseURL string, storage localstore.Storage, opts ...connect.ClientOption) *Store {
	opts = append(opts, connect.WithInterceptors(bearerToken(storage)))
	return &Store{
		auth:    api.NewAuthServiceClient(httpClient, baseURL, opts...),
		bills:   api.NewBillServiceClient(httpClient, baseURL, opts...),
		storage: storage,
	}
}

func (s *Store) Bills() frontend.BillsAPI { return bills{s} }

func (s *Store) Users() frontend.UsersAPI { return users{s} }

func (s *Store) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	resp, err := s.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	}))
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{JWT: resp.Msg.JWT}, nil
}

type users struct{ s *Store }

// Create registers the session's account. The returned token, if any,
// replaces the stored one.
func (u users) Create(ctx context.Context, session models.Session) error {
	resp, err := u.s.auth.CreateUser(ctx, connect.NewRequest(&api.CreateUserRequest{
		Type:     session.Type,
		Name:     models.NameFromEmail(session.Email),
		Email:    session.Email,
		Password: session.Password,
	}))
	if err != nil {
		return err
	}

	if resp.Msg.JWT != "" {
		return u.s.storage.SetItem(localstore.KeyJWT, resp.Msg.JWT)
	}
	return nil
}

type bills struct{ s *Store }

func (b bills) List(ctx context.Context) ([]models.Bill, error) {
	resp, err := b.s.bills.ListBills(ctx, connect.NewRequest(&api.ListBillsRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Bills, nil
}

func (b bills) Create(ctx context.Context, upload models.BillUpload) (*models.UploadResult, error) {
	resp, err := b.s.bills.CreateBill(ctx, connect.NewRequest(&api.CreateBillRequest{
		File:     upload.File,
		FileName: upload.FileName,
		Email:    upload.Email,
	}))
	if err != nil {
		return nil, err
	}
	return &models.UploadResult{
		FilePath: resp.Msg.FilePath,
		FileURL:  resp.Msg.FileURL,
		Key:      resp.Msg.Key,
	}, nil
}

func (b bills) Update(ctx context.Context, key string, bill models.Bill) (*models.Bill, error) {
	resp, err := b.s.bills.UpdateBill(ctx, connect.NewRequest(&api.UpdateBillRequest{
		Key:  key,
		Bill: bill,
	}))
	if err != nil {
		return nil, err
	}
	return &resp.Msg.Bill, nil
}

// bearerToken attaches the stored JWT to outgoing requests.
func bearerToken(storage localstore.Storage) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token := localstore.Token(storage); token != "" && req.Spec().IsClient {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}
