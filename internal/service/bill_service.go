package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/ElvisGalvez/bill-app/internal/files"
	"github.com/ElvisGalvez/bill-app/internal/middleware"
	"github.com/ElvisGalvez/bill-app/internal/models"
	"github.com/ElvisGalvez/bill-app/internal/storage"
	"github.com/ElvisGalvez/bill-app/pkg/api"
)

var (
	errNotOwner      = errors.New("bill belongs to another employee")
	errReviewIsAdmin = errors.New("only an admin can accept or refuse a bill")
	errReviewed      = errors.New("bill was already reviewed")
)

// Uploads stores receipt files.
type Uploads interface {
	Save(ctx context.Context, key, fileName string, data []byte) (filePath, fileURL string, err error)
}

// BillService implements the BillService RPC interface. Every call expects
// the caller identity from middleware.RequireAuth in the context.
type BillService struct {
	store   storage.Store
	uploads Uploads
	logger  *slog.Logger
}

var _ api.BillServiceHandler = (*BillService)(nil)

func NewBillService(store storage.Store, uploads Uploads, logger *slog.Logger) *BillService {
	return &BillService{
		store:   store,
		uploads: uploads,
		logger:  logger,
	}
}

// ListBills returns the caller's bills; admins see every bill.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	owner := middleware.GetEmail(ctx)
	if middleware.GetRole(ctx) == models.RoleAdmin {
		owner = ""
	}

	bills, err := s.store.ListBills(ctx, owner)
	if err != nil {
		s.logger.Error("Failed to list bills", "email", owner, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ListBillsResponse{Bills: bills}), nil
}

// CreateBill stores the receipt and creates a pending bill keyed by a new ID.
func (s *BillService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	if err := req.Msg.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if !canAct(ctx, req.Msg.Email) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}

	key := uuid.New().String()
	filePath, fileURL, err := s.uploads.Save(ctx, key, req.Msg.FileName, req.Msg.File)
	if errors.Is(err, files.ErrUnsupportedType) {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err != nil {
		s.logger.Error("Failed to store receipt", "key", key, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	bill := &models.Bill{
		ID:       key,
		Email:    req.Msg.Email,
		Pct:      models.DefaultPct,
		Status:   models.StatusPending,
		FileURL:  fileURL,
		FileName: req.Msg.FileName,
	}
	if err := s.store.CreateBill(ctx, bill); err != nil {
		s.logger.Error("Failed to create bill", "key", key, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Bill created", "key", key, "email", bill.Email, "file", filePath)
	return connect.NewResponse(&api.CreateBillResponse{
		FilePath: filePath,
		FileURL:  fileURL,
		Key:      key,
	}), nil
}

// UpdateBill replaces a bill's metadata. Employees may edit their own bills
// and keep them pending; admins may set any status and comment.
func (s *BillService) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	if err := req.Msg.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	existing, err := s.store.GetBill(ctx, req.Msg.Key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if !canAct(ctx, existing.Email) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}
	// Employees only edit bills still awaiting review.
	if middleware.GetRole(ctx) != models.RoleAdmin && existing.Status != models.StatusPending {
		return nil, connect.NewError(connect.CodePermissionDenied, errReviewed)
	}

	updated := req.Msg.Bill
	updated.ID = existing.ID
	updated.Email = existing.Email
	if updated.FileURL == "" {
		updated.FileURL = existing.FileURL
	}
	if updated.FileName == "" {
		updated.FileName = existing.FileName
	}
	if updated.Status == "" {
		updated.Status = existing.Status
	}
	if updated.Pct == 0 {
		updated.Pct = models.DefaultPct
	}

	if middleware.GetRole(ctx) != models.RoleAdmin {
		if updated.Status != models.StatusPending || updated.CommentAdmin != existing.CommentAdmin {
			return nil, connect.NewError(connect.CodePermissionDenied, errReviewIsAdmin)
		}
	}

	if err := s.store.UpdateBill(ctx, &updated); err != nil {
		s.logger.Error("Failed to update bill", "key", updated.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Bill updated", "key", updated.ID, "status", updated.Status, "by", middleware.GetEmail(ctx))
	return connect.NewResponse(&api.UpdateBillResponse{Bill: updated}), nil
}

// canAct reports whether the caller may act on a bill owned by owner.
func canAct(ctx context.Context, owner string) bool {
	return middleware.GetRole(ctx) == models.RoleAdmin || middleware.GetEmail(ctx) == owner
}
