package frontend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ElvisGalvez/bill-app/internal/files"
	"github.com/ElvisGalvez/bill-app/internal/localstore"
	"github.com/ElvisGalvez/bill-app/internal/models"
)

var (
	ErrUnsupportedFile = errors.New("only jpg, jpeg and png receipts are accepted")
	ErrNoUpload        = errors.New("no receipt uploaded yet")
)

// BillForm holds the raw values of the new bill form.
type BillForm struct {
	Type       string
	Name       string
	Date       string
	Amount     string
	VAT        string
	Pct        string
	Commentary string
}

type uploadedReceipt struct {
	key      string
	fileURL  string
	fileName string
}

// NewBill backs the new bill form: the receipt is uploaded as soon as it is
// chosen, the rest of the bill is sent on submit.
type NewBill struct {
	opts Options

	mu      sync.Mutex
	receipt *uploadedReceipt
}

func NewNewBill(opts Options) *NewBill {
	return &NewBill{opts: opts}
}

// HandleChangeFile uploads the chosen receipt for the session user. filePath
// may be a full client path; only its base name is kept.
func (n *NewBill) HandleChangeFile(ctx context.Context, filePath string, content []byte) (*models.UploadResult, error) {
	fileName := baseName(filePath)
	if !files.AllowedExtension(fileName) {
		return nil, ErrUnsupportedFile
	}
	if n.opts.Store == nil {
		return nil, nil
	}

	session, err := localstore.LoadSession(n.opts.Storage)
	if err != nil {
		return nil, err
	}

	result, err := n.opts.Store.Bills().Create(ctx, models.BillUpload{
		File:     content,
		FileName: fileName,
		Email:    session.Email,
	})
	if err != nil {
		n.opts.logger().Error("Receipt upload failed", "file", fileName, "error", err)
		return nil, err
	}

	n.mu.Lock()
	n.receipt = &uploadedReceipt{key: result.Key, fileURL: result.FileURL, fileName: fileName}
	n.mu.Unlock()

	return result, nil
}

// HandleSubmit completes the uploaded bill with form and returns to the bills
// list.
func (n *NewBill) HandleSubmit(ctx context.Context, form BillForm) (*models.Bill, error) {
	n.mu.Lock()
	receipt := n.receipt
	n.mu.Unlock()
	if receipt == nil {
		return nil, ErrNoUpload
	}
	if n.opts.Store == nil {
		return nil, nil
	}

	session, err := localstore.LoadSession(n.opts.Storage)
	if err != nil {
		return nil, err
	}

	amount := decimal.Zero
	if s := strings.TrimSpace(form.Amount); s != "" {
		amount, err = decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", form.Amount, err)
		}
	}

	pct, err := strconv.Atoi(strings.TrimSpace(form.Pct))
	if err != nil || pct == 0 {
		pct = models.DefaultPct
	}

	bill := models.Bill{
		ID:         receipt.key,
		Email:      session.Email,
		Type:       form.Type,
		Name:       form.Name,
		Date:       form.Date,
		Amount:     amount,
		VAT:        form.VAT,
		Pct:        pct,
		Commentary: form.Commentary,
		Status:     models.StatusPending,
		FileURL:    receipt.fileURL,
		FileName:   receipt.fileName,
	}

	updated, err := n.opts.Store.Bills().Update(ctx, receipt.key, bill)
	if err != nil {
		n.opts.logger().Error("Bill update failed", "key", receipt.key, "error", err)
		return nil, err
	}
	if updated == nil {
		updated = &bill
	}

	n.opts.navigate(RouteBills)
	return updated, nil
}

func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}
