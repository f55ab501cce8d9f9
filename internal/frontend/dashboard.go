package frontend

import (
	"context"
	"errors"

	"github.com/ElvisGalvez/bill-app/internal/calculator"
	"github.com/ElvisGalvez/bill-app/internal/models"
)

var ErrInvalidDecision = errors.New("a review must accept or refuse the bill")

// Dashboard backs the admin review screen.
type Dashboard struct {
	opts Options
}

func NewDashboard(opts Options) *Dashboard {
	return &Dashboard{opts: opts}
}

// BillsByStatus lists the bills with status, formatted like the bills list.
func (d *Dashboard) BillsByStatus(ctx context.Context, status models.BillStatus) ([]models.DisplayBill, error) {
	if d.opts.Store == nil {
		return nil, nil
	}

	bills, err := d.opts.Store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}

	var matching []models.Bill
	for _, bill := range bills {
		if bill.Status == status {
			matching = append(matching, bill)
		}
	}
	return formatBills(d.opts.logger(), matching), nil
}

// Summary returns the count and amounts of bills per status.
func (d *Dashboard) Summary(ctx context.Context) (map[models.BillStatus]calculator.StatusTotal, error) {
	if d.opts.Store == nil {
		return nil, nil
	}

	bills, err := d.opts.Store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.Totals(bills), nil
}

// Review records an accept or refuse decision on bill and returns to the
// dashboard.
func (d *Dashboard) Review(ctx context.Context, bill models.Bill, status models.BillStatus, comment string) (*models.Bill, error) {
	if status != models.StatusAccepted && status != models.StatusRefused {
		return nil, ErrInvalidDecision
	}
	if d.opts.Store == nil {
		return nil, nil
	}

	bill.Status = status
	bill.CommentAdmin = comment

	updated, err := d.opts.Store.Bills().Update(ctx, bill.ID, bill)
	if err != nil {
		d.opts.logger().Error("Review failed", "bill_id", bill.ID, "error", err)
		return nil, err
	}
	if updated == nil {
		updated = &bill
	}

	d.opts.logger().Info("Bill reviewed", "bill_id", bill.ID, "status", status)
	d.opts.navigate(RouteAdminDashboard)
	return updated, nil
}
