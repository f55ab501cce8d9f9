package frontend

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"slices"
	"time"

	"github.com/ElvisGalvez/bill-app/internal/format"
	"github.com/ElvisGalvez/bill-app/internal/models"
)

// AttrBillURL is the data attribute holding a receipt URL on the eye icon.
const AttrBillURL = "data-bill-url"

// Bills backs the employee bills list.
type Bills struct {
	opts Options
}

func NewBills(opts Options) *Bills {
	return &Bills{opts: opts}
}

// GetBills fetches the bills, newest first, with display dates and statuses.
// It returns nil, nil when no store is configured and the store's error
// unchanged when the fetch fails.
func (b *Bills) GetBills(ctx context.Context) ([]models.DisplayBill, error) {
	if b.opts.Store == nil {
		return nil, nil
	}

	bills, err := b.opts.Store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}

	return formatBills(b.opts.logger(), bills), nil
}

// HandleClickIconEye shows the receipt referenced by el in the modal. It does
// nothing when no modal is configured.
func (b *Bills) HandleClickIconEye(el Element) {
	if b.opts.Modal == nil {
		return
	}

	billURL := el.GetAttribute(AttrBillURL)
	imgWidth := b.opts.Modal.Width() / 2

	b.opts.Modal.SetBody(fmt.Sprintf(
		`<div style="text-align: center;" class="bill-proof-container"><img width="%d" src="%s" alt="Bill" /></div>`,
		imgWidth, html.EscapeString(billURL),
	))
	b.opts.Modal.Modal("show")
}

// HandleClickNewBill opens the new bill form.
func (b *Bills) HandleClickNewBill() {
	b.opts.navigate(RouteNewBill)
}

// formatBills sorts a copy of bills by date, newest first, and formats it.
// Bills with an unparseable date keep their raw date and go last.
func formatBills(logger *slog.Logger, bills []models.Bill) []models.DisplayBill {
	type entry struct {
		bill  models.Bill
		date  time.Time
		valid bool
	}

	entries := make([]entry, len(bills))
	for i, bill := range bills {
		date, err := format.ParseDate(bill.Date)
		entries[i] = entry{bill: bill, date: date, valid: err == nil}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.valid && b.valid:
			return b.date.Compare(a.date)
		case a.valid:
			return -1
		case b.valid:
			return 1
		default:
			return 0
		}
	})

	out := make([]models.DisplayBill, len(entries))
	for i, e := range entries {
		date := e.bill.Date
		if e.valid {
			// ParseDate already succeeded.
			date, _ = format.Date(e.bill.Date)
		} else {
			logger.Warn("Bill has a malformed date", "bill_id", e.bill.ID, "date", e.bill.Date)
		}

		out[i] = models.DisplayBill{
			Bill:   e.bill,
			Date:   date,
			Status: format.Status(e.bill.Status),
		}
	}
	return out
}
