package frontend_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ElvisGalvez/bill-app/internal/frontend"
	"github.com/ElvisGalvez/bill-app/internal/models"
)

var dashboardBills = []models.Bill{
	{ID: "1", Date: "2004-04-04", Status: models.StatusPending, Amount: decimal.NewFromInt(400), Pct: 20},
	{ID: "2", Date: "2003-03-03", Status: models.StatusAccepted, Amount: decimal.NewFromInt(100), Pct: 20},
	{ID: "3", Date: "2002-02-02", Status: models.StatusRefused, Amount: decimal.NewFromInt(348), Pct: 20},
	{ID: "4", Date: "2005-05-05", Status: models.StatusPending, Amount: decimal.NewFromInt(120), Pct: 20},
}

func TestBillsByStatus(t *testing.T) {
	f := newFixture(t)
	f.bills.EXPECT().List(gomock.Any()).Return(dashboardBills, nil)

	got, err := frontend.NewDashboard(f.options()).BillsByStatus(context.Background(), models.StatusPending)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "5 Mai. 05", got[0].Date)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, "En attente", got[1].Status)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.bills.EXPECT().List(gomock.Any()).Return(dashboardBills, nil)

	totals, err := frontend.NewDashboard(f.options()).Summary(context.Background())
	require.NoError(t, err)

	pending := totals[models.StatusPending]
	assert.Equal(t, 2, pending.Count)
	assert.True(t, decimal.NewFromInt(520).Equal(pending.Amount))
	assert.Equal(t, 1, totals[models.StatusRefused].Count)
}

func TestReview(t *testing.T) {
	f := newFixture(t)
	f.bills.EXPECT().Update(gomock.Any(), "1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, bill models.Bill) (*models.Bill, error) {
			return &bill, nil
		})
	f.nav.EXPECT().Navigate(frontend.RouteAdminDashboard)

	updated, err := frontend.NewDashboard(f.options()).Review(context.Background(), dashboardBills[0], models.StatusRefused, "pas de justificatif")
	require.NoError(t, err)

	assert.Equal(t, models.StatusRefused, updated.Status)
	assert.Equal(t, "pas de justificatif", updated.CommentAdmin)
	assert.Equal(t, models.StatusPending, dashboardBills[0].Status, "input bill must not change")
}

func TestReviewRejectsPending(t *testing.T) {
	f := newFixture(t)

	_, err := frontend.NewDashboard(f.options()).Review(context.Background(), dashboardBills[0], models.StatusPending, "")
	assert.ErrorIs(t, err, frontend.ErrInvalidDecision)
}
