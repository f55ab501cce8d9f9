// Package storagetest holds the behavioral contract every storage.Store
// implementation must satisfy.
package storagetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElvisGalvez/bill-app/internal/models"
	"github.com/ElvisGalvez/bill-app/internal/storage"
)

// Run exercises store. The store must start empty.
func Run(t *testing.T, store storage.Store) {
	ctx := context.Background()

	t.Run("CreateBill and GetBill round trip", func(t *testing.T) {
		bill := &models.Bill{
			ID:         uuid.New().String(),
			Email:      "a@a",
			Type:       "Hôtel et logement",
			Name:       "encore",
			Date:       "2004-04-04",
			Amount:     decimal.RequireFromString("400.50"),
			VAT:        "80",
			Pct:        20,
			Commentary: "séminaire billed",
			Status:     models.StatusPending,
			FileURL:    "https://billed.local/public/receipt.jpg",
			FileName:   "receipt.jpg",
		}
		require.NoError(t, store.CreateBill(ctx, bill))

		got, err := store.GetBill(ctx, bill.ID)
		require.NoError(t, err)
		assert.True(t, bill.Amount.Equal(got.Amount), "amount %s != %s", got.Amount, bill.Amount)
		got.Amount = bill.Amount
		assert.Equal(t, *bill, *got)
	})

	t.Run("GetBill returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetBill(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("CreateBill rejects duplicate ID", func(t *testing.T) {
		bill := &models.Bill{ID: uuid.New().String(), Email: "dup@a", Status: models.StatusPending}
		require.NoError(t, store.CreateBill(ctx, bill))
		assert.ErrorIs(t, store.CreateBill(ctx, bill), storage.ErrConflict)
	})

	t.Run("UpdateBill replaces fields", func(t *testing.T) {
		bill := &models.Bill{ID: uuid.New().String(), Email: "upd@a", Status: models.StatusPending, Pct: 20}
		require.NoError(t, store.CreateBill(ctx, bill))

		bill.Status = models.StatusRefused
		bill.CommentAdmin = "justificatif illisible"
		bill.Amount = decimal.NewFromInt(100)
		require.NoError(t, store.UpdateBill(ctx, bill))

		got, err := store.GetBill(ctx, bill.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRefused, got.Status)
		assert.Equal(t, "justificatif illisible", got.CommentAdmin)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("UpdateBill returns ErrNotFound", func(t *testing.T) {
		err := store.UpdateBill(ctx, &models.Bill{ID: "nonexistent-id"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListBills filters by email", func(t *testing.T) {
		for _, email := range []string{"list-a@a", "list-b@a", "list-a@a"} {
			require.NoError(t, store.CreateBill(ctx, &models.Bill{
				ID:     uuid.New().String(),
				Email:  email,
				Status: models.StatusPending,
			}))
		}

		own, err := store.ListBills(ctx, "list-a@a")
		require.NoError(t, err)
		assert.Len(t, own, 2)
		for _, b := range own {
			assert.Equal(t, "list-a@a", b.Email)
		}

		none, err := store.ListBills(ctx, "nobody@a")
		require.NoError(t, err)
		assert.Empty(t, none)

		all, err := store.ListBills(ctx, "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 3)
	})

	t.Run("users", func(t *testing.T) {
		user := models.NewUser(models.RoleAdmin, "", "admin@billed.local", "hash")
		require.NoError(t, store.CreateUser(ctx, user))

		byEmail, err := store.GetUserByEmail(ctx, "admin@billed.local")
		require.NoError(t, err)
		assert.Equal(t, *user, *byEmail)

		byID, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "admin", byID.Name)

		_, err = store.GetUserByEmail(ctx, "missing@billed.local")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.GetUserByID(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		again := models.NewUser(models.RoleEmployee, "", "admin@billed.local", "hash")
		assert.ErrorIs(t, store.CreateUser(ctx, again), storage.ErrConflict)
	})
}
