// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Store interface.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ElvisGalvez/bill-app/internal/models"
	"github.com/ElvisGalvez/bill-app/internal/storage"
)

var _ storage.Store = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS bills (
    seq BIGSERIAL,
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    amount NUMERIC NOT NULL DEFAULT 0,
    vat TEXT NOT NULL DEFAULT '',
    pct INTEGER NOT NULL DEFAULT 20,
    commentary TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    comment_admin TEXT NOT NULL DEFAULT '',
    file_url TEXT NOT NULL DEFAULT '',
    file_name TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_bills_email ON bills(email);
`

type Store struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL, pings it and applies the schema.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	const op = "postgres.New"

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: migrations: %w", op, err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

const billColumns = `id, email, type, name, date, amount::text, vat, pct, commentary, status, comment_admin, file_url, file_name`

func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) error {
	const op = "postgres.CreateBill"

	_, err := s.pool.Exec(ctx, `
		INSERT INTO bills (id, email, type, name, date, amount, vat, pct, commentary, status, comment_admin, file_url, file_name)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9, $10, $11, $12, $13)`,
		bill.ID, bill.Email, bill.Type, bill.Name, bill.Date, bill.Amount.String(), bill.VAT, bill.Pct,
		bill.Commentary, string(bill.Status), bill.CommentAdmin, bill.FileURL, bill.FileName,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: bill %s: %w", op, bill.ID, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	const op = "postgres.GetBill"

	row := s.pool.QueryRow(ctx, "SELECT "+billColumns+" FROM bills WHERE id = $1", billID)
	bill, err := scanBill(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: bill %s: %w", op, billID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bill, nil
}

func (s *Store) UpdateBill(ctx context.Context, bill *models.Bill) error {
	const op = "postgres.UpdateBill"

	tag, err := s.pool.Exec(ctx, `
		UPDATE bills SET email = $1, type = $2, name = $3, date = $4, amount = $5::numeric, vat = $6, pct = $7,
			commentary = $8, status = $9, comment_admin = $10, file_url = $11, file_name = $12
		WHERE id = $13`,
		bill.Email, bill.Type, bill.Name, bill.Date, bill.Amount.String(), bill.VAT, bill.Pct,
		bill.Commentary, string(bill.Status), bill.CommentAdmin, bill.FileURL, bill.FileName,
		bill.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: bill %s: %w", op, bill.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) ListBills(ctx context.Context, email string) ([]models.Bill, error) {
	const op = "postgres.ListBills"

	query := "SELECT " + billColumns + " FROM bills"
	var args []any
	if email != "" {
		query += " WHERE email = $1"
		args = append(args, email)
	}
	query += " ORDER BY seq"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s (rows): %w", op, err)
	}

	return bills, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	const op = "postgres.CreateUser"

	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, type, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, string(user.Type), user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: user %s: %w", op, user.Email, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "postgres.GetUserByEmail", "email", email)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "postgres.GetUserByID", "id", id)
}

func (s *Store) getUser(ctx context.Context, op, column, value string) (*models.User, error) {
	var (
		user models.User
		role string
	)
	err := s.pool.QueryRow(ctx,
		"SELECT id, type, name, email, password_hash, created_at FROM users WHERE "+column+" = $1",
		value,
	).Scan(&user.ID, &role, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user.Type = models.Role(role)
	return &user, nil
}

func scanBill(row pgx.Row) (*models.Bill, error) {
	var (
		bill   models.Bill
		amount string
		status string
	)
	err := row.Scan(
		&bill.ID, &bill.Email, &bill.Type, &bill.Name, &bill.Date, &amount, &bill.VAT, &bill.Pct,
		&bill.Commentary, &status, &bill.CommentAdmin, &bill.FileURL, &bill.FileName,
	)
	if err != nil {
		return nil, err
	}

	bill.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("bill %s has invalid amount %q: %w", bill.ID, amount, err)
	}
	bill.Status = models.BillStatus(status)
	return &bill, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
