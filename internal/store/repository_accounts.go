package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, name, role, balance, created_at, updated_at`

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	if err := row.Scan(&a.ID, &a.Name, &a.Role, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, name, role string, initial int64) (*Account, error) {
	if initial < 0 {
		return nil, ErrInvalidAmount
	}
	row := s.Pool.QueryRow(ctx,
		`INSERT INTO accounts (id, name, role, balance) VALUES ($1,$2,$3,$4) RETURNING `+accountColumns,
		NewID(), name, role, initial)
	return scanAccount(row)
}

func (s *Store) GetAccount(ctx context.Context, id string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (s *Store) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE name = $1`, name)
	return scanAccount(row)
}

// FindRecipient resolves a transfer recipient by account id or unique name.
func (s *Store) FindRecipient(ctx context.Context, ref string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 OR name = $1`, ref)
	return scanAccount(row)
}

func (s *Store) ListAccounts(ctx context.Context, limit, offset int) ([]Account, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Account{}
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Role, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// PurgeAccount removes an account together with its transactions and game
// sessions (foreign keys cascade).
func (s *Store) PurgeAccount(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
