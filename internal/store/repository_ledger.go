package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Balance mutations lock the account row for the read-check-write span, so
// concurrent operations on the same account serialize at the storage layer.

func lockBalance(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	var bal int64
	err := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&bal)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

func setBalance(ctx context.Context, tx pgx.Tx, accountID string, balance int64) error {
	_, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE id = $2`, balance, accountID)
	return err
}

func insertTransaction(ctx context.Context, tx pgx.Tx, accountID, kind string, amount int64) error {
	_, err := tx.Exec(ctx, `INSERT INTO transactions (id, account_id, kind, amount) VALUES ($1,$2,$3,$4)`,
		NewID(), accountID, kind, amount)
	return err
}

// Credit adds amount to the account balance. A non-empty kind appends a
// transaction row in the same database transaction; stake movements pass ""
// because their record is the game session row.
func (s *Store) Credit(ctx context.Context, accountID string, amount int64, kind string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	bal, err := lockBalance(ctx, tx, accountID)
	if err != nil {
		return 0, err
	}
	newBal := bal + amount
	if err := setBalance(ctx, tx, accountID, newBal); err != nil {
		return 0, err
	}
	if kind != "" {
		if err := insertTransaction(ctx, tx, accountID, kind, amount); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBal, nil
}

// Debit subtracts amount from the account balance, failing with
// ErrInsufficientBalance before any state changes when the balance is short.
func (s *Store) Debit(ctx context.Context, accountID string, amount int64, kind string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	bal, err := lockBalance(ctx, tx, accountID)
	if err != nil {
		return 0, err
	}
	if bal < amount {
		return 0, ErrInsufficientBalance
	}
	newBal := bal - amount
	if err := setBalance(ctx, tx, accountID, newBal); err != nil {
		return 0, err
	}
	if kind != "" {
		if err := insertTransaction(ctx, tx, accountID, kind, amount); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBal, nil
}

// Transfer moves amount between two accounts atomically and appends the
// matched transfer-out/transfer-in pair. Rows are locked in ascending id
// order so two opposite-direction transfers cannot deadlock. Returns the
// sender's new balance.
func (s *Store) Transfer(ctx context.Context, senderID, recipientID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var senderBal, recipientBal int64
	if senderID == recipientID {
		// Degenerate self-transfer: one lock, net-zero balance change.
		bal, err := lockBalance(ctx, tx, senderID)
		if err != nil {
			return 0, err
		}
		if bal < amount {
			return 0, ErrInsufficientBalance
		}
		senderBal = bal
	} else {
		first, second := senderID, recipientID
		if second < first {
			first, second = second, first
		}
		firstBal, err := lockBalance(ctx, tx, first)
		if err != nil {
			return 0, err
		}
		secondBal, err := lockBalance(ctx, tx, second)
		if err != nil {
			return 0, err
		}
		if first == senderID {
			senderBal, recipientBal = firstBal, secondBal
		} else {
			senderBal, recipientBal = secondBal, firstBal
		}
		if senderBal < amount {
			return 0, ErrInsufficientBalance
		}
		senderBal -= amount
		recipientBal += amount
		if err := setBalance(ctx, tx, senderID, senderBal); err != nil {
			return 0, err
		}
		if err := setBalance(ctx, tx, recipientID, recipientBal); err != nil {
			return 0, err
		}
	}

	if err := insertTransaction(ctx, tx, senderID, TxTransferOut, amount); err != nil {
		return 0, err
	}
	if err := insertTransaction(ctx, tx, recipientID, TxTransferIn, amount); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return senderBal, nil
}

// SettleStake credits the payout (zero on a loss) and appends the game
// session row in one database transaction, so a settled play is never
// visible without its record or vice versa.
func (s *Store) SettleStake(ctx context.Context, accountID string, payout int64, gameType, result string, details []byte) (*GameSession, int64, error) {
	if payout < 0 {
		return nil, 0, ErrInvalidAmount
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback(ctx)

	bal, err := lockBalance(ctx, tx, accountID)
	if err != nil {
		return nil, 0, err
	}
	newBal := bal + payout
	if payout > 0 {
		if err := setBalance(ctx, tx, accountID, newBal); err != nil {
			return nil, 0, err
		}
	}
	sess := GameSession{ID: NewID(), AccountID: accountID, GameType: gameType, Result: result, Details: details}
	err = tx.QueryRow(ctx,
		`INSERT INTO game_sessions (id, account_id, game_type, result, details) VALUES ($1,$2,$3,$4,$5) RETURNING created_at`,
		sess.ID, sess.AccountID, sess.GameType, sess.Result, sess.Details).Scan(&sess.CreatedAt)
	if err != nil {
		return nil, 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, 0, err
	}
	return &sess, newBal, nil
}

func (s *Store) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, account_id, kind, amount, created_at FROM transactions WHERE account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Kind, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListLedger is the admin view over the transaction log. An empty accountID
// returns rows for every account.
func (s *Store) ListLedger(ctx context.Context, accountID string, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, account_id, kind, amount, created_at FROM transactions WHERE ($1 = '' OR account_id = $1) ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Kind, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
