package store

import "time"

// All monetary amounts are integer minor units (cents).

type Account struct {
	ID        string
	Name      string
	Role      string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Transaction kinds. Transfer legs are always written as a matched
// transfer-out/transfer-in pair in the same database transaction.
const (
	TxDeposit     = "deposit"
	TxWithdrawal  = "withdrawal"
	TxTransferOut = "transfer-out"
	TxTransferIn  = "transfer-in"
)

// Transaction is one append-only wallet ledger row. Amount is unsigned; the
// kind implies the sign.
type Transaction struct {
	ID        string
	AccountID string
	Kind      string
	Amount    int64
	CreatedAt time.Time
}

// GameSession is one append-only record of a settled play. Details is the
// JSON-encoded game-specific payload.
type GameSession struct {
	ID        string
	AccountID string
	GameType  string
	Result    string
	Details   []byte
	CreatedAt time.Time
}
