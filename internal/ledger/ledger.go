package ledger

import (
	"context"
	"encoding/json"
	"errors"

	"neon-casino/internal/game"
	"neon-casino/internal/store"

	"github.com/rs/zerolog/log"
)

// Store is the persistence surface the ledger requires. *store.Store
// implements it; tests substitute an in-memory fake.
type Store interface {
	GetAccount(ctx context.Context, id string) (*store.Account, error)
	FindRecipient(ctx context.Context, ref string) (*store.Account, error)
	Credit(ctx context.Context, accountID string, amount int64, kind string) (int64, error)
	Debit(ctx context.Context, accountID string, amount int64, kind string) (int64, error)
	Transfer(ctx context.Context, senderID, recipientID string, amount int64) (int64, error)
	SettleStake(ctx context.Context, accountID string, payout int64, gameType, result string, details []byte) (*store.GameSession, int64, error)
	ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]store.Transaction, error)
	ListGameSessions(ctx context.Context, accountID string, limit, offset int) ([]store.GameSession, error)
}

// Ledger is the only component that mutates account balances or appends
// transaction and game session rows.
type Ledger struct {
	store Store
}

func New(s Store) *Ledger {
	return &Ledger{store: s}
}

// PlaceBet debits the stake and returns the receipt the settlement must
// consume. No transaction row is written: the play's record is the game
// session appended at settlement.
func (l *Ledger) PlaceBet(ctx context.Context, accountID string, bet int64) (*DebitReceipt, error) {
	if bet <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := l.store.Debit(ctx, accountID, bet, ""); err != nil {
		return nil, mapStoreErr(err)
	}
	return &DebitReceipt{ID: store.NewID(), AccountID: accountID, Bet: bet}, nil
}

// Settle credits the payout (zero on a loss) and appends the game session
// row that closes out the bet. If the settlement cannot be recorded the
// stake debit is compensated so the account is never charged without a
// recorded outcome.
func (l *Ledger) Settle(ctx context.Context, r *DebitReceipt, res game.Result) (*store.GameSession, error) {
	if r == nil || !r.consume() {
		return nil, ErrReceiptConsumed
	}
	if res.Payout < 0 {
		l.refundStake(ctx, r)
		return nil, ErrInvalidAmount
	}
	details, err := json.Marshal(res.Details)
	if err != nil {
		l.refundStake(ctx, r)
		return nil, err
	}
	sess, _, err := l.store.SettleStake(ctx, r.AccountID, res.Payout, string(res.Type), string(res.Outcome), details)
	if err != nil {
		l.refundStake(ctx, r)
		return nil, err
	}
	return sess, nil
}

// Refund returns the stake of an unsettled bet, consuming the receipt. Used
// when the game computation fails after the debit.
func (l *Ledger) Refund(ctx context.Context, r *DebitReceipt) error {
	if r == nil || !r.consume() {
		return ErrReceiptConsumed
	}
	_, err := l.store.Credit(ctx, r.AccountID, r.Bet, "")
	return err
}

func (l *Ledger) refundStake(ctx context.Context, r *DebitReceipt) {
	if _, err := l.store.Credit(ctx, r.AccountID, r.Bet, ""); err != nil {
		log.Error().Err(err).
			Str("account_id", r.AccountID).
			Int64("bet", r.Bet).
			Msg("stake refund failed")
	}
}

func (l *Ledger) Deposit(ctx context.Context, accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	newBal, err := l.store.Credit(ctx, accountID, amount, store.TxDeposit)
	if err != nil {
		return 0, mapStoreErr(err)
	}
	return newBal, nil
}

func (l *Ledger) Withdraw(ctx context.Context, accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	newBal, err := l.store.Debit(ctx, accountID, amount, store.TxWithdrawal)
	if err != nil {
		return 0, mapStoreErr(err)
	}
	return newBal, nil
}

type TransferResult struct {
	SenderBalance int64
	RecipientID   string
}

// Transfer moves amount from the sender to the recipient resolved from
// recipientRef (account id or name). Both legs commit together or not at
// all.
func (l *Ledger) Transfer(ctx context.Context, senderID, recipientRef string, amount int64) (*TransferResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	recipient, err := l.store.FindRecipient(ctx, recipientRef)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}
	senderBal, err := l.store.Transfer(ctx, senderID, recipient.ID, amount)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &TransferResult{SenderBalance: senderBal, RecipientID: recipient.ID}, nil
}

func (l *Ledger) Balance(ctx context.Context, accountID string) (int64, error) {
	a, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return 0, mapStoreErr(err)
	}
	return a.Balance, nil
}

func (l *Ledger) Transactions(ctx context.Context, accountID string, limit, offset int) ([]store.Transaction, error) {
	if _, err := l.store.GetAccount(ctx, accountID); err != nil {
		return nil, mapStoreErr(err)
	}
	return l.store.ListTransactions(ctx, accountID, limit, offset)
}

func (l *Ledger) Sessions(ctx context.Context, accountID string, limit, offset int) ([]store.GameSession, error) {
	if _, err := l.store.GetAccount(ctx, accountID); err != nil {
		return nil, mapStoreErr(err)
	}
	return l.store.ListGameSessions(ctx, accountID, limit, offset)
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrAccountNotFound
	case errors.Is(err, store.ErrInsufficientBalance):
		return ErrInsufficientFunds
	case errors.Is(err, store.ErrInvalidAmount):
		return ErrInvalidAmount
	default:
		return err
	}
}
