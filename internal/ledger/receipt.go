package ledger

import "sync/atomic"

// DebitReceipt represents a stake that has been debited but not yet settled.
// Exactly one Settle or Refund call may consume it; replays fail with
// ErrReceiptConsumed instead of double-crediting.
type DebitReceipt struct {
	ID        string
	AccountID string
	Bet       int64

	consumed atomic.Bool
}

func (r *DebitReceipt) consume() bool {
	return r.consumed.CompareAndSwap(false, true)
}

// Consumed reports whether the receipt has already been settled or refunded.
func (r *DebitReceipt) Consumed() bool {
	return r.consumed.Load()
}
