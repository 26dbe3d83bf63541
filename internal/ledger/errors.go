package ledger

import "errors"

var (
	ErrAccountNotFound   = errors.New("account_not_found")
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrRecipientNotFound = errors.New("recipient_not_found")
	ErrReceiptConsumed   = errors.New("receipt_consumed")
)
