package main

import (
	"encoding/json"
	"net/http"

	"neon-casino/internal/ledger"
)

func walletBalanceHandler(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := requestAccount(r)
		balance, err := led.Balance(r.Context(), account.ID)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, map[string]any{"account_id": account.ID, "balance": balance})
	}
}

func walletDepositHandler(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Amount int64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		account := requestAccount(r)
		balance, err := led.Deposit(r.Context(), account.ID, body.Amount)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true, "balance": balance})
	}
}

func walletWithdrawHandler(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Amount int64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		account := requestAccount(r)
		balance, err := led.Withdraw(r.Context(), account.ID, body.Amount)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true, "balance": balance})
	}
}

func walletTransferHandler(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Recipient string `json:"recipient"`
			Amount    int64  `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.Recipient == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		account := requestAccount(r)
		res, err := led.Transfer(r.Context(), account.ID, body.Recipient, body.Amount)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, map[string]any{
			"ok":           true,
			"balance":      res.SenderBalance,
			"recipient_id": res.RecipientID,
		})
	}
}

func walletTransactionsHandler(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := requestAccount(r)
		limit, offset := parsePagination(r)
		items, err := led.Transactions(r.Context(), account.ID, limit, offset)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, map[string]any{
			"items":  items,
			"limit":  limit,
			"offset": offset,
		})
	}
}
