package ledger_test

import (
	"context"
	"errors"
	"testing"

	"neon-casino/internal/game"
	"neon-casino/internal/ledger"
	"neon-casino/internal/store"
	"neon-casino/internal/testutil"
)

func TestLedgerAgainstPostgres(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	ctx := context.Background()
	l := ledger.New(st)

	acct, err := st.CreateAccount(ctx, "alice", store.RoleUser, 0)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	bal, err := l.Deposit(ctx, acct.ID, 100)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if bal != 100 {
		t.Fatalf("balance = %d, want 100", bal)
	}

	receipt, err := l.PlaceBet(ctx, acct.ID, 50)
	if err != nil {
		t.Fatalf("place bet: %v", err)
	}
	res := game.Result{
		Type:    game.TypeDice,
		Outcome: game.OutcomeWin,
		Payout:  250,
		Details: game.DiceDetails{Dice: [2]int{3, 4}, Sum: 7, ChosenSum: 7, Bet: 50, Payout: 250},
	}
	sess, err := l.Settle(ctx, receipt, res)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}

	bal, err = l.Balance(ctx, acct.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal != 300 {
		t.Fatalf("balance = %d, want 300", bal)
	}

	if _, err := l.Settle(ctx, receipt, res); !errors.Is(err, ledger.ErrReceiptConsumed) {
		t.Fatalf("replayed settle: err = %v, want ErrReceiptConsumed", err)
	}
	bal, _ = l.Balance(ctx, acct.ID)
	if bal != 300 {
		t.Fatalf("balance after replay = %d, want 300", bal)
	}

	sessions, err := l.Sessions(ctx, acct.ID, 10, 0)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != sess.ID {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}

	if _, err := l.Withdraw(ctx, acct.ID, 301); !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("overdraw: err = %v, want ErrInsufficientFunds", err)
	}
	bal, _ = l.Balance(ctx, acct.ID)
	if bal != 300 {
		t.Fatalf("balance after failed withdraw = %d, want 300", bal)
	}

	txs, err := l.Transactions(ctx, acct.ID, 10, 0)
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	// Only the deposit: stake movements live in game_sessions.
	if len(txs) != 1 || txs[0].Kind != store.TxDeposit {
		t.Fatalf("unexpected transactions: %+v", txs)
	}
}

func TestLedgerTransferAgainstPostgres(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	ctx := context.Background()
	l := ledger.New(st)

	alice, err := st.CreateAccount(ctx, "alice", store.RoleUser, 100)
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := st.CreateAccount(ctx, "bob", store.RoleUser, 0)
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	res, err := l.Transfer(ctx, alice.ID, "bob", 60)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if res.SenderBalance != 40 || res.RecipientID != bob.ID {
		t.Fatalf("unexpected result: %+v", res)
	}
	bobBal, _ := l.Balance(ctx, bob.ID)
	if bobBal != 60 {
		t.Fatalf("recipient balance = %d, want 60", bobBal)
	}
}
