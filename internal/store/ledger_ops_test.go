package store

import (
	"errors"
	"sync"
	"testing"
)

func TestCreditAndDebit(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	a := mustCreateAccount(t, st, ctx, "alice", 100)

	bal, err := st.Credit(ctx, a.ID, 50, TxDeposit)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if bal != 150 {
		t.Fatalf("balance = %d, want 150", bal)
	}

	bal, err = st.Debit(ctx, a.ID, 30, TxWithdrawal)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if bal != 120 {
		t.Fatalf("balance = %d, want 120", bal)
	}

	txs, err := st.ListTransactions(ctx, a.ID, 10, 0)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("transaction count = %d, want 2", len(txs))
	}
	// Newest first.
	if txs[0].Kind != TxWithdrawal || txs[0].Amount != 30 {
		t.Fatalf("unexpected first row: %+v", txs[0])
	}
	if txs[1].Kind != TxDeposit || txs[1].Amount != 50 {
		t.Fatalf("unexpected second row: %+v", txs[1])
	}
}

func TestDebitInsufficientLeavesStateUntouched(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	a := mustCreateAccount(t, st, ctx, "alice", 100)
	if _, err := st.Debit(ctx, a.ID, 101, TxWithdrawal); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}

	got, err := st.GetAccount(ctx, a.ID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if got.Balance != 100 {
		t.Fatalf("balance = %d, want 100", got.Balance)
	}
	txs, err := st.ListTransactions(ctx, a.ID, 10, 0)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("failed debit left rows: %+v", txs)
	}
}

func TestDebitUnknownAccount(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	if _, err := st.Debit(ctx, "missing", 10, TxWithdrawal); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := st.Credit(ctx, "missing", 10, TxDeposit); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTransferMovesBothLegs(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	alice := mustCreateAccount(t, st, ctx, "alice", 100)
	bob := mustCreateAccount(t, st, ctx, "bob", 10)

	senderBal, err := st.Transfer(ctx, alice.ID, bob.ID, 40)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if senderBal != 60 {
		t.Fatalf("sender balance = %d, want 60", senderBal)
	}
	gotBob, err := st.GetAccount(ctx, bob.ID)
	if err != nil {
		t.Fatalf("get recipient: %v", err)
	}
	if gotBob.Balance != 50 {
		t.Fatalf("recipient balance = %d, want 50", gotBob.Balance)
	}

	outRows, err := st.ListTransactions(ctx, alice.ID, 10, 0)
	if err != nil {
		t.Fatalf("list sender rows: %v", err)
	}
	inRows, err := st.ListTransactions(ctx, bob.ID, 10, 0)
	if err != nil {
		t.Fatalf("list recipient rows: %v", err)
	}
	if len(outRows) != 1 || outRows[0].Kind != TxTransferOut || outRows[0].Amount != 40 {
		t.Fatalf("unexpected sender rows: %+v", outRows)
	}
	if len(inRows) != 1 || inRows[0].Kind != TxTransferIn || inRows[0].Amount != 40 {
		t.Fatalf("unexpected recipient rows: %+v", inRows)
	}
}

func TestTransferInsufficientRollsBackBothLegs(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	alice := mustCreateAccount(t, st, ctx, "alice", 30)
	bob := mustCreateAccount(t, st, ctx, "bob", 0)

	if _, err := st.Transfer(ctx, alice.ID, bob.ID, 40); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	gotAlice, _ := st.GetAccount(ctx, alice.ID)
	gotBob, _ := st.GetAccount(ctx, bob.ID)
	if gotAlice.Balance != 30 || gotBob.Balance != 0 {
		t.Fatalf("balances = %d/%d, want 30/0", gotAlice.Balance, gotBob.Balance)
	}
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	a := mustCreateAccount(t, st, ctx, "alice", 100)

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = st.Debit(ctx, a.ID, 10, TxWithdrawal)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInsufficientBalance):
		default:
			t.Fatalf("unexpected debit error: %v", err)
		}
	}
	if succeeded != 10 {
		t.Fatalf("succeeded = %d, want exactly 10", succeeded)
	}
	got, err := st.GetAccount(ctx, a.ID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if got.Balance != 0 {
		t.Fatalf("balance = %d, want 0", got.Balance)
	}
}

func TestConcurrentOppositeTransfersComplete(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	alice := mustCreateAccount(t, st, ctx, "alice", 1000)
	bob := mustCreateAccount(t, st, ctx, "bob", 1000)

	const rounds = 25
	var wg sync.WaitGroup
	wg.Add(2)
	var errA, errB error
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if _, err := st.Transfer(ctx, alice.ID, bob.ID, 1); err != nil {
				errA = err
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if _, err := st.Transfer(ctx, bob.ID, alice.ID, 1); err != nil {
				errB = err
				return
			}
		}
	}()
	wg.Wait()
	if errA != nil || errB != nil {
		t.Fatalf("transfer errors: %v / %v", errA, errB)
	}

	gotAlice, _ := st.GetAccount(ctx, alice.ID)
	gotBob, _ := st.GetAccount(ctx, bob.ID)
	if gotAlice.Balance+gotBob.Balance != 2000 {
		t.Fatalf("total balance = %d, want 2000", gotAlice.Balance+gotBob.Balance)
	}
	if gotAlice.Balance != 1000 || gotBob.Balance != 1000 {
		t.Fatalf("balances = %d/%d, want 1000/1000", gotAlice.Balance, gotBob.Balance)
	}
}

func TestSettleStakeRecordsSessionAndPayout(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	a := mustCreateAccount(t, st, ctx, "alice", 50)
	sess, bal, err := st.SettleStake(ctx, a.ID, 250, "dice", "win", []byte(`{"bet":50,"payout":250}`))
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if bal != 300 {
		t.Fatalf("balance = %d, want 300", bal)
	}
	if sess.GameType != "dice" || sess.Result != "win" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	got, err := st.GetGameSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.AccountID != a.ID {
		t.Fatalf("account id = %s, want %s", got.AccountID, a.ID)
	}
}
