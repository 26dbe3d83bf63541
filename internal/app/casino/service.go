package casino

import (
	"context"

	"neon-casino/internal/game"
	"neon-casino/internal/ledger"
	"neon-casino/internal/rng"

	"github.com/rs/zerolog/log"
)

// Service runs one play end to end: stake debit, outcome computation,
// settlement. Randomness is injected so tests can script draws.
type Service struct {
	ledger *ledger.Ledger
	rnd    rng.Provider
}

func NewService(l *ledger.Ledger, rnd rng.Provider) *Service {
	return &Service{ledger: l, rnd: rnd}
}

// play wraps the debit-compute-settle span. A failed computation refunds the
// stake through the receipt so the caller's balance ends where it started.
func (s *Service) play(ctx context.Context, accountID string, bet int64, run func() (game.Result, error)) (game.Result, string, error) {
	receipt, err := s.ledger.PlaceBet(ctx, accountID, bet)
	if err != nil {
		return game.Result{}, "", err
	}
	res, err := run()
	if err != nil {
		if rerr := s.ledger.Refund(ctx, receipt); rerr != nil {
			log.Error().Err(rerr).Str("account_id", accountID).Msg("refund after failed play")
		}
		return game.Result{}, "", err
	}
	sess, err := s.ledger.Settle(ctx, receipt, res)
	if err != nil {
		return game.Result{}, "", err
	}
	return res, sess.ID, nil
}

func (s *Service) StartGame(ctx context.Context, accountID string, bet int64) (*BasicResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlayBasic(s.rnd, bet)
	})
	if err != nil {
		return nil, err
	}
	return &BasicResponse{Result: string(res.Outcome), Bet: bet, SessionID: sessID}, nil
}

func (s *Service) PlaySlotMachine(ctx context.Context, accountID string, bet int64) (*SlotMachineResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlaySlotMachine(s.rnd, bet)
	})
	if err != nil {
		return nil, err
	}
	d := res.Details.(game.SlotMachineDetails)
	return &SlotMachineResponse{
		Outcome:   string(res.Outcome),
		Reels:     d.Reels[:],
		Payout:    res.Payout,
		SessionID: sessID,
	}, nil
}

func (s *Service) PlayBlackjack(ctx context.Context, accountID string, bet int64) (*BlackjackResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlayBlackjack(s.rnd, bet)
	})
	if err != nil {
		return nil, err
	}
	d := res.Details.(game.BlackjackDetails)
	return &BlackjackResponse{
		Outcome:     string(res.Outcome),
		PlayerCards: d.PlayerCards,
		DealerCards: d.DealerCards,
		Payout:      res.Payout,
		SessionID:   sessID,
	}, nil
}

func (s *Service) PlayRoulette(ctx context.Context, accountID string, bet int64, chosenNumber int) (*RouletteResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlayRoulette(s.rnd, bet, chosenNumber)
	})
	if err != nil {
		return nil, err
	}
	d := res.Details.(game.RouletteDetails)
	return &RouletteResponse{
		Outcome:       string(res.Outcome),
		WinningNumber: d.WinningNumber,
		Payout:        res.Payout,
		SessionID:     sessID,
	}, nil
}

func (s *Service) PlayDice(ctx context.Context, accountID string, bet int64, chosenSum int) (*DiceResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlayDice(s.rnd, bet, chosenSum)
	})
	if err != nil {
		return nil, err
	}
	d := res.Details.(game.DiceDetails)
	return &DiceResponse{
		Outcome:   string(res.Outcome),
		Dice:      d.Dice[:],
		Sum:       d.Sum,
		Payout:    res.Payout,
		SessionID: sessID,
	}, nil
}

func (s *Service) PlayBaccarat(ctx context.Context, accountID string, bet int64, betOn game.Side) (*BaccaratResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlayBaccarat(s.rnd, bet, betOn)
	})
	if err != nil {
		return nil, err
	}
	d := res.Details.(game.BaccaratDetails)
	return &BaccaratResponse{
		Outcome:   string(res.Outcome),
		Winner:    string(d.Winner),
		Payout:    res.Payout,
		SessionID: sessID,
	}, nil
}

func (s *Service) PlayScratchCard(ctx context.Context, accountID string, bet int64) (*ScratchCardResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlayScratchCard(s.rnd, bet)
	})
	if err != nil {
		return nil, err
	}
	d := res.Details.(game.ScratchCardDetails)
	return &ScratchCardResponse{
		Outcome:   string(res.Outcome),
		Cards:     d.Cards[:],
		Payout:    res.Payout,
		SessionID: sessID,
	}, nil
}

func (s *Service) PlayAdvancedBlackjack(ctx context.Context, accountID string, bet int64, action game.Action) (*AdvancedBlackjackResponse, error) {
	res, sessID, err := s.play(ctx, accountID, bet, func() (game.Result, error) {
		return game.PlayAdvancedBlackjack(s.rnd, bet, action)
	})
	if err != nil {
		return nil, err
	}
	d := res.Details.(game.AdvancedBlackjackDetails)
	return &AdvancedBlackjackResponse{
		Result:      string(res.Outcome),
		PlayerCards: d.PlayerCards,
		DealerCards: d.DealerCards,
		Payout:      res.Payout,
		SessionID:   sessID,
	}, nil
}
