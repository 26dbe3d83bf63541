package game

import (
	"errors"

	"neon-casino/internal/rng"
)

// Type identifies a game variant. The string form is persisted on game
// session rows and must stay stable.
type Type string

const (
	TypeBasic             Type = "basic"
	TypeSlotMachine       Type = "slot-machine"
	TypeBlackjack         Type = "blackjack"
	TypeRoulette          Type = "roulette"
	TypeDice              Type = "dice"
	TypeBaccarat          Type = "baccarat"
	TypeScratchCard       Type = "scratch-card"
	TypeAdvancedBlackjack Type = "advanced-blackjack"
)

type Outcome string

const (
	OutcomeWin        Outcome = "win"
	OutcomeLose       Outcome = "lose"
	OutcomeDraw       Outcome = "draw"
	OutcomeIncomplete Outcome = "incomplete"
)

var (
	ErrInvalidBet    = errors.New("invalid_bet")
	ErrInvalidParams = errors.New("invalid_params")
)

// Result is the settled outcome of one play. Payout is the total amount
// credited back, always a multiple of the original bet and never negative.
type Result struct {
	Type    Type
	Outcome Outcome
	Payout  int64
	Details Details
}

// Each play is a pure function of the bet, the chosen parameters and the
// draws taken from the injected provider. No draw happens before the bet is
// validated.
func validateBet(bet int64) error {
	if bet <= 0 {
		return ErrInvalidBet
	}
	return nil
}

// PlayBasic is a bare win/lose coin flip. The stake is consumed whatever the
// result: there is no payout on a win.
func PlayBasic(rnd rng.Provider, bet int64) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	outcome := OutcomeLose
	if rnd.UniformUnit() > 0.5 {
		outcome = OutcomeWin
	}
	return Result{
		Type:    TypeBasic,
		Outcome: outcome,
		Details: BasicDetails{Bet: bet},
	}, nil
}
