package game

import "neon-casino/internal/rng"

// Side is the baccarat bet side.
type Side string

const (
	SidePlayer Side = "player"
	SideBanker Side = "banker"
)

func PlayRoulette(rnd rng.Provider, bet int64, chosenNumber int) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	if chosenNumber < 0 || chosenNumber > 36 {
		return Result{}, ErrInvalidParams
	}
	winningNumber := rnd.UniformInt(0, 36)
	outcome := OutcomeLose
	var payout int64
	if winningNumber == chosenNumber {
		outcome = OutcomeWin
		payout = bet * 35
	}
	return Result{
		Type:    TypeRoulette,
		Outcome: outcome,
		Payout:  payout,
		Details: RouletteDetails{
			ChosenNumber:  chosenNumber,
			WinningNumber: winningNumber,
			Bet:           bet,
			Payout:        payout,
		},
	}, nil
}

func PlayDice(rnd rng.Provider, bet int64, chosenSum int) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	if chosenSum < 2 || chosenSum > 12 {
		return Result{}, ErrInvalidParams
	}
	dice := [2]int{rnd.UniformInt(1, 6), rnd.UniformInt(1, 6)}
	sum := dice[0] + dice[1]
	outcome := OutcomeLose
	var payout int64
	if sum == chosenSum {
		outcome = OutcomeWin
		payout = bet * 5
	}
	return Result{
		Type:    TypeDice,
		Outcome: outcome,
		Payout:  payout,
		Details: DiceDetails{
			Dice:      dice,
			Sum:       sum,
			ChosenSum: chosenSum,
			Bet:       bet,
			Payout:    payout,
		},
	}, nil
}

func PlayBaccarat(rnd rng.Provider, bet int64, betOn Side) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	if betOn != SidePlayer && betOn != SideBanker {
		return Result{}, ErrInvalidParams
	}
	winner := SideBanker
	if rnd.UniformUnit() > 0.5 {
		winner = SidePlayer
	}
	outcome := OutcomeLose
	var payout int64
	if winner == betOn {
		outcome = OutcomeWin
		payout = bet * 2
	}
	return Result{
		Type:    TypeBaccarat,
		Outcome: outcome,
		Payout:  payout,
		Details: BaccaratDetails{BetOn: betOn, Winner: winner, Bet: bet, Payout: payout},
	}, nil
}
