package game

import "neon-casino/internal/rng"

var slotSymbols = [...]string{"🍒", "🍋", "🍊", "🍉", "⭐", "7"}

// slotWild pays double the regular triple.
const slotWild = "7"

func PlaySlotMachine(rnd rng.Provider, bet int64) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	var reels [3]string
	for i := range reels {
		reels[i] = slotSymbols[rnd.UniformInt(0, len(slotSymbols)-1)]
	}
	outcome := OutcomeLose
	var payout int64
	if reels[0] == reels[1] && reels[1] == reels[2] {
		outcome = OutcomeWin
		if reels[0] == slotWild {
			payout = bet * 10
		} else {
			payout = bet * 5
		}
	}
	return Result{
		Type:    TypeSlotMachine,
		Outcome: outcome,
		Payout:  payout,
		Details: SlotMachineDetails{Reels: reels, Bet: bet, Payout: payout},
	}, nil
}

var scratchSymbols = [...]string{"⭐", "💎", "🍀", "7"}

func PlayScratchCard(rnd rng.Provider, bet int64) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	var cards [3]string
	for i := range cards {
		cards[i] = scratchSymbols[rnd.UniformInt(0, len(scratchSymbols)-1)]
	}
	outcome := OutcomeLose
	var payout int64
	switch {
	case cards[0] == cards[1] && cards[1] == cards[2]:
		outcome = OutcomeWin
		payout = bet * 10
	case cards[0] == cards[1] || cards[1] == cards[2] || cards[0] == cards[2]:
		outcome = OutcomeWin
		payout = bet * 3
	}
	return Result{
		Type:    TypeScratchCard,
		Outcome: outcome,
		Payout:  payout,
		Details: ScratchCardDetails{Cards: cards, Bet: bet, Payout: payout},
	}, nil
}
