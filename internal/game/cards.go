package game

import "neon-casino/internal/rng"

// Action is the player's move in advanced blackjack.
type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

// drawCard returns a value in [1, 11]. Cards are drawn independently with
// replacement; there is no finite deck, so repeated values beyond a physical
// deck's multiplicity can occur.
func drawCard(rnd rng.Provider) int {
	return rnd.UniformInt(1, 11)
}

func handTotal(cards []int) int {
	total := 0
	for _, c := range cards {
		total += c
	}
	return total
}

func PlayBlackjack(rnd rng.Provider, bet int64) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	player := []int{drawCard(rnd), drawCard(rnd)}
	dealer := []int{drawCard(rnd), drawCard(rnd)}
	playerTotal := handTotal(player)
	dealerTotal := handTotal(dealer)

	var outcome Outcome
	var payout int64
	switch {
	case playerTotal > 21:
		outcome = OutcomeLose
	case dealerTotal > 21 || playerTotal > dealerTotal:
		outcome = OutcomeWin
		payout = bet * 2
	case playerTotal == dealerTotal:
		outcome = OutcomeDraw
		payout = bet
	default:
		outcome = OutcomeLose
	}
	return Result{
		Type:    TypeBlackjack,
		Outcome: outcome,
		Payout:  payout,
		Details: BlackjackDetails{
			PlayerCards: player,
			DealerCards: dealer,
			PlayerTotal: playerTotal,
			DealerTotal: dealerTotal,
			Bet:         bet,
			Payout:      payout,
		},
	}, nil
}

// PlayAdvancedBlackjack resolves a single action. On "stand" the dealer hand
// is dealt and totals compared. On "hit" the player takes a third card and
// only a bust ends the round: the dealer never plays and anything short of a
// bust settles as "incomplete" with no payout.
func PlayAdvancedBlackjack(rnd rng.Provider, bet int64, action Action) (Result, error) {
	if err := validateBet(bet); err != nil {
		return Result{}, err
	}
	if action != ActionHit && action != ActionStand {
		return Result{}, ErrInvalidParams
	}
	player := []int{drawCard(rnd), drawCard(rnd)}
	dealer := []int{}
	outcome := OutcomeIncomplete

	switch action {
	case ActionStand:
		dealer = []int{drawCard(rnd), drawCard(rnd)}
		playerTotal := handTotal(player)
		dealerTotal := handTotal(dealer)
		switch {
		case playerTotal > dealerTotal:
			outcome = OutcomeWin
		case playerTotal == dealerTotal:
			outcome = OutcomeDraw
		default:
			outcome = OutcomeLose
		}
	case ActionHit:
		player = append(player, drawCard(rnd))
		if handTotal(player) > 21 {
			outcome = OutcomeLose
		}
	}

	var payout int64
	switch outcome {
	case OutcomeWin:
		payout = bet * 2
	case OutcomeDraw:
		payout = bet
	}
	return Result{
		Type:    TypeAdvancedBlackjack,
		Outcome: outcome,
		Payout:  payout,
		Details: AdvancedBlackjackDetails{
			PlayerCards: player,
			DealerCards: dealer,
			Action:      action,
			Bet:         bet,
			Payout:      payout,
		},
	}, nil
}
