package game

// Details carries the game-specific fields recorded on a session row. It is
// a closed union: one variant per game type, serialized to JSON as-is.
type Details interface {
	Game() Type
}

type BasicDetails struct {
	Bet int64 `json:"bet"`
}

func (BasicDetails) Game() Type { return TypeBasic }

type SlotMachineDetails struct {
	Reels  [3]string `json:"reels"`
	Bet    int64     `json:"bet"`
	Payout int64     `json:"payout"`
}

func (SlotMachineDetails) Game() Type { return TypeSlotMachine }

type BlackjackDetails struct {
	PlayerCards []int `json:"playerCards"`
	DealerCards []int `json:"dealerCards"`
	PlayerTotal int   `json:"playerTotal"`
	DealerTotal int   `json:"dealerTotal"`
	Bet         int64 `json:"bet"`
	Payout      int64 `json:"payout"`
}

func (BlackjackDetails) Game() Type { return TypeBlackjack }

type RouletteDetails struct {
	ChosenNumber  int   `json:"chosenNumber"`
	WinningNumber int   `json:"winningNumber"`
	Bet           int64 `json:"bet"`
	Payout        int64 `json:"payout"`
}

func (RouletteDetails) Game() Type { return TypeRoulette }

type DiceDetails struct {
	Dice      [2]int `json:"dice"`
	Sum       int    `json:"sum"`
	ChosenSum int    `json:"chosenSum"`
	Bet       int64  `json:"bet"`
	Payout    int64  `json:"payout"`
}

func (DiceDetails) Game() Type { return TypeDice }

type BaccaratDetails struct {
	BetOn  Side  `json:"betOn"`
	Winner Side  `json:"winner"`
	Bet    int64 `json:"bet"`
	Payout int64 `json:"payout"`
}

func (BaccaratDetails) Game() Type { return TypeBaccarat }

type ScratchCardDetails struct {
	Cards  [3]string `json:"cards"`
	Bet    int64     `json:"bet"`
	Payout int64     `json:"payout"`
}

func (ScratchCardDetails) Game() Type { return TypeScratchCard }

type AdvancedBlackjackDetails struct {
	PlayerCards []int  `json:"playerCards"`
	DealerCards []int  `json:"dealerCards"`
	Action      Action `json:"action"`
	Bet         int64  `json:"bet"`
	Payout      int64  `json:"payout"`
}

func (AdvancedBlackjackDetails) Game() Type { return TypeAdvancedBlackjack }
