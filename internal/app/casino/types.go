package casino

type BasicResponse struct {
	Result    string `json:"result"`
	Bet       int64  `json:"bet"`
	SessionID string `json:"session_id"`
}

type SlotMachineResponse struct {
	Outcome   string   `json:"outcome"`
	Reels     []string `json:"reels"`
	Payout    int64    `json:"payout"`
	SessionID string   `json:"session_id"`
}

type BlackjackResponse struct {
	Outcome     string `json:"outcome"`
	PlayerCards []int  `json:"player_cards"`
	DealerCards []int  `json:"dealer_cards"`
	Payout      int64  `json:"payout"`
	SessionID   string `json:"session_id"`
}

type RouletteResponse struct {
	Outcome       string `json:"outcome"`
	WinningNumber int    `json:"winning_number"`
	Payout        int64  `json:"payout"`
	SessionID     string `json:"session_id"`
}

type DiceResponse struct {
	Outcome   string `json:"outcome"`
	Dice      []int  `json:"dice"`
	Sum       int    `json:"sum"`
	Payout    int64  `json:"payout"`
	SessionID string `json:"session_id"`
}

type BaccaratResponse struct {
	Outcome   string `json:"outcome"`
	Winner    string `json:"winner"`
	Payout    int64  `json:"payout"`
	SessionID string `json:"session_id"`
}

type ScratchCardResponse struct {
	Outcome   string   `json:"outcome"`
	Cards     []string `json:"cards"`
	Payout    int64    `json:"payout"`
	SessionID string   `json:"session_id"`
}

type AdvancedBlackjackResponse struct {
	Result      string `json:"result"`
	PlayerCards []int  `json:"player_cards"`
	DealerCards []int  `json:"dealer_cards"`
	Payout      int64  `json:"payout"`
	SessionID   string `json:"session_id"`
}
