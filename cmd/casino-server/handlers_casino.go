package main

import (
	"encoding/json"
	"expvar"
	"net/http"

	"neon-casino/internal/app/casino"
	"neon-casino/internal/game"
	"neon-casino/internal/ledger"
)

var (
	playTotal       = expvar.NewInt("play_total")
	playErrorsTotal = expvar.NewInt("play_errors_total")
)

type betRequest struct {
	Bet int64 `json:"bet"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "invalid_json")
		return false
	}
	return true
}

func respondPlay(w http.ResponseWriter, resp any, err error) {
	playTotal.Add(1)
	if err != nil {
		playErrorsTotal.Add(1)
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, resp)
}

func casinoStartHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body betRequest
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.StartGame(r.Context(), requestAccount(r).ID, body.Bet)
		respondPlay(w, resp, err)
	}
}

func casinoSlotMachineHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body betRequest
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.PlaySlotMachine(r.Context(), requestAccount(r).ID, body.Bet)
		respondPlay(w, resp, err)
	}
}

func casinoBlackjackHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body betRequest
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.PlayBlackjack(r.Context(), requestAccount(r).ID, body.Bet)
		respondPlay(w, resp, err)
	}
}

func casinoRouletteHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Bet          int64 `json:"bet"`
			ChosenNumber int   `json:"chosen_number"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.PlayRoulette(r.Context(), requestAccount(r).ID, body.Bet, body.ChosenNumber)
		respondPlay(w, resp, err)
	}
}

func casinoDiceHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Bet       int64 `json:"bet"`
			ChosenSum int   `json:"chosen_sum"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.PlayDice(r.Context(), requestAccount(r).ID, body.Bet, body.ChosenSum)
		respondPlay(w, resp, err)
	}
}

func casinoBaccaratHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Bet   int64  `json:"bet"`
			BetOn string `json:"bet_on"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.PlayBaccarat(r.Context(), requestAccount(r).ID, body.Bet, game.Side(body.BetOn))
		respondPlay(w, resp, err)
	}
}

func casinoScratchCardHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body betRequest
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.PlayScratchCard(r.Context(), requestAccount(r).ID, body.Bet)
		respondPlay(w, resp, err)
	}
}

func casinoAdvancedBlackjackHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Bet    int64  `json:"bet"`
			Action string `json:"action"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		resp, err := svc.PlayAdvancedBlackjack(r.Context(), requestAccount(r).ID, body.Bet, game.Action(body.Action))
		respondPlay(w, resp, err)
	}
}

func casinoSessionsHandler(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := requestAccount(r)
		limit, offset := parsePagination(r)
		items, err := led.Sessions(r.Context(), account.ID, limit, offset)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		out := make([]map[string]any, 0, len(items))
		for _, it := range items {
			var details any
			if len(it.Details) > 0 {
				_ = json.Unmarshal(it.Details, &details)
			}
			out = append(out, map[string]any{
				"session_id": it.ID,
				"game_type":  it.GameType,
				"result":     it.Result,
				"details":    details,
				"created_at": it.CreatedAt,
			})
		}
		writeJSON(w, map[string]any{
			"items":  out,
			"limit":  limit,
			"offset": offset,
		})
	}
}
