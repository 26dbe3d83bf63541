package main

import (
	"encoding/json"
	"net/http"

	"neon-casino/internal/config"
	"neon-casino/internal/store"

	"github.com/go-chi/chi/v5"
)

func registerAccountHandler(st *store.Store, cfg config.ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.Name == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		account, err := st.CreateAccount(r.Context(), body.Name, store.RoleUser, cfg.InitialBalance)
		if err != nil {
			writeHTTPError(w, http.StatusConflict, "name_taken")
			return
		}
		writeJSON(w, map[string]any{
			"account_id": account.ID,
			"name":       account.Name,
			"balance":    account.Balance,
			"created_at": account.CreatedAt,
		})
	}
}

func accountHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "account_id")
		if id == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		account, err := st.GetAccount(r.Context(), id)
		if err != nil {
			writeHTTPError(w, http.StatusNotFound, "account_not_found")
			return
		}
		writeJSON(w, map[string]any{
			"account_id": account.ID,
			"name":       account.Name,
			"balance":    account.Balance,
			"created_at": account.CreatedAt,
		})
	}
}
