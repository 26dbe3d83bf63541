package main

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"neon-casino/internal/app/casino"
	"neon-casino/internal/config"
	"neon-casino/internal/ledger"
	"neon-casino/internal/logging"
	"neon-casino/internal/rng"
	"neon-casino/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	st, err := store.New(cfg.Server.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	led := ledger.New(st)
	svc := casino.NewService(led, rng.Crypto{})

	r := newRouter(st, led, svc, cfg.Server)
	logRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

func newRouter(st *store.Store, led *ledger.Ledger, svc *casino.Service, cfg config.ServerConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Use(bodyCaptureMiddleware())

		r.Post("/accounts", registerAccountHandler(st, cfg))
		r.Get("/accounts/{account_id}", accountHandler(st))

		r.Group(func(r chi.Router) {
			r.Use(accountAuthMiddleware(st))

			r.Get("/wallet/balance", walletBalanceHandler(led))
			r.Post("/wallet/deposit", walletDepositHandler(led))
			r.Post("/wallet/withdraw", walletWithdrawHandler(led))
			r.Post("/wallet/transfer", walletTransferHandler(led))
			r.Get("/wallet/transactions", walletTransactionsHandler(led))

			r.Post("/casino/start", casinoStartHandler(svc))
			r.Post("/casino/slot-machine", casinoSlotMachineHandler(svc))
			r.Post("/casino/blackjack", casinoBlackjackHandler(svc))
			r.Post("/casino/roulette", casinoRouletteHandler(svc))
			r.Post("/casino/dice", casinoDiceHandler(svc))
			r.Post("/casino/baccarat", casinoBaccaratHandler(svc))
			r.Post("/casino/scratch-card", casinoScratchCardHandler(svc))
			r.Post("/casino/advanced-blackjack", casinoAdvancedBlackjackHandler(svc))
			r.Get("/casino/sessions", casinoSessionsHandler(led))
		})

		r.Group(func(r chi.Router) {
			r.Use(adminAuthMiddleware(cfg.AdminAPIKey))
			r.Get("/admin/accounts", adminAccountsHandler(st))
			r.Get("/admin/transactions", adminLedgerHandler(st))
			r.Post("/admin/topup", adminTopupHandler(st))
			r.Delete("/admin/accounts/{account_id}", adminPurgeAccountHandler(st))
			r.Get("/admin/debug/vars", expvar.Handler().ServeHTTP)
		})
	})

	return r
}

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func logRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
