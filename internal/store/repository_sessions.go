package store

import "context"

func (s *Store) GetGameSession(ctx context.Context, id string) (*GameSession, error) {
	var g GameSession
	err := s.Pool.QueryRow(ctx,
		`SELECT id, account_id, game_type, result, details, created_at FROM game_sessions WHERE id = $1`, id).
		Scan(&g.ID, &g.AccountID, &g.GameType, &g.Result, &g.Details, &g.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &g, nil
}

func (s *Store) ListGameSessions(ctx context.Context, accountID string, limit, offset int) ([]GameSession, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, account_id, game_type, result, details, created_at FROM game_sessions WHERE account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []GameSession{}
	for rows.Next() {
		var g GameSession
		if err := rows.Scan(&g.ID, &g.AccountID, &g.GameType, &g.Result, &g.Details, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
