package auth

import (
	"context"
	"database/sql"
	"time"
)

// Sessions persists refresh-token hashes in the 'sessions' table.
type Sessions struct{ DB *sql.DB }

func NewSessions(db *sql.DB) *Sessions { return &Sessions{DB: db} }

// StoreRefresh inserts one session row.
func (s *Sessions) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO sessions (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

// ValidateRefresh returns the owning user id if a non-revoked, non-expired
// session exists for the hash.
func (s *Sessions) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	var (
		userID    string
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := s.DB.QueryRowContext(ctx,
		"SELECT user_id, expires_at, revoked_at FROM sessions WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&userID, &expiresAt, &revokedAt)
	if err != nil {
		return "", err
	}
	if revokedAt.Valid || time.Now().UTC().After(expiresAt) {
		return "", sql.ErrNoRows
	}
	return userID, nil
}

// RevokeByHash ends one session.
func (s *Sessions) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := s.DB.ExecContext(ctx,
		"UPDATE sessions SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAll ends every active session for a user. Called on account
// deletion.
func (s *Sessions) RevokeAll(ctx context.Context, userID string) error {
	_, err := s.DB.ExecContext(ctx,
		"UPDATE sessions SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID)
	return err
}
