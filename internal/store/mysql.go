package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/joypop/joypop-api/internal/model"
)

// MySQL implements Store on top of database/sql. Ids are uuids assigned
// here, timestamps are UTC at insert time.
type MySQL struct {
	db     *sql.DB
	cipher *contentCipher
}

// NewMySQL wraps an open connection pool. keyHex is the 32-byte star
// content encryption key, hex encoded.
func NewMySQL(db *sql.DB, keyHex string) (*MySQL, error) {
	c, err := newContentCipher(keyHex)
	if err != nil {
		return nil, err
	}
	return &MySQL{db: db, cipher: c}, nil
}

const starColumns = "id, user_id, type, content_enc, content_nonce, jar_id, created_at"

func (s *MySQL) scanStar(row interface{ Scan(...any) error }) (model.StarEntry, error) {
	var (
		e       model.StarEntry
		enc     []byte
		nonce   []byte
		jarID   sql.NullString
		created time.Time
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.Type, &enc, &nonce, &jarID, &created); err != nil {
		return model.StarEntry{}, err
	}
	content, err := s.cipher.decrypt(enc, nonce)
	if err != nil {
		return model.StarEntry{}, err
	}
	e.Content = content
	e.CreatedAt = created
	if jarID.Valid {
		e.JarID = &jarID.String
	}
	return e, nil
}

func (s *MySQL) queryStars(ctx context.Context, query string, args ...any) ([]model.StarEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stars := []model.StarEntry{}
	for rows.Next() {
		e, err := s.scanStar(rows)
		if err != nil {
			return nil, err
		}
		stars = append(stars, e)
	}
	return stars, rows.Err()
}

// StarsByUser returns all of a user's stars, newest first.
func (s *MySQL) StarsByUser(ctx context.Context, userID string) ([]model.StarEntry, error) {
	return s.queryStars(ctx,
		"SELECT "+starColumns+" FROM stars WHERE user_id=? ORDER BY created_at DESC",
		userID)
}

// StarsByType returns a user's stars of one type, newest first.
func (s *MySQL) StarsByType(ctx context.Context, userID string, t model.StarType) ([]model.StarEntry, error) {
	return s.queryStars(ctx,
		"SELECT "+starColumns+" FROM stars WHERE user_id=? AND type=? ORDER BY created_at DESC",
		userID, t)
}

func (s *MySQL) CountStars(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM stars WHERE user_id=?", userID).Scan(&n)
	return n, err
}

func (s *MySQL) CountStarsByType(ctx context.Context, userID string, t model.StarType) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM stars WHERE user_id=? AND type=?", userID, t).Scan(&n)
	return n, err
}

// InsertStar stores one encrypted entry and returns its decrypted view.
func (s *MySQL) InsertStar(ctx context.Context, userID string, t model.StarType, content string) (model.StarEntry, error) {
	enc, nonce, err := s.cipher.encrypt(content)
	if err != nil {
		return model.StarEntry{}, err
	}
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO stars (id, user_id, type, content_enc, content_nonce, created_at) VALUES (?,?,?,?,?,?)",
		id, userID, t, enc, nonce, now)
	if err != nil {
		return model.StarEntry{}, err
	}
	return model.StarEntry{
		ID:        id,
		UserID:    userID,
		Type:      t,
		Content:   content,
		CreatedAt: now,
	}, nil
}

// DeleteStar removes one entry scoped to its owner; deleting someone
// else's star is a silent no-op, same as a row-level-security filter.
func (s *MySQL) DeleteStar(ctx context.Context, userID, starID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM stars WHERE id=? AND user_id=?", starID, userID)
	return err
}

func (s *MySQL) DeleteAllStars(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM stars WHERE user_id=?", userID)
	return err
}

func (s *MySQL) InsertJar(ctx context.Context, userID, name string) (model.Jar, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO jars (id, user_id, name, created_at) VALUES (?,?,?,?)",
		id, userID, name, now)
	if err != nil {
		return model.Jar{}, err
	}
	return model.Jar{ID: id, UserID: userID, Name: name, CreatedAt: now}, nil
}

func (s *MySQL) JarsByUser(ctx context.Context, userID string) ([]model.Jar, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, name, created_at FROM jars WHERE user_id=? ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jars := []model.Jar{}
	for rows.Next() {
		var j model.Jar
		if err := rows.Scan(&j.ID, &j.UserID, &j.Name, &j.CreatedAt); err != nil {
			return nil, err
		}
		jars = append(jars, j)
	}
	return jars, rows.Err()
}

func (s *MySQL) ProfileByID(ctx context.Context, userID string) (model.Profile, error) {
	var p model.Profile
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, created_at FROM profiles WHERE id=? LIMIT 1", userID).
		Scan(&p.ID, &p.Email, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Profile{}, ErrNotFound
	}
	return p, err
}

func (s *MySQL) ProfileByEmail(ctx context.Context, email string) (model.Profile, error) {
	var p model.Profile
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, created_at FROM profiles WHERE email=? LIMIT 1", email).
		Scan(&p.ID, &p.Email, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Profile{}, ErrNotFound
	}
	return p, err
}

// EnsureProfile returns the profile for email, creating it on first login.
func (s *MySQL) EnsureProfile(ctx context.Context, email string) (model.Profile, error) {
	p, err := s.ProfileByEmail(ctx, email)
	if err == nil {
		return p, nil
	}
	if err != ErrNotFound {
		return model.Profile{}, err
	}
	id := uuid.NewString()
	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO profiles (id, email, created_at) VALUES (?,?,?)",
		id, email, now); err != nil {
		return model.Profile{}, err
	}
	return model.Profile{ID: id, Email: email, CreatedAt: now}, nil
}

// DeleteAccount removes all of a user's data in one transaction: stars,
// jars, rate-limit records, sessions and the profile row itself. Either
// everything goes or nothing does.
func (s *MySQL) DeleteAccount(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{
		"DELETE FROM stars WHERE user_id=?",
		"DELETE FROM jars WHERE user_id=?",
		"DELETE FROM star_rate_limits WHERE user_id=?",
		"DELETE FROM sessions WHERE user_id=?",
		"DELETE FROM profiles WHERE id=?",
	} {
		if _, err := tx.ExecContext(ctx, q, userID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *MySQL) InsertRateLimitRecord(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO star_rate_limits (user_id, created_at) VALUES (?,?)",
		userID, time.Now().UTC())
	return err
}

func (s *MySQL) CountRateLimitRecords(ctx context.Context, userID string, since time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM star_rate_limits WHERE user_id=? AND created_at >= ?",
		userID, since).Scan(&n)
	return n, err
}

// OldestRateLimitRecord returns the timestamp of the oldest record inside
// the window, or ErrNotFound when the window is empty.
func (s *MySQL) OldestRateLimitRecord(ctx context.Context, userID string, since time.Time) (time.Time, error) {
	var ts time.Time
	err := s.db.QueryRowContext(ctx,
		"SELECT created_at FROM star_rate_limits WHERE user_id=? AND created_at >= ? ORDER BY created_at ASC LIMIT 1",
		userID, since).Scan(&ts)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrNotFound
	}
	return ts, err
}
