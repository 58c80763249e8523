package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCode is returned when verification fails for any reason the
// client can act on: wrong code, expired code, or no pending code at all.
// The cases are deliberately indistinguishable.
var ErrInvalidCode = errors.New("invalid or expired code")

// CodeSender delivers a one-time code to an email address. Production
// wires a mail provider; LogSender covers development.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

// LogSender writes the code to the log instead of sending mail.
type LogSender struct{ Log zerolog.Logger }

func (s LogSender) SendCode(_ context.Context, email, code string) error {
	s.Log.Info().Str("email", email).Str("code", code).Msg("otp code issued")
	return nil
}

// OTP issues and verifies 6-digit email login codes. Codes are bcrypt
// hashed and kept in Redis under a TTL; a code is single-use and deleted
// on successful verification.
type OTP struct {
	rdb    *redis.Client
	sender CodeSender
	ttl    time.Duration
	cost   int
	log    zerolog.Logger
}

func NewOTP(rdb *redis.Client, sender CodeSender, ttl time.Duration, bcryptCost int, log zerolog.Logger) *OTP {
	return &OTP{rdb: rdb, sender: sender, ttl: ttl, cost: bcryptCost, log: log}
}

// Request generates a fresh code for email and hands it to the sender. A
// second request overwrites the pending code.
func (o *OTP) Request(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	code, err := generateCode()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), o.cost)
	if err != nil {
		return err
	}
	if err := o.rdb.Set(ctx, otpKey(email), hash, o.ttl).Err(); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	return o.sender.SendCode(ctx, email, code)
}

// Verify checks a submitted code against the pending hash and consumes it
// on success.
func (o *OTP) Verify(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	hash, err := o.rdb.Get(ctx, otpKey(email)).Bytes()
	if err == redis.Nil {
		return ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("load otp: %w", err)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(strings.TrimSpace(code))) != nil {
		return ErrInvalidCode
	}
	if err := o.rdb.Del(ctx, otpKey(email)).Err(); err != nil {
		o.log.Warn().Err(err).Str("email", email).Msg("consume otp failed")
	}
	return nil
}

func otpKey(email string) string { return "otp:" + email }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateCode draws a uniform 6-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
