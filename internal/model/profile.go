package model

import "time"

// Profile mirrors the 'profiles' table. One row per user, provisioned on
// first OTP login and read-only afterwards except for full account deletion.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
