package model

import "time"

// MaxJarNameLength bounds the name given to an archived jar.
const MaxJarNameLength = 50

// Jar mirrors the 'jars' table. A jar row is a named checkpoint created
// once per fill-and-save cycle; the stars it held are deleted right after
// it is saved.
type Jar struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
