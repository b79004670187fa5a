package model

import (
	"database/sql"
	"time"
)

// Listing is a row in the listings table. Columns outside the required
// set are nullable: empty form fields are stored as NULL.
type Listing struct {
	ID           int64          `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	Salary       string         `db:"salary"`
	Requirements sql.NullString `db:"requirements"`
	Benefits     sql.NullString `db:"benefits"`
	Tags         sql.NullString `db:"tags"`
	Company      sql.NullString `db:"company"`
	Address      sql.NullString `db:"address"`
	City         string         `db:"city"`
	State        string         `db:"state"`
	Phone        sql.NullString `db:"phone"`
	Email        string         `db:"email"`
	UserID       int64          `db:"user_id"`
	CreatedAt    time.Time      `db:"created_at"`
}
