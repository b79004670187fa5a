package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cuongbtq/workopia-be/internal/web/domain"
	"github.com/cuongbtq/workopia-be/internal/web/form"
	"github.com/cuongbtq/workopia-be/internal/web/model"
	"github.com/cuongbtq/workopia-be/shared/postgresql"
	"github.com/jmoiron/sqlx"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

const listingColumns = `
	id, title, description, salary, requirements, benefits,
	tags, company, address, city, state, phone, email,
	user_id, created_at
`

// ListListings returns all listings, newest first.
func (s *Storage) ListListings(ctx context.Context) ([]model.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM listings
		ORDER BY created_at DESC, id DESC
	`

	var listings []model.Listing
	if err := s.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	return listings, nil
}

// GetListingByID fetches a single listing, mapping an absent row to
// domain.ErrListingNotFound.
func (s *Storage) GetListingByID(ctx context.Context, id int64) (*model.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE id = $1
	`

	var listing model.Listing
	err := s.db.GetContext(ctx, &listing, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &listing, nil
}

// CreateListing inserts the submitted fields for userID and returns
// the generated id. created_at is defaulted by the database.
func (s *Storage) CreateListing(ctx context.Context, f *form.ListingForm, userID int64) (int64, error) {
	query, args := buildListingInsert(f, userID)

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create listing: %w", err)
	}

	return id, nil
}

// UpdateListing rewrites the submitted fields of an existing listing.
// user_id and created_at are never touched.
func (s *Storage) UpdateListing(ctx context.Context, id int64, f *form.ListingForm) error {
	query, args := buildListingUpdate(f, id)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}

	return nil
}

// DeleteListing removes a listing by id.
func (s *Storage) DeleteListing(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	return nil
}
