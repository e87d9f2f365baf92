package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const cardColumns = `id, user_id, type, status, number, issuing_authority, expiry_date, document_url, created_at, updated_at`

type CardRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCardRepo(db *dbpg.DB) *CardRepository {
	return &CardRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.DisabilityCard) error {
	query := `INSERT INTO disability_cards (` + cardColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		card.ID, card.Owner, card.Type, card.Status, card.Number,
		card.IssuingAuthority, card.ExpiryDate, card.DocumentURL,
		card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}

	return nil
}

func (r *CardRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.DisabilityCard, error) {
	query := `SELECT ` + cardColumns + `
			  FROM disability_cards
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var res []*domain.DisabilityCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, card)
	}

	return res, rows.Err()
}

// GetByIDForOwner conjoins the owner predicate, so a card owned by another
// principal is reported as not found rather than forbidden.
func (r *CardRepository) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.DisabilityCard, error) {
	query := `SELECT ` + cardColumns + `
			  FROM disability_cards
			  WHERE id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return scanCardRow(row)
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*domain.DisabilityCard, error) {
	query := `SELECT ` + cardColumns + `
			  FROM disability_cards
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return scanCardRow(row)
}

// Update never touches status or user_id: status belongs to the
// verification process and ownership is immutable.
func (r *CardRepository) Update(ctx context.Context, card *domain.DisabilityCard) error {
	query := `UPDATE disability_cards
			  SET type = $3, number = $4, issuing_authority = $5, expiry_date = $6, document_url = $7, updated_at = $8
			  WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		card.ID, card.Owner, card.Type, card.Number,
		card.IssuingAuthority, card.ExpiryDate, card.DocumentURL, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("card rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM disability_cards WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("card rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

func (r *CardRepository) ExpireOverdue(ctx context.Context) ([]*domain.DisabilityCard, error) {
	query := `UPDATE disability_cards
			  SET status = $2, updated_at = NOW()
			  WHERE status = $1 AND expiry_date < NOW()
			  RETURNING ` + cardColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.CardStatusActive, domain.CardStatusExpired)
	if err != nil {
		return nil, fmt.Errorf("expire cards: %w", err)
	}
	defer rows.Close()

	var res []*domain.DisabilityCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, card)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.DisabilityCard, error) {
	var c domain.DisabilityCard
	err := row.Scan(
		&c.ID, &c.Owner, &c.Type, &c.Status, &c.Number,
		&c.IssuingAuthority, &c.ExpiryDate, &c.DocumentURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan card: %w", err)
	}

	return &c, nil
}

func scanCardRow(row *sql.Row) (*domain.DisabilityCard, error) {
	card, err := scanCard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}

	return card, nil
}
