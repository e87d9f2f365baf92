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

const companionColumns = `id, user_id, first_name, last_name, phone_number, relation, created_at, updated_at`

type CompanionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCompanionRepo(db *dbpg.DB) *CompanionRepository {
	return &CompanionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CompanionRepository) Create(ctx context.Context, companion *domain.Companion) error {
	query := `INSERT INTO companions (` + companionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		companion.ID, companion.Owner, companion.FirstName, companion.LastName,
		companion.PhoneNumber, companion.Relation,
		companion.CreatedAt, companion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert companion: %w", err)
	}

	return nil
}

func (r *CompanionRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Companion, error) {
	query := `SELECT ` + companionColumns + `
			  FROM companions
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list companions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Companion
	for rows.Next() {
		companion, err := scanCompanion(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, companion)
	}

	return res, rows.Err()
}

func (r *CompanionRepository) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Companion, error) {
	query := `SELECT ` + companionColumns + `
			  FROM companions
			  WHERE id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get companion: %w", err)
	}

	return scanCompanionRow(row)
}

func (r *CompanionRepository) GetByID(ctx context.Context, id string) (*domain.Companion, error) {
	query := `SELECT ` + companionColumns + `
			  FROM companions
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get companion: %w", err)
	}

	return scanCompanionRow(row)
}

func (r *CompanionRepository) Update(ctx context.Context, companion *domain.Companion) error {
	query := `UPDATE companions
			  SET first_name = $3, last_name = $4, phone_number = $5, relation = $6, updated_at = $7
			  WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		companion.ID, companion.Owner, companion.FirstName, companion.LastName,
		companion.PhoneNumber, companion.Relation, companion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update companion: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("companion rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCompanionNotFound
	}

	return nil
}

func (r *CompanionRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM companions WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete companion: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("companion rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCompanionNotFound
	}

	return nil
}

func scanCompanion(row rowScanner) (*domain.Companion, error) {
	var c domain.Companion
	err := row.Scan(
		&c.ID, &c.Owner, &c.FirstName, &c.LastName,
		&c.PhoneNumber, &c.Relation, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan companion: %w", err)
	}

	return &c, nil
}

func scanCompanionRow(row *sql.Row) (*domain.Companion, error) {
	companion, err := scanCompanion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanionNotFound
		}
		return nil, err
	}

	return companion, nil
}
