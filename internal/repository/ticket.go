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

const ticketColumns = `id, user_id, event_id, card_id, type, created_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the ticket after checking remaining capacity, in one
// transaction. The event row is locked so two concurrent bookings cannot
// both pass the count.
func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capQuery := `SELECT max_capacity FROM events WHERE id = $1 FOR UPDATE`
	var maxCapacity int
	if err = tx.QueryRowContext(ctx, capQuery, t.EventID).Scan(&maxCapacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event capacity: %w", err)
	}

	var booked int
	countQuery := `SELECT COUNT(*) FROM tickets WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, t.EventID).Scan(&booked); err != nil {
		return fmt.Errorf("count tickets: %w", err)
	}

	if booked >= maxCapacity {
		return domain.ErrNoAvailableSpots
	}

	query := `INSERT INTO tickets (` + ticketColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query,
		t.ID, t.Owner, t.EventID, t.CardID, t.Type, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}

	return tx.Commit()
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, ticket)
	}

	return res, rows.Err()
}

func (r *TicketRepository) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	return scanTicketRow(row)
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	return scanTicketRow(row)
}

func (r *TicketRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM tickets WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ticket rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func (r *TicketRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan ticket count: %w", err)
	}

	return count, nil
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.ID, &t.Owner, &t.EventID, &t.CardID, &t.Type, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func scanTicketRow(row *sql.Row) (*domain.Ticket, error) {
	ticket, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}
