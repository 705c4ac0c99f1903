package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/server/models"
)

const selectColumns = `SELECT id, requester_id, receiver_id, status, created_at, resolved_at FROM contacts`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*models.Contact, error) {
	c := &models.Contact{}
	var status string
	var resolved sql.NullTime
	if err := row.Scan(&c.ID, &c.RequesterID, &c.ReceiverID, &status, &c.CreatedAt, &resolved); err != nil {
		return nil, err
	}
	c.Status = models.InviteStatus(status)
	if resolved.Valid {
		t := resolved.Time
		c.ResolvedAt = &t
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {

	query :=
		`INSERT INTO contacts (requester_id, receiver_id, status)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, c.RequesterID, c.ReceiverID, string(c.Status)).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Contact) error {

	query := `UPDATE contacts SET status = $1, resolved_at = $2 WHERE id = $3`

	var resolved sql.NullTime
	if c.ResolvedAt != nil {
		resolved = sql.NullTime{Time: *c.ResolvedAt, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query, string(c.Status), resolved, c.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) FindForReceiver(ctx context.Context, inviteID, receiverID string) (*models.Contact, error) {
	query := selectColumns + ` WHERE id = $1 AND receiver_id = $2 FOR UPDATE`

	c, err := scanContact(r.db.QueryRowContext(ctx, query, inviteID, receiverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*models.Contact, error) {
	query := selectColumns + ` WHERE receiver_id = $1 ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query, receiverID)
}

func (r *PostgresRepository) ListAccepted(ctx context.Context, contactID string) ([]*models.Contact, error) {
	query := selectColumns + ` WHERE status = 'ACCEPTED' AND (requester_id = $1 OR receiver_id = $1) ORDER BY resolved_at ASC`
	return r.list(ctx, query, contactID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]*models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
