package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// DBTX: общий интерфейс *sql.DB и *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries: SQL-запросы консоли.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Draft: строка таблицы drafts.
type Draft struct {
	ID        string
	Kind      string
	Payload   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

const upsertDraft = `
INSERT INTO drafts (id, kind, payload, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
WHERE drafts.kind = EXCLUDED.kind
`

type UpsertDraftParams struct {
	ID        string
	Kind      string
	Payload   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertDraft(ctx context.Context, arg UpsertDraftParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, upsertDraft, arg.ID, arg.Kind, []byte(arg.Payload), arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const getDraft = `
SELECT id, kind, payload, created_at, updated_at
FROM drafts
WHERE id = $1 AND kind = $2
`

type GetDraftParams struct {
	ID   string
	Kind string
}

func (q *Queries) GetDraft(ctx context.Context, arg GetDraftParams) (Draft, error) {
	row := q.db.QueryRowContext(ctx, getDraft, arg.ID, arg.Kind)
	var d Draft
	var payload []byte
	err := row.Scan(&d.ID, &d.Kind, &payload, &d.CreatedAt, &d.UpdatedAt)
	d.Payload = payload
	return d, err
}

const deleteDraft = `DELETE FROM drafts WHERE id = $1`

func (q *Queries) DeleteDraft(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteDraft, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const purgeDrafts = `DELETE FROM drafts WHERE updated_at < $1`

func (q *Queries) PurgeDrafts(ctx context.Context, before time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, purgeDrafts, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const getSubscription = `
SELECT subscribed_at
FROM newsletter_subscriptions
WHERE email = $1
`

func (q *Queries) GetSubscription(ctx context.Context, email string) (time.Time, error) {
	row := q.db.QueryRowContext(ctx, getSubscription, email)
	var subscribedAt time.Time
	err := row.Scan(&subscribedAt)
	return subscribedAt, err
}

const upsertSubscription = `
INSERT INTO newsletter_subscriptions (email, subscribed_at)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE
SET subscribed_at = EXCLUDED.subscribed_at
`

type UpsertSubscriptionParams struct {
	Email        string
	SubscribedAt time.Time
}

func (q *Queries) UpsertSubscription(ctx context.Context, arg UpsertSubscriptionParams) error {
	_, err := q.db.ExecContext(ctx, upsertSubscription, arg.Email, arg.SubscribedAt)
	return err
}
