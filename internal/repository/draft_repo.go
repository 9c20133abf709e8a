package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bands-console/internal/database"
	"bands-console/internal/domain"

	"github.com/google/uuid"
)

const (
	kindWizard      = "wizard"
	kindEditSession = "edit_session"
)

// DraftRepository хранит мастера создания и сессии редактирования в PostgreSQL.
type DraftRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewDraftRepository создает новый экземпляр DraftRepository.
func NewDraftRepository(db *sql.DB, queries *database.Queries) domain.DraftRepository {
	return &DraftRepository{
		db:      db,
		queries: queries,
	}
}

// SaveWizard сохраняет мастер целиком.
func (r *DraftRepository) SaveWizard(ctx context.Context, w *domain.Wizard) error {
	return r.save(ctx, w.ID, kindWizard, w, w.CreatedAt, w.UpdatedAt)
}

// GetWizard возвращает мастер по ID.
func (r *DraftRepository) GetWizard(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	var w domain.Wizard
	if err := r.load(ctx, wizardID, kindWizard, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// SaveEditSession сохраняет сессию редактирования целиком.
func (r *DraftRepository) SaveEditSession(ctx context.Context, s *domain.EditSession) error {
	return r.save(ctx, s.ID, kindEditSession, s, s.CreatedAt, s.UpdatedAt)
}

// GetEditSession возвращает сессию редактирования по ID.
func (r *DraftRepository) GetEditSession(ctx context.Context, sessionID string) (*domain.EditSession, error) {
	var s domain.EditSession
	if err := r.load(ctx, sessionID, kindEditSession, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteDraft удаляет черновик любого вида.
func (r *DraftRepository) DeleteDraft(ctx context.Context, draftID string) error {
	if _, err := uuid.Parse(draftID); err != nil {
		return domain.ErrDraftNotFound
	}
	affected, err := r.queries.DeleteDraft(ctx, draftID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if affected == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

// PurgeOlderThan удаляет черновики, не менявшиеся с момента before.
func (r *DraftRepository) PurgeOlderThan(ctx context.Context, before time.Time) (int64, error) {
	affected, err := r.queries.PurgeDrafts(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge drafts: %w", err)
	}
	return affected, nil
}

func (r *DraftRepository) save(ctx context.Context, id, kind string, v any, createdAt, updatedAt time.Time) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid draft id %q: %w", id, err)
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	affected, err := r.queries.UpsertDraft(ctx, database.UpsertDraftParams{
		ID:        id,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("draft %s already exists with another kind", id)
	}
	return nil
}

func (r *DraftRepository) load(ctx context.Context, id, kind string, out any) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrDraftNotFound
	}

	row, err := r.queries.GetDraft(ctx, database.GetDraftParams{ID: id, Kind: kind})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDraftNotFound
		}
		return fmt.Errorf("failed to get draft: %w", err)
	}

	if err := json.Unmarshal(row.Payload, out); err != nil {
		return fmt.Errorf("failed to decode draft: %w", err)
	}
	return nil
}
