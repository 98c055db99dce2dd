package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"github.com/Freeeeeet/lectures_bot/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository хранит каждую версию документа отдельной строкой в Postgres.
// Load возвращает последнюю версию.
type SnapshotRepository struct {
	*base.Repository
	source string
}

// NewSnapshotRepository создаёт хранилище снимков; source пишется в каждую строку
func NewSnapshotRepository(pool *pgxpool.Pool, source string) *SnapshotRepository {
	return &SnapshotRepository{
		Repository: base.NewRepository(pool),
		source:     source,
	}
}

// Load получает последний снимок
func (r *SnapshotRepository) Load(ctx context.Context) (model.Document, error) {
	query := `
		SELECT document
		FROM schedule_snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`

	var raw []byte
	if err := r.QueryRow(ctx, query).Scan(&raw); err != nil {
		if base.IsNotFound(err) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return doc, nil
}

// Save добавляет новый снимок
func (r *SnapshotRepository) Save(ctx context.Context, doc model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	query := `
		INSERT INTO schedule_snapshots (id, source, document)
		VALUES ($1, $2, $3)
	`

	affected, err := r.ExecAffected(ctx, query, uuid.New(), r.source, raw)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if affected != 1 {
		return fmt.Errorf("create snapshot: %d rows affected", affected)
	}

	return nil
}
