package repository

import (
	"context"
	"errors"

	"github.com/Freeeeeet/lectures_bot/internal/model"
)

// ErrNoDocument сохранённого расписания ещё нет
var ErrNoDocument = errors.New("schedule document not found")

// DocumentRepository хранилище документа расписания.
// Save сохраняет документ целиком, частичных обновлений нет.
type DocumentRepository interface {
	Load(ctx context.Context) (model.Document, error)
	Save(ctx context.Context, doc model.Document) error
}
