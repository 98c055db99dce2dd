package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"github.com/spf13/afero"
)

// FileRepository хранит документ в JSON-файле.
// Кириллица и HTML-символы пишутся как есть, отступ 4 пробела.
type FileRepository struct {
	fs   afero.Fs
	path string
}

// NewFileRepository создаёт файловое хранилище
func NewFileRepository(fsys afero.Fs, path string) *FileRepository {
	return &FileRepository{fs: fsys, path: path}
}

// Load читает документ из файла
func (r *FileRepository) Load(_ context.Context) (model.Document, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("read schedule file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule file %s: %w", r.path, err)
	}

	return doc, nil
}

// Save перезаписывает файл через временный файл и rename
func (r *FileRepository) Save(_ context.Context, doc model.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write schedule file: %w", err)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace schedule file: %w", err)
	}

	return nil
}
