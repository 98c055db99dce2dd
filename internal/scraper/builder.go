package scraper

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"go.uber.org/zap"
)

// FullDayHeader раздел полнодневных занятий, его строки отбрасываются
const FullDayHeader = "Полнодневные занятия"

// GroupRows классифицированные строки расписания одной группы
type GroupRows struct {
	Group Group
	Rows  []Row
}

// buildState состояние свёртки: текущий день недели задаётся только заголовками
type buildState struct {
	weekday string
}

// Builder собирает документ расписания из строк нескольких групп
type Builder struct {
	doc    model.Document
	logger *zap.Logger
}

// NewBuilder создаёт пустой сборщик
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{
		doc:    make(model.Document),
		logger: logger,
	}
}

// AddGroup сворачивает строки одной группы в документ.
// На первой ошибке оставшиеся строки группы отбрасываются, уже добавленные занятия остаются.
func (b *Builder) AddGroup(group string, rows iter.Seq[Row]) error {
	var (
		st  buildState
		err error
	)

	for row := range rows {
		st, err = b.step(st, row)
		if err != nil {
			b.logger.Error("Schedule row rejected, skipping rest of group",
				zap.String("group", group),
				zap.String("weekday", st.weekday),
				zap.String("kind", row.Kind.String()),
				zap.Error(err),
			)
			return fmt.Errorf("build group %s: %w", group, err)
		}
	}

	return nil
}

// Document возвращает собранный документ
func (b *Builder) Document() model.Document {
	return b.doc
}

func (b *Builder) step(st buildState, row Row) (buildState, error) {
	switch row.Kind {
	case RowSkip:
		return st, nil

	case RowWeekdayHeader:
		return buildState{weekday: row.Weekday}, nil

	case RowPlainEntry, RowFrequencyEntry:
		if !model.IsWeekday(st.weekday) {
			if st.weekday == FullDayHeader {
				return st, nil
			}
			return st, fmt.Errorf("%w: entry %q under weekday %q", ErrMalformedScheduleRow, row.Entry.SubjectName, st.weekday)
		}

		day, ok := b.doc[st.weekday]
		if !ok {
			day = make(map[string][]model.ClassEntry)
			b.doc[st.weekday] = day
		}
		day[row.Bucket] = append(day[row.Bucket], row.Entry)
		return st, nil

	case RowFatal:
		if st.weekday == FullDayHeader {
			return st, nil
		}
		return st, row.Err

	default:
		return st, fmt.Errorf("%w: unknown row kind %d", ErrMalformedScheduleRow, row.Kind)
	}
}

// Build собирает документ из строк всех групп.
// Ошибка в одной группе не останавливает обработку остальных.
func Build(logger *zap.Logger, groups []GroupRows) model.Document {
	b := NewBuilder(logger)
	for _, g := range groups {
		// ошибка уже залогирована в AddGroup
		_ = b.AddGroup(g.Group.Name, slices.Values(g.Rows))
	}
	return b.Document()
}
