package scraper

import (
	"testing"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryCells(frequency, instructor string) []string {
	return []string{"09:00-10:30", "Алгебра", "Лекция", frequency, "101", instructor}
}

func TestClassify(t *testing.T) {
	t.Run("weekday header", func(t *testing.T) {
		row := Classify([]string{"\n  Понедельник \n"})
		assert.Equal(t, RowWeekdayHeader, row.Kind)
		assert.Equal(t, model.Monday, row.Weekday)
	})

	t.Run("header with empty decorative cells", func(t *testing.T) {
		row := Classify([]string{"", "Вторник", " "})
		assert.Equal(t, RowWeekdayHeader, row.Kind)
		assert.Equal(t, model.Tuesday, row.Weekday)
	})

	t.Run("frequency encoded", func(t *testing.T) {
		row := Classify(entryCells("Числ.2", "Иванов"))
		require.Equal(t, RowFrequencyEntry, row.Kind)
		assert.Equal(t, model.BucketOdd, row.Bucket)
		assert.Equal(t, "2", row.Entry.FrequencyNote)
		assert.Equal(t, "Алгебра", row.Entry.SubjectName)
	})

	t.Run("frequency prefixes", func(t *testing.T) {
		assert.Equal(t, model.BucketEven, Classify(entryCells("Знам.1", "x")).Bucket)
		assert.Equal(t, model.BucketWeekly, Classify(entryCells("Еж.3", "x")).Bucket)
	})

	t.Run("plain entry", func(t *testing.T) {
		row := Classify(entryCells("Еженедельно", "Иванов"))
		require.Equal(t, RowPlainEntry, row.Kind)
		assert.Equal(t, model.BucketWeekly, row.Bucket)
		assert.Empty(t, row.Entry.FrequencyNote)
		assert.Equal(t, model.ClassEntry{
			TimeRange:   "09:00-10:30",
			SubjectName: "Алгебра",
			SessionType: "Лекция",
			Room:        "101",
			Instructor:  "Иванов",
		}, row.Entry)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		row := Classify(entryCells("Мес.1", "Иванов"))
		assert.Equal(t, RowFatal, row.Kind)
		assert.ErrorIs(t, row.Err, ErrUnknownFrequencyPrefix)
	})

	t.Run("unknown plain frequency", func(t *testing.T) {
		row := Classify(entryCells("Иногда", "Иванов"))
		assert.Equal(t, RowFatal, row.Kind)
		assert.ErrorIs(t, row.Err, ErrMalformedScheduleRow)
	})

	t.Run("column caption row is skipped", func(t *testing.T) {
		tests := []struct {
			name  string
			cells []string
		}{
			{"captions", []string{"Время занятий", "Наименование дисциплины", "Вид занятий", "Периодичность", "Аудитория", "Преподаватель"}},
			{"empty cells", []string{"", "", "", "", "", ""}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				row := Classify(tt.cells)
				assert.Equal(t, RowSkip, row.Kind)
				assert.NoError(t, row.Err)
			})
		}
	})

	t.Run("other cell counts are skipped", func(t *testing.T) {
		assert.Equal(t, RowSkip, Classify(nil).Kind)
		assert.Equal(t, RowSkip, Classify([]string{"a", "b", "c"}).Kind)
		assert.Equal(t, RowSkip, Classify([]string{"", ""}).Kind)
	})
}

func TestClassifyInstructor(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", EmptyInstructor},
		{"whitespace only", "  \n ", EmptyInstructor},
		{"collapses runs", "Иванов   И.И.\n\n Петров П.П.", "Иванов И.И. Петров П.П."},
		{"single spaces kept", "Иванов И.И.", "Иванов И.И."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Classify(entryCells("Еженедельно", tt.raw))
			assert.Equal(t, tt.want, row.Entry.Instructor)
		})
	}
}
