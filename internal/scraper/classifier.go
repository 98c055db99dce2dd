package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Freeeeeet/lectures_bot/internal/model"
)

// RowKind тип строки таблицы расписания
type RowKind int

const (
	RowSkip RowKind = iota
	RowWeekdayHeader
	RowPlainEntry
	RowFrequencyEntry
	RowFatal
)

func (k RowKind) String() string {
	switch k {
	case RowWeekdayHeader:
		return "weekday_header"
	case RowPlainEntry:
		return "plain_entry"
	case RowFrequencyEntry:
		return "frequency_entry"
	case RowFatal:
		return "fatal"
	default:
		return "skip"
	}
}

// Row результат классификации одной строки.
// Для RowFatal заполнено только Err.
type Row struct {
	Kind    RowKind
	Weekday string
	Bucket  string
	Entry   model.ClassEntry
	Err     error
}

// Колонки строки с занятием
const (
	colTime = iota
	colSubject
	colType
	colFrequency
	colRoom
	colInstructor

	entryCellCount
)

// EmptyInstructor подставляется, если преподаватель не указан
const EmptyInstructor = "--"

// frequencyShortens сокращения частоты вида "Числ.2"
var frequencyShortens = map[string]string{
	"Числ": model.BucketOdd,
	"Знам": model.BucketEven,
	"Еж":   model.BucketWeekly,
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

// Classify определяет тип строки по тексту её ячеек
func Classify(cells []string) Row {
	if len(cells) == entryCellCount {
		return classifyEntry(cells)
	}

	if label, ok := singleNonEmpty(cells); ok {
		return Row{Kind: RowWeekdayHeader, Weekday: label}
	}

	return Row{Kind: RowSkip}
}

func classifyEntry(cells []string) Row {
	// строка подписей колонок ("Время занятий", "Периодичность", ...) идёт сразу за днём недели;
	// у настоящего занятия во времени всегда есть цифры
	if !strings.ContainsAny(cells[colTime], "0123456789") {
		return Row{Kind: RowSkip}
	}

	entry := model.ClassEntry{
		TimeRange:   strings.TrimSpace(cells[colTime]),
		SubjectName: strings.TrimSpace(cells[colSubject]),
		SessionType: strings.TrimSpace(cells[colType]),
		Room:        strings.TrimSpace(cells[colRoom]),
		Instructor:  normalizeInstructor(cells[colInstructor]),
	}

	frequency := strings.TrimSpace(cells[colFrequency])

	// "Числ.2" -> корзина "Числитель", подчастота "2"
	if prefix, suffix, ok := strings.Cut(frequency, "."); ok {
		bucket, known := frequencyShortens[strings.TrimSpace(prefix)]
		if !known {
			return Row{Kind: RowFatal, Err: fmt.Errorf("%w: %q", ErrUnknownFrequencyPrefix, prefix)}
		}
		entry.FrequencyNote = strings.TrimSpace(suffix)
		return Row{Kind: RowFrequencyEntry, Bucket: bucket, Entry: entry}
	}

	bucket := frequency
	if full, ok := frequencyShortens[bucket]; ok {
		bucket = full
	}
	if !model.IsBucket(bucket) {
		return Row{Kind: RowFatal, Err: fmt.Errorf("%w: frequency %q", ErrMalformedScheduleRow, frequency)}
	}

	return Row{Kind: RowPlainEntry, Bucket: bucket, Entry: entry}
}

func normalizeInstructor(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return EmptyInstructor
	}
	return multiSpace.ReplaceAllString(text, " ")
}

// singleNonEmpty возвращает текст единственной непустой ячейки
func singleNonEmpty(cells []string) (string, bool) {
	label := ""
	count := 0
	for _, c := range cells {
		if text := strings.TrimSpace(c); text != "" {
			label = text
			count++
		}
	}
	return label, count == 1
}
