package schedule

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Freeeeeet/lectures_bot/internal/model"
)

// ErrScheduleLookupMiss в документе нет запрошенного дня
var ErrScheduleLookupMiss = errors.New("schedule lookup miss")

// Сообщения пользователю
const (
	NotFoundMessage     = "Не удалось найти расписание на указанный день"
	InvalidDateMessage  = "Некорректная дата: %s"
	UnknownParityFormat = "Неизвестный тип недели: %s"
)

const separatorWidth = 40

// Lectures возвращает расписание на день из выражения.
// Текст для пользователя возвращается всегда, ошибка нужна только для логирования.
func Lectures(doc model.Document, expression string, now time.Time) (string, error) {
	resolved, err := Resolve(expression, now)
	if err != nil {
		return fmt.Sprintf(InvalidDateMessage, strings.TrimSpace(expression)), err
	}

	entries, err := Select(doc, resolved)
	if err != nil {
		return NotFoundMessage, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Расписание на %s (%s/%s)",
		resolved.Date.Format("02.01.2006"),
		strings.ToLower(resolved.Weekday),
		strings.ToLower(resolved.Parity),
	)
	for _, e := range entries {
		writeEntry(&sb, e)
	}

	return sb.String(), nil
}

// Select выбирает занятия дня: корзина чётности плюс еженедельные, отсортированные по времени
func Select(doc model.Document, resolved model.ResolvedDate) ([]model.ClassEntry, error) {
	day, ok := doc[resolved.Weekday]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScheduleLookupMiss, resolved.Weekday)
	}

	entries := make([]model.ClassEntry, 0, len(day[resolved.Parity])+len(day[model.BucketWeekly]))
	entries = append(entries, day[resolved.Parity]...)
	entries = append(entries, day[model.BucketWeekly]...)

	slices.SortStableFunc(entries, func(a, b model.ClassEntry) int {
		return strings.Compare(a.TimeRange, b.TimeRange)
	})

	return entries, nil
}

// WeekLectures расписание всей недели для корзины.
// Пустая метка означает корзину текущей недели.
func WeekLectures(doc model.Document, label string, now time.Time) (string, error) {
	var bucket string
	if strings.TrimSpace(label) == "" {
		bucket = ParityOf(now)
	} else {
		var ok bool
		bucket, ok = NormalizeParity(label)
		if !ok {
			return fmt.Sprintf(UnknownParityFormat, strings.TrimSpace(label)),
				fmt.Errorf("%w: bucket %q", ErrScheduleLookupMiss, label)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Расписание на %s", bucket)
	for _, weekday := range model.Weekdays {
		entries, ok := doc[weekday][bucket]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n%s", weekday)
		for _, e := range entries {
			writeEntry(&sb, e)
		}
	}

	return sb.String(), nil
}

// writeEntry блок одного занятия
func writeEntry(sb *strings.Builder, e model.ClassEntry) {
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("=", separatorWidth))
	fmt.Fprintf(sb, "\n%s: %s", e.TimeRange, e.SubjectName)
	fmt.Fprintf(sb, "\n%s | %s | %s", e.Instructor, e.Room, e.SessionType)
	if e.FrequencyNote != "" {
		fmt.Fprintf(sb, " | %s", e.FrequencyNote)
	}
}
