package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrDateExpressionUnparseable дата вида Д.М не существует в календаре
var ErrDateExpressionUnparseable = errors.New("unparseable date expression")

// Ключевые слова относительных дней
const (
	KeywordToday    = "Сегодня"
	KeywordTomorrow = "Завтра"
)

// Д.М, Д-М, Д\М или Д/М; хвост с годом ("15.09.2026", "15.09.") допускается и отбрасывается,
// год всегда текущий
var (
	numericDate = regexp.MustCompile(`^(0?[1-9]|[12][0-9]|3[01])[.\-\\/](0?[1-9]|1[0-2])(?:[.\-\\/](?:\d{2}|\d{4})?)?$`)
	numericLike = regexp.MustCompile(`^\d+(?:[.\-\\/]\d*)+$`)
)

// parityAnchor день недели 1 января 2022 (понедельник = 0)
var parityAnchor = mondayIndex(time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC))

// Resolve переводит выражение дня в конкретную дату относительно now.
// Нераспознанный непустой текст разрешается в сегодняшний день.
func Resolve(expression string, now time.Time) (model.ResolvedDate, error) {
	expression = strings.TrimSpace(expression)
	today := truncateDay(now)

	var date time.Time
	if m := numericDate.FindStringSubmatch(expression); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])

		date = time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, today.Location())
		// time.Date нормализует 31.04 в 01.05
		if date.Day() != day {
			return model.ResolvedDate{}, fmt.Errorf("%w: %q", ErrDateExpressionUnparseable, expression)
		}
	} else if numericLike.MatchString(expression) {
		return model.ResolvedDate{}, fmt.Errorf("%w: %q", ErrDateExpressionUnparseable, expression)
	} else {
		date = today
		switch word := titleCase(expression); word {
		case "", KeywordToday:
		case KeywordTomorrow:
			date = today.AddDate(0, 0, 1)
		default:
			if idx, ok := model.WeekdayIndex(word); ok {
				date = today.AddDate(0, 0, (idx-mondayIndex(today)+7)%7)
			}
		}
	}

	return model.ResolvedDate{
		Date:    date,
		Weekday: model.Weekdays[mondayIndex(date)],
		Parity:  ParityOf(date),
	}, nil
}

// IsOddWeek неделя-числитель. Зависит только от номера дня в году и дня недели 1 января 2022.
func IsOddWeek(date time.Time) bool {
	return ((date.YearDay()+parityAnchor)/7)%2 == 1
}

// ParityOf возвращает метку корзины для даты
func ParityOf(date time.Time) string {
	if IsOddWeek(date) {
		return model.BucketOdd
	}
	return model.BucketEven
}

// NormalizeParity приводит пользовательскую метку недели к полной форме ("числ" -> "Числитель")
func NormalizeParity(label string) (string, bool) {
	word := titleCase(strings.TrimSpace(label))
	switch word {
	case "Числ":
		return model.BucketOdd, true
	case "Знам":
		return model.BucketEven, true
	case "Еж":
		return model.BucketWeekly, true
	}
	return word, model.IsBucket(word)
}

// titleCase "понедельник" -> "Понедельник". Caser нельзя делить между горутинами.
func titleCase(s string) string {
	return cases.Title(language.Russian).String(s)
}

func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
