package model

import (
	"fmt"
	"time"
)

// Названия дней недели в том виде, в котором их отдаёт сайт расписания
const (
	Monday    = "Понедельник"
	Tuesday   = "Вторник"
	Wednesday = "Среда"
	Thursday  = "Четверг"
	Friday    = "Пятница"
	Saturday  = "Суббота"
	Sunday    = "Воскресенье"
)

// Метки недельных корзин
const (
	BucketOdd    = "Числитель"   // нечётная неделя
	BucketEven   = "Знаменатель" // чётная неделя
	BucketWeekly = "Еженедельно" // каждую неделю
)

// Weekdays дни недели по индексу: 0 = понедельник, 6 = воскресенье
var Weekdays = [7]string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayIndex возвращает индекс дня недели (0 = понедельник) и false, если метка неизвестна
func WeekdayIndex(label string) (int, bool) {
	for i, wd := range Weekdays {
		if wd == label {
			return i, true
		}
	}
	return -1, false
}

// IsWeekday проверяет что метка входит в фиксированный набор дней недели
func IsWeekday(label string) bool {
	_, ok := WeekdayIndex(label)
	return ok
}

// IsBucket проверяет что метка является одной из трёх корзин
func IsBucket(label string) bool {
	switch label {
	case BucketOdd, BucketEven, BucketWeekly:
		return true
	}
	return false
}

// ClassEntry одно занятие в расписании.
// JSON-ключи совпадают с форматом сохранённого файла расписания.
type ClassEntry struct {
	TimeRange     string `json:"Время занятий"`           // "09:00-10:30", сортируется лексически
	SubjectName   string `json:"Наименование дисциплины"` // название предмета
	SessionType   string `json:"Вид занятий"`             // лекция, семинар и т.п.
	Room          string `json:"Аудитория"`
	Instructor    string `json:"Преподаватель"`
	FrequencyNote string `json:"Частота,omitempty"` // подчастота внутри корзины, например "2"
}

// Document расписание: день недели -> корзина -> занятия в порядке со страницы.
// После построения документ не меняется, обновление подменяет его целиком.
type Document map[string]map[string][]ClassEntry

// ResolvedDate дата, полученная из пользовательского выражения дня
type ResolvedDate struct {
	Date    time.Time
	Weekday string
	Parity  string
}

// Validate проверяет что ключи документа входят в фиксированные наборы дней и корзин
func (d Document) Validate() error {
	for weekday, buckets := range d {
		if !IsWeekday(weekday) {
			return fmt.Errorf("unknown weekday %q", weekday)
		}
		for bucket := range buckets {
			if !IsBucket(bucket) {
				return fmt.Errorf("unknown bucket %q for %s", bucket, weekday)
			}
		}
	}
	return nil
}
