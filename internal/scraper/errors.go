package scraper

import "errors"

// Ошибки разбора расписания
var (
	// ErrUnknownFrequencyPrefix префикс частоты вне таблицы сокращений
	ErrUnknownFrequencyPrefix = errors.New("unknown frequency prefix")
	// ErrMalformedScheduleRow структура таблицы не совпадает с ожидаемой
	ErrMalformedScheduleRow = errors.New("malformed schedule row")
)
