package schedule

import (
	"testing"
	"time"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsOddWeek(t *testing.T) {
	// 3 января 2022, понедельник: числитель
	monday := date(2022, time.January, 3)
	require.True(t, IsOddWeek(monday))
	assert.Equal(t, model.BucketOdd, ParityOf(monday))

	t.Run("same parity every 14 days", func(t *testing.T) {
		for k := 0; k < 25; k++ {
			d := monday.AddDate(0, 0, 14*k)
			assert.True(t, IsOddWeek(d), d.Format("02.01.2006"))
		}
	})

	t.Run("flips every 7 days within a year", func(t *testing.T) {
		for k := 0; k < 50; k++ {
			d := monday.AddDate(0, 0, 7*k)
			assert.NotEqual(t, IsOddWeek(d), IsOddWeek(d.AddDate(0, 0, 7)), d.Format("02.01.2006"))
		}
	})

	t.Run("known dates", func(t *testing.T) {
		tests := []struct {
			date time.Time
			want string
		}{
			{date(2022, time.January, 1), model.BucketEven},
			{date(2022, time.January, 2), model.BucketOdd},
			{date(2022, time.January, 10), model.BucketEven},
			{date(2023, time.January, 2), model.BucketOdd},
			{date(2026, time.October, 17), model.BucketEven},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, ParityOf(tt.date), tt.date.Format("02.01.2006"))
		}
	})

	t.Run("ignores time of day", func(t *testing.T) {
		assert.Equal(t, IsOddWeek(monday), IsOddWeek(monday.Add(23*time.Hour)))
	})
}

func TestResolve(t *testing.T) {
	// среда
	now := time.Date(2022, time.January, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expression string
		want       time.Time
		weekday    string
	}{
		{"empty is today", "", date(2022, time.January, 5), model.Wednesday},
		{"today keyword", "сегодня", date(2022, time.January, 5), model.Wednesday},
		{"tomorrow", "завтра", date(2022, time.January, 6), model.Thursday},
		{"tomorrow upper case", "ЗАВТРА", date(2022, time.January, 6), model.Thursday},
		{"own weekday is today", "среда", date(2022, time.January, 5), model.Wednesday},
		{"next monday", "понедельник", date(2022, time.January, 10), model.Monday},
		{"next sunday", "Воскресенье", date(2022, time.January, 9), model.Sunday},
		{"dot date", "15.09", date(2022, time.September, 15), model.Thursday},
		{"dash date", "1-2", date(2022, time.February, 1), model.Tuesday},
		{"backslash date", `01\03`, date(2022, time.March, 1), model.Tuesday},
		{"slash date", "15/09", date(2022, time.September, 15), model.Thursday},
		{"year suffix ignored", "15.09.2026", date(2022, time.September, 15), model.Thursday},
		{"short year suffix ignored", "15.09.26", date(2022, time.September, 15), model.Thursday},
		{"trailing separator", "15.09.", date(2022, time.September, 15), model.Thursday},
		{"unknown text is today", "чепуха", date(2022, time.January, 5), model.Wednesday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.expression, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Date), "got %s", got.Date)
			assert.Equal(t, tt.weekday, got.Weekday)
			assert.Equal(t, ParityOf(tt.want), got.Parity)
		})
	}
}

func TestResolveWeekdayWithinWeek(t *testing.T) {
	now := time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC)
	today := date(2024, time.March, 14)

	for _, weekday := range model.Weekdays {
		got, err := Resolve(weekday, now)
		require.NoError(t, err)

		assert.Equal(t, weekday, got.Weekday)
		assert.False(t, got.Date.Before(today))
		assert.True(t, got.Date.Before(today.AddDate(0, 0, 7)))
	}
}

func TestResolveInvalidDate(t *testing.T) {
	now := date(2022, time.January, 5)

	for _, expr := range []string{
		"31.04", "30.02", "32.01", "10.13", "0.5",
		"31.04.2026", "15.09.123", "15.09.2026.1", "15..09", "15/13",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := Resolve(expr, now)
			assert.ErrorIs(t, err, ErrDateExpressionUnparseable)
		})
	}
}

func TestNormalizeParity(t *testing.T) {
	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"числитель", model.BucketOdd, true},
		{"ЗНАМЕНАТЕЛЬ", model.BucketEven, true},
		{"знам", model.BucketEven, true},
		{"Еж", model.BucketWeekly, true},
		{"вторник", "Вторник", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeParity(tt.label)
		assert.Equal(t, tt.want, got, tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
	}
}
