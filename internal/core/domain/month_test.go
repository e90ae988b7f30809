package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseMonth(t *testing.T) {
	m, err := domain.ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, domain.Month{Year: 2024, Month: time.March}, m)
	assert.Equal(t, "2024-03", m.String())

	_, err = domain.ParseMonth("2024-3x")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMonth_ContainsIsCalendarAware(t *testing.T) {
	jan, err := domain.ParseMonth("2024-01")
	require.NoError(t, err)

	assert.True(t, jan.Contains(day("2024-01-31")))
	assert.False(t, jan.Contains(day("2024-10-01")), "January must not match October")
	assert.False(t, jan.Contains(day("2023-01-15")), "year must match")
}

func TestMonth_Days(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"2024-02", 29},
		{"2023-02", 28},
		{"2024-04", 30},
		{"2024-12", 31},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			m, err := domain.ParseMonth(tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Days())
		})
	}
}

func TestDayOf_DropsClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2024, 3, 1, 23, 45, 0, 0, loc)

	got := domain.DayOf(ts)

	assert.Equal(t, day("2024-03-01"), got)
	assert.True(t, domain.SameDay(ts, got))
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := domain.ParseDay("01/03/2024")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
