package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDateISO(t *testing.T) {
	due, err := ParseDueDate("2026-03-15")
	require.NoError(t, err)
	require.NotNil(t, due)

	assert.Equal(t, "2026-03-15", due.Format("2006-01-02"))
	assert.Equal(t, "23:59:59", due.Format("15:04:05"))
}

func TestParseDueDateEuropean(t *testing.T) {
	due, err := ParseDueDate("15/03/2026")
	require.NoError(t, err)
	require.NotNil(t, due)

	assert.Equal(t, "2026-03-15", due.Format("2006-01-02"))
}

func TestParseDueDateKeywords(t *testing.T) {
	now := time.Now()

	due, err := ParseDueDate("today")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, now.Format("2006-01-02"), due.Format("2006-01-02"))

	due, err = ParseDueDate("Tomorrow")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, now.AddDate(0, 0, 1).Format("2006-01-02"), due.Format("2006-01-02"))
}

func TestParseDueDateRelative(t *testing.T) {
	now := time.Now()

	due, err := ParseDueDate("3 days")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, now.AddDate(0, 0, 3).Format("2006-01-02"), due.Format("2006-01-02"))

	due, err = ParseDueDate("2weeks")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, now.AddDate(0, 0, 14).Format("2006-01-02"), due.Format("2006-01-02"))

	due, err = ParseDueDate("24 hours")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.WithinDuration(t, now.Add(24*time.Hour), *due, time.Minute)
}

func TestParseDueDateEmpty(t *testing.T) {
	due, err := ParseDueDate("")
	require.NoError(t, err)
	assert.Nil(t, due)
}

func TestParseDueDateInvalid(t *testing.T) {
	for _, input := range []string{"someday", "0 days", "13/13/2026", "-1 days"} {
		due, err := ParseDueDate(input)
		assert.Error(t, err, "input %q", input)
		assert.Nil(t, due, "input %q", input)
	}
}

func TestFormatDueDate(t *testing.T) {
	assert.Equal(t, "", FormatDueDate(nil))

	now := time.Now()

	yesterday := now.AddDate(0, 0, -1)
	assert.Contains(t, FormatDueDate(&yesterday), "OVERDUE")

	assert.Contains(t, FormatDueDate(&now), "due today")

	tomorrow := now.AddDate(0, 0, 1)
	assert.Contains(t, FormatDueDate(&tomorrow), "due tomorrow")

	soon := now.AddDate(0, 0, 5)
	assert.Contains(t, FormatDueDate(&soon), "in 5 days")

	later := now.AddDate(0, 0, 30)
	assert.Equal(t, "due "+later.Format("2006-01-02"), FormatDueDate(&later))
}
