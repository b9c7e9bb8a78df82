package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "25/12/2025", FormatDateBR("2025-12-25"))
	assert.Equal(t, "", FormatDateBR(""))
	assert.Equal(t, "", FormatDateBR("25/12/2025"))
}

func TestParseDateBR(t *testing.T) {
	assert.Equal(t, "2025-12-25", ParseDateBR("25/12/2025"))
	assert.Equal(t, "2025-02-01", ParseDateBR("1/2/2025"))
	assert.Equal(t, "", ParseDateBR("2025-12-25"))
	assert.Equal(t, "", ParseDateBR(""))
}

func TestDateBR_RoundTrip(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 800; i++ {
		d := start.AddDate(0, 0, i).Format(DateFormat)
		formatted := FormatDateBR(d)
		require.NotEmpty(t, formatted, d)
		assert.Equal(t, formatted, FormatDateBR(ParseDateBR(formatted)), d)
		assert.Equal(t, d, ParseDateBR(formatted), d)
	}
}

func TestFormatPhoneBR(t *testing.T) {
	assert.Equal(t, "", FormatPhoneBR(""))
	assert.Equal(t, "11", FormatPhoneBR("11"))
	assert.Equal(t, "(11) 9876", FormatPhoneBR("119876"))
	assert.Equal(t, "(11) 98765-4321", FormatPhoneBR("11987654321"))
	assert.Equal(t, "(11) 98765-4321", FormatPhoneBR("+(11) 98765-43219999"))
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	d, err := ParseDate("2025-03-10", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, d.Location())
	assert.Equal(t, 10, d.Day())

	_, err = ParseDate("10/03/2025", loc)
	assert.Error(t, err)
}
