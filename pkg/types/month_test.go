package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/paisapal/backend/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2025-03", types.NewMonth(2025, 3).String())
	assert.Equal(t, "0001-12", types.NewMonth(1, 12).String())
}

func TestMonthOf(t *testing.T) {
	month := types.MonthOf(time.Date(2025, 3, 17, 13, 14, 15, 0, time.UTC))
	assert.True(t, month.Equal(types.NewMonth(2025, 3)))
}

func TestParseMonth(t *testing.T) {
	month, err := types.ParseMonth("2025-03")
	assert.Nil(t, err)
	assert.True(t, month.Equal(types.NewMonth(2025, 3)))

	_, err = types.ParseMonth("March 2025")
	assert.NotNil(t, err)
}

func TestMonthAddDate(t *testing.T) {
	month := types.NewMonth(2025, 1)

	assert.True(t, month.AddDate(0, 1).Equal(types.NewMonth(2025, 2)))
	assert.True(t, month.AddDate(0, -1).Equal(types.NewMonth(2024, 12)))
	assert.True(t, month.AddDate(1, 0).Equal(types.NewMonth(2026, 1)))
}

func TestMonthComparisons(t *testing.T) {
	january := types.NewMonth(2025, 1)
	february := types.NewMonth(2025, 2)

	assert.True(t, january.Before(february))
	assert.True(t, february.After(january))
	assert.False(t, january.Equal(february))
}

func TestMonthContains(t *testing.T) {
	month := types.NewMonth(2025, 2)

	assert.True(t, month.Contains(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, month.Contains(time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Month
	}{
		{`"2025-03-15"`, types.NewMonth(2025, 3)},
		{`"2025-03-15T10:11:12Z"`, types.NewMonth(2025, 3)},
	}

	for _, tt := range tests {
		var month types.Month
		err := json.Unmarshal([]byte(tt.input), &month)
		assert.Nil(t, err, "parsing %s failed", tt.input)
		assert.True(t, month.Equal(tt.expected), "parsed %s, got %s", tt.input, month)
	}
}

func TestMonthValue(t *testing.T) {
	value, err := types.NewMonth(2025, 3).Value()
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), value)
}
