package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2026-03-01", wantErr: false},
		{name: "leap day", input: "2024-02-29", wantErr: false},
		{name: "rolled-over day", input: "2024-02-30", wantErr: true},
		{name: "leap day in a common year", input: "2023-02-29", wantErr: true},
		{name: "thirteenth month", input: "2026-13-01", wantErr: true},
		{name: "slash format", input: "03/01/2026", wantErr: true},
		{name: "missing zero padding", input: "2026-3-1", wantErr: true},
		{name: "datetime", input: "2026-03-01T00:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		day, err := NewDay(1, "2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", day.Date())
		assert.Equal(t, uint(1), day.MealPlanID())
		assert.Contains(t, day.SID(), "mpd_")
	})

	t.Run("missing plan ID", func(t *testing.T) {
		_, err := NewDay(0, "2026-03-01")
		assert.Error(t, err)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := NewDay(1, "2024-02-30")
		assert.Error(t, err)
	})
}
