package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input Status
		want  bool
	}{
		{name: "draft", input: StatusDraft, want: true},
		{name: "active", input: StatusActive, want: true},
		{name: "completed", input: StatusCompleted, want: true},
		{name: "unknown value", input: Status("paused"), want: false},
		{name: "wrong case", input: Status("Draft"), want: false},
		{name: "empty", input: Status(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.IsValid())
		})
	}
}

func TestNewMealPlan(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		plan, err := NewMealPlan(1, "  Week 1 ", StatusDraft)
		require.NoError(t, err)
		assert.Equal(t, "Week 1", plan.Name())
		assert.Equal(t, StatusDraft, plan.Status())
		assert.Contains(t, plan.SID(), "mp_")
	})

	t.Run("missing household ID", func(t *testing.T) {
		_, err := NewMealPlan(0, "Week 1", StatusDraft)
		assert.Error(t, err)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewMealPlan(1, "   ", StatusDraft)
		assert.Error(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := NewMealPlan(1, "Week 1", Status("paused"))
		assert.Error(t, err)
	})
}
