package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namdo/internal/models/request_models"
)

func TestBuildSchedulePromptEmbedsAllowedListVerbatim(t *testing.T) {
	allowed := []PlaceInfo{
		{Name: "Juknokwon", Addr: "X"},
		{Name: "MysteryCafe", Addr: "Suncheon Station"},
	}
	req := request_models.ScheduleRequest{
		StartDate:      "2025-06-19",
		TripDays:       3,
		DeparturePlace: "Suncheon Station",
		DepartureTime:  "09:00",
	}

	prompt := BuildSchedulePrompt(allowed, req, []string{"MysteryCafe"})

	allowedJSON, err := json.Marshal(allowed)
	require.NoError(t, err)
	assert.Contains(t, prompt, string(allowedJSON))

	assert.Contains(t, prompt, "Suncheon Station")
	assert.Contains(t, prompt, "2025-06-19")
	assert.Contains(t, prompt, "3 day(s)")
	assert.Contains(t, prompt, "MysteryCafe")
}

func TestBuildSchedulePromptDeterministic(t *testing.T) {
	allowed := []PlaceInfo{{Name: "A", Addr: "a"}}
	req := request_models.ScheduleRequest{
		StartDate:      "2025-06-19",
		TripDays:       1,
		DeparturePlace: "Station",
		DepartureTime:  "08:00",
	}

	first := BuildSchedulePrompt(allowed, req, nil)
	second := BuildSchedulePrompt(allowed, req, nil)
	assert.Equal(t, first, second)
}

func TestBuildSchedulePromptAppendsAdditionalPrompt(t *testing.T) {
	req := request_models.ScheduleRequest{
		StartDate:        "2025-06-19",
		TripDays:         1,
		DeparturePlace:   "Station",
		DepartureTime:    "08:00",
		AdditionalPrompt: "  vegetarian restaurants only  ",
	}

	prompt := BuildSchedulePrompt([]PlaceInfo{{Name: "A", Addr: "a"}}, req, nil)

	assert.Contains(t, prompt, "vegetarian restaurants only")
	assert.True(t, strings.HasPrefix(prompt, "[Traveler request"))
}

func TestBuildSchedulePromptOmitsEmptyAdditionalPrompt(t *testing.T) {
	req := request_models.ScheduleRequest{
		StartDate:      "2025-06-19",
		TripDays:       1,
		DeparturePlace: "Station",
		DepartureTime:  "08:00",
	}

	prompt := BuildSchedulePrompt([]PlaceInfo{{Name: "A", Addr: "a"}}, req, nil)
	assert.NotContains(t, prompt, "[Traveler request")
}
