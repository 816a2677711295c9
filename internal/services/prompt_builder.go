package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"namdo/internal/models/request_models"
)

// BuildSchedulePrompt renders the instruction set sent to the generative
// service. Pure function: no I/O, inputs are not mutated, identical inputs
// produce identical output. The allowed list is embedded verbatim as JSON so
// the model is not asked to rely on memorized knowledge.
func BuildSchedulePrompt(allowed []PlaceInfo, req request_models.ScheduleRequest, favoriteNames []string) string {
	allowedJSON, _ := json.Marshal(allowed)

	var b strings.Builder

	if strings.TrimSpace(req.AdditionalPrompt) != "" {
		b.WriteString("[Traveler request - must be honored]\n")
		b.WriteString("- " + strings.TrimSpace(req.AdditionalPrompt) + "\n\n")
	}

	b.WriteString("You are a travel planner for the Jeonnam region. ")
	if len(favoriteNames) > 0 {
		b.WriteString(fmt.Sprintf(
			"The traveler has marked these places as favorites: %s. Every favorite must appear in the schedule. ",
			strings.Join(favoriteNames, ", ")))
	} else {
		b.WriteString("The traveler selected no favorite places; draw freely from the available place list. ")
	}
	b.WriteString("Build a trip schedule for the requested period using the 'available place list' below, in JSON.\n\n")

	b.WriteString("--- Mandatory rules, highest priority ---\n")
	b.WriteString("1. Never put a place in the 'place' field that is not in the available place list.\n")
	b.WriteString(fmt.Sprintf("   The only exception is the departure place (%s), which may appear as the start, end, or a transit point of a day.\n", req.DeparturePlace))
	b.WriteString("2. Each entry's 'place' and 'addr' must exactly match an entry in the available place list. No variations, no mixing.\n")
	b.WriteString("3. Combine the listed places in a balanced, varied way. Avoid repeating the same place within a day; reusing a place across days needs a stated reason such as lodging.\n\n")

	b.WriteString("--- Trip information ---\n")
	b.WriteString(fmt.Sprintf("Start date: %s\n", req.StartDate))
	b.WriteString(fmt.Sprintf("Duration: %d day(s)\n", req.TripDays))
	b.WriteString(fmt.Sprintf("Departure place: %s\n", req.DeparturePlace))
	b.WriteString(fmt.Sprintf("Departure time: %s\n\n", req.DepartureTime))

	b.WriteString("--- Available place list (JSON) ---\n")
	b.Write(allowedJSON)
	b.WriteString("\n\n")

	b.WriteString("--- Schedule composition rules ---\n")
	b.WriteString("1. Key the schedule by date, \"YYYY-MM-DD\".\n")
	b.WriteString("2. Each date maps to a JSON array of {\"time\":\"HH:MM\", \"place\":\"place name\", \"activity\":\"what to do\", \"addr\":\"exact address\"}.\n")
	b.WriteString("3. Plan 6 to 9 activities per day, clustered around 1-3 physically reachable primary places chosen from the list, with concrete activities at or around each.\n")
	b.WriteString("4. Sort activities within a day by time.\n")
	b.WriteString("5. Keep routes efficient; minimize travel time and distance.\n\n")

	b.WriteString("--- Output format ---\n")
	b.WriteString("Output JSON only: a single object {\"YYYY-MM-DD\": [ ... ], ...}. No prose, no markdown, no comments.\n")
	b.WriteString("If a listed place has a missing or \"undefined\" address, skip it or substitute another valid place from the list.\n")

	return b.String()
}
