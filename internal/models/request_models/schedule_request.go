package request_models

// ScheduleRequest carries the trip parameters for one generation call.
// Places holds the favorite names the traveler selected; any of them may be
// absent from the catalog.
type ScheduleRequest struct {
	Places           []string `json:"places"`
	StartDate        string   `json:"start_date"`
	TripDays         int      `json:"trip_days"`
	DeparturePlace   string   `json:"departure_place"`
	DepartureTime    string   `json:"departure_time"`
	AdditionalPrompt string   `json:"additional_prompt"`
}
