package response_models

// ActivityResponse is one validated schedule row. Place/Addr are guaranteed
// to be the departure place, a requested favorite, or an exact catalog pair.
type ActivityResponse struct {
	Time     string `json:"time"`
	Place    string `json:"place"`
	Activity string `json:"activity"`
	Addr     string `json:"addr"`
}

type DayPlanResponse struct {
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
}

// DroppedActivityResponse records a generated row the validator rejected.
type DroppedActivityResponse struct {
	Date  string `json:"date"`
	Place string `json:"place"`
	Addr  string `json:"addr"`
}

type ItineraryResponse struct {
	Days    []DayPlanResponse         `json:"days"`
	Dropped []DroppedActivityResponse `json:"dropped,omitempty"`
}
