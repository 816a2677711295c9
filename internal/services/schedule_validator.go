package services

import (
	"log"
	"sort"

	"namdo/internal/models/response_models"
)

// ScheduleViolation records a generated activity that failed whitelist
// validation. Violations are observability data, never fatal.
type ScheduleViolation struct {
	Date  string
	Place string
	Addr  string
}

// FilterSchedule keeps only activities traceable to an allowed source.
// Per activity, evaluated top-down:
//  1. place is a requested favorite name -> kept, address ignored
//  2. place equals the departure place -> kept (transit/anchor exemption)
//  3. (place, addr) exactly matches an allowed entry -> kept
//
// Anything else is dropped and recorded. Relative order of kept activities
// is preserved; dates whose lists become empty are removed.
func FilterSchedule(
	schedule map[string][]GeneratedActivity,
	allowed []PlaceInfo,
	departurePlace string,
	favoriteNames map[string]bool,
) (map[string][]GeneratedActivity, []ScheduleViolation) {

	allowedPairs := make(map[PlaceInfo]struct{}, len(allowed))
	for _, p := range allowed {
		allowedPairs[p] = struct{}{}
	}

	filtered := make(map[string][]GeneratedActivity, len(schedule))
	var violations []ScheduleViolation

	for date, activities := range schedule {
		var kept []GeneratedActivity
		for _, act := range activities {
			switch {
			case favoriteNames[act.Place]:
				kept = append(kept, act)
			case act.Place == departurePlace:
				kept = append(kept, act)
			default:
				if _, ok := allowedPairs[PlaceInfo{Name: act.Place, Addr: act.Addr}]; ok {
					kept = append(kept, act)
				} else {
					log.Printf("Dropping unlisted place '%s' (addr: '%s') on %s", act.Place, act.Addr, date)
					violations = append(violations, ScheduleViolation{Date: date, Place: act.Place, Addr: act.Addr})
				}
			}
		}
		if len(kept) > 0 {
			filtered[date] = kept
		}
	}

	return filtered, violations
}

// AssembleItinerary orders the filtered schedule by ascending date. Map
// iteration order is unspecified, so the sort here is load-bearing.
func AssembleItinerary(filtered map[string][]GeneratedActivity) []response_models.DayPlanResponse {
	dates := make([]string, 0, len(filtered))
	for date := range filtered {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]response_models.DayPlanResponse, 0, len(dates))
	for _, date := range dates {
		activities := make([]response_models.ActivityResponse, 0, len(filtered[date]))
		for _, act := range filtered[date] {
			activities = append(activities, response_models.ActivityResponse{
				Time:     act.Time,
				Place:    act.Place,
				Activity: act.Activity,
				Addr:     act.Addr,
			})
		}
		days = append(days, response_models.DayPlanResponse{Date: date, Activities: activities})
	}

	return days
}
