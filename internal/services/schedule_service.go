package services

import (
	"context"
	"log"
	"strings"
	"time"

	"namdo/internal/models/request_models"
	"namdo/internal/models/response_models"
	"namdo/pkg/utils"
)

type ScheduleServiceInterface interface {
	// GenerateItinerary runs the full pipeline for an explicit request.
	GenerateItinerary(ctx context.Context, req request_models.ScheduleRequest) (*response_models.ItineraryResponse, error)
	// GenerateFromFavorites uses the caller's entire saved favorite set as
	// the selected places.
	GenerateFromFavorites(ctx context.Context, accountID string, req request_models.ScheduleRequest) (*response_models.ItineraryResponse, error)
}

type ScheduleService struct {
	catalog   CatalogStoreInterface
	favorites FavoriteServiceInterface
	generator utils.GenerationClientInterface
}

func NewScheduleService(
	catalog CatalogStoreInterface,
	favorites FavoriteServiceInterface,
	generator utils.GenerationClientInterface,
) ScheduleServiceInterface {
	return &ScheduleService{
		catalog:   catalog,
		favorites: favorites,
		generator: generator,
	}
}

func (s *ScheduleService) GenerateFromFavorites(ctx context.Context, accountID string, req request_models.ScheduleRequest) (*response_models.ItineraryResponse, error) {
	names, err := s.favorites.FavoriteNames(ctx, accountID)
	if err != nil {
		return nil, err
	}
	req.Places = names
	return s.GenerateItinerary(ctx, req)
}

func (s *ScheduleService) GenerateItinerary(ctx context.Context, req request_models.ScheduleRequest) (*response_models.ItineraryResponse, error) {
	if err := validateScheduleRequest(req); err != nil {
		return nil, err
	}

	if s.catalog.Err() != nil {
		log.Printf("Catalog unavailable: %v", s.catalog.Err())
		return nil, utils.ErrCatalogUnavailable
	}

	allowed, synthesized := resolveAllowedPlaces(s.catalog, req.Places, req.DeparturePlace)
	if len(allowed) == 0 {
		return nil, utils.ErrEmptyAllowedSet
	}
	if len(synthesized) > 0 {
		log.Printf("Synthesized placeholder entries for %d favorite(s) absent from the catalog", len(synthesized))
	}

	favoriteNames := distinctNames(req.Places)
	prompt := BuildSchedulePrompt(allowed, req, favoriteNames)

	raw, err := s.generator.CompleteSchedule(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseScheduleJSON(raw)
	if err != nil {
		return nil, err
	}

	favoriteSet := make(map[string]bool, len(favoriteNames))
	for _, name := range favoriteNames {
		favoriteSet[name] = true
	}

	filtered, violations := FilterSchedule(parsed, allowed, req.DeparturePlace, favoriteSet)
	if len(violations) > 0 {
		log.Printf("Validator dropped %d activit(ies) with unlisted places", len(violations))
	}

	resp := &response_models.ItineraryResponse{
		Days: AssembleItinerary(filtered),
	}
	for _, v := range violations {
		resp.Dropped = append(resp.Dropped, response_models.DroppedActivityResponse{
			Date:  v.Date,
			Place: v.Place,
			Addr:  v.Addr,
		})
	}

	return resp, nil
}

// resolveAllowedPlaces builds the per-request allowed set: the full catalog
// plus one entry per distinct requested favorite name. A name absent from
// the catalog gets a synthesized entry whose address is the departure place,
// so the prompt always has some address context for it. Returns the allowed
// set and the synthesized names.
func resolveAllowedPlaces(catalog CatalogStoreInterface, favoriteNames []string, departurePlace string) ([]PlaceInfo, []string) {
	allowed := make([]PlaceInfo, 0, len(catalog.All())+len(favoriteNames))
	allowed = append(allowed, catalog.All()...)

	var synthesized []string
	for _, name := range distinctNames(favoriteNames) {
		if _, ok := catalog.Lookup(name); ok {
			continue
		}
		allowed = append(allowed, PlaceInfo{Name: name, Addr: departurePlace})
		synthesized = append(synthesized, name)
	}

	return allowed, synthesized
}

func distinctNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func validateScheduleRequest(req request_models.ScheduleRequest) error {
	if req.TripDays < 1 {
		return utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.DeparturePlace) == "" {
		return utils.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		return utils.ErrInvalidInput
	}
	return nil
}
