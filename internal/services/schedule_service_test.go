package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namdo/internal/models/request_models"
	"namdo/internal/models/response_models"
	"namdo/pkg/utils"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGenerator) CompleteSchedule(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

type stubFavorites struct {
	FavoriteServiceInterface
	names []string
	err   error
}

func (s *stubFavorites) FavoriteNames(_ context.Context, _ string) ([]string, error) {
	return s.names, s.err
}

func validRequest(places ...string) request_models.ScheduleRequest {
	return request_models.ScheduleRequest{
		Places:         places,
		StartDate:      "2025-06-19",
		TripDays:       2,
		DeparturePlace: "Suncheon Station",
		DepartureTime:  "09:00",
	}
}

func TestResolveAllowedPlaces(t *testing.T) {
	catalog := NewCatalogStore([]PlaceInfo{{Name: "Juknokwon", Addr: "X"}})

	t.Run("matched favorite is not duplicated", func(t *testing.T) {
		allowed, synthesized := resolveAllowedPlaces(catalog, []string{"Juknokwon"}, "Suncheon Station")
		assert.Len(t, allowed, 1)
		assert.Empty(t, synthesized)
	})

	t.Run("unmatched favorite is synthesized with departure address", func(t *testing.T) {
		allowed, synthesized := resolveAllowedPlaces(catalog, []string{"MysteryCafe"}, "Suncheon Station")
		require.Len(t, allowed, 2)
		assert.Contains(t, allowed, PlaceInfo{Name: "MysteryCafe", Addr: "Suncheon Station"})
		assert.Equal(t, []string{"MysteryCafe"}, synthesized)
	})

	t.Run("requesting the same name twice yields one entry", func(t *testing.T) {
		allowed, _ := resolveAllowedPlaces(catalog, []string{"MysteryCafe", "MysteryCafe"}, "Suncheon Station")
		count := 0
		for _, p := range allowed {
			if p.Name == "MysteryCafe" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("no favorites yields the catalog", func(t *testing.T) {
		allowed, synthesized := resolveAllowedPlaces(catalog, nil, "Suncheon Station")
		assert.Equal(t, catalog.All(), allowed)
		assert.Empty(t, synthesized)
	})
}

func TestGenerateItineraryFullPipeline(t *testing.T) {
	catalog := NewCatalogStore([]PlaceInfo{
		{Name: "Juknokwon", Addr: "X"},
		{Name: "Suncheonman Bay Wetland Reserve", Addr: "Y"},
	})

	// Fenced reply with one hallucinated row and one out-of-order day key.
	gen := &stubGenerator{reply: "```json\n" + `{
  "2025-06-20": [
    {"time":"10:00","place":"Suncheonman Bay Wetland Reserve","activity":"Reed field walk","addr":"Y"}
  ],
  "2025-06-19": [
    {"time":"09:00","place":"Suncheon Station","activity":"Depart","addr":""},
    {"time":"10:30","place":"Juknokwon","activity":"Bamboo grove","addr":"X"},
    {"time":"13:00","place":"UFO Museum","activity":"Visit","addr":"Z"}
  ]
}` + "\n```"}

	svc := NewScheduleService(catalog, &stubFavorites{}, gen)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest("Juknokwon"))
	require.NoError(t, err)

	require.Len(t, itinerary.Days, 2)
	assert.Equal(t, "2025-06-19", itinerary.Days[0].Date)
	assert.Equal(t, "2025-06-20", itinerary.Days[1].Date)

	require.Len(t, itinerary.Days[0].Activities, 2)
	assert.Equal(t, "Suncheon Station", itinerary.Days[0].Activities[0].Place)
	assert.Equal(t, "Juknokwon", itinerary.Days[0].Activities[1].Place)

	require.Len(t, itinerary.Dropped, 1)
	assert.Equal(t, response_models.DroppedActivityResponse{Date: "2025-06-19", Place: "UFO Museum", Addr: "Z"}, itinerary.Dropped[0])

	// Invariant: every returned activity traces to an allowed source.
	for _, day := range itinerary.Days {
		for _, act := range day.Activities {
			fromCatalog := false
			if p, ok := catalog.Lookup(act.Place); ok && p.Addr == act.Addr {
				fromCatalog = true
			}
			assert.True(t, act.Place == "Suncheon Station" || act.Place == "Juknokwon" || fromCatalog,
				"activity %q not traceable to an allowed source", act.Place)
		}
	}

	// The prompt embedded the favorite by name.
	assert.Contains(t, gen.prompt, "Juknokwon")
}

func TestGenerateItineraryCatalogUnavailable(t *testing.T) {
	store := NewCatalogStoreFromFile("testdata/does_not_exist.json")
	svc := NewScheduleService(store, &stubFavorites{}, &stubGenerator{})

	_, err := svc.GenerateItinerary(context.Background(), validRequest("Juknokwon"))
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)
}

func TestGenerateItineraryEmptyAllowedSet(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewScheduleService(NewCatalogStore(nil), &stubFavorites{}, gen)

	_, err := svc.GenerateItinerary(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrEmptyAllowedSet)
	// Rejected before the paid call.
	assert.Empty(t, gen.prompt)
}

func TestGenerateItineraryInvalidInput(t *testing.T) {
	svc := NewScheduleService(NewCatalogStore([]PlaceInfo{{Name: "A", Addr: "a"}}), &stubFavorites{}, &stubGenerator{})

	for name, req := range map[string]request_models.ScheduleRequest{
		"zero days":      {StartDate: "2025-06-19", TripDays: 0, DeparturePlace: "Station"},
		"bad start date": {StartDate: "19-06-2025", TripDays: 1, DeparturePlace: "Station"},
		"no departure":   {StartDate: "2025-06-19", TripDays: 1, DeparturePlace: "  "},
	} {
		_, err := svc.GenerateItinerary(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput, name)
	}
}

func TestGenerateItineraryGenerationErrorPropagates(t *testing.T) {
	transportErr := &utils.GenerationTransportError{Err: errors.New("dial tcp: timeout")}
	svc := NewScheduleService(
		NewCatalogStore([]PlaceInfo{{Name: "A", Addr: "a"}}),
		&stubFavorites{},
		&stubGenerator{err: transportErr},
	)

	_, err := svc.GenerateItinerary(context.Background(), validRequest())
	var got *utils.GenerationTransportError
	assert.ErrorAs(t, err, &got)
}

func TestGenerateItineraryMalformedOutput(t *testing.T) {
	svc := NewScheduleService(
		NewCatalogStore([]PlaceInfo{{Name: "A", Addr: "a"}}),
		&stubFavorites{},
		&stubGenerator{reply: "Sorry, I cannot produce a schedule."},
	)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest())
	assert.Nil(t, itinerary)

	var malformed *utils.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Sorry, I cannot produce a schedule.", malformed.Raw)
}

func TestGenerateFromFavorites(t *testing.T) {
	catalog := NewCatalogStore([]PlaceInfo{{Name: "Juknokwon", Addr: "X"}})
	gen := &stubGenerator{reply: `{"2025-06-19": [{"time":"09:00","place":"Juknokwon","activity":"Walk","addr":"X"}]}`}
	svc := NewScheduleService(catalog, &stubFavorites{names: []string{"Juknokwon"}}, gen)

	itinerary, err := svc.GenerateFromFavorites(context.Background(), "account-1", validRequest())
	require.NoError(t, err)
	require.Len(t, itinerary.Days, 1)
	assert.Contains(t, gen.prompt, "Juknokwon")
}
