package nearby

import (
	"context"
	"fmt"
	"testing"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api/apitest"
	"weather-dashboard/internal/domain/model/external"
)

var origin = entity.Coordinates{Lat: -6.2, Lon: 106.8}

func TestGridProbesOffsetsInOrder(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	discoverer := NewGridDiscoverer(gateway)

	cities, err := discoverer.Discover(context.Background(), origin, "ID")
	if err != nil || len(cities) != 0 {
		t.Fatalf("expected empty result, got %v err=%v", cities, err)
	}

	calls := gateway.Calls("reverse")
	if len(calls) != len(gridOffsets) {
		t.Fatalf("expected %d probes, got %d", len(gridOffsets), len(calls))
	}
	if calls[0] != origin.String() || calls[1] != origin.Offset(3, 0).String() || calls[8] != origin.Offset(-2, -2).String() {
		t.Errorf("unexpected probe order %v", calls)
	}
}

func TestGridFiltersCountryAndDeduplicates(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	gateway.AddReverse(origin,
		external.GeocodingResultDTO{Name: "Jakarta", Country: "ID", Lat: -6.2, Lon: 106.8},
		external.GeocodingResultDTO{Name: "Johor", Country: "MY"},
	)
	gateway.AddReverse(origin.Offset(3, 0),
		external.GeocodingResultDTO{Name: "Jakarta", Country: "ID", State: "Other"},
		external.GeocodingResultDTO{Name: "Lampung", Country: "ID", State: "Lampung"},
	)

	cities, _ := NewGridDiscoverer(gateway).Discover(context.Background(), origin, "ID")
	if len(cities) != 2 || cities[0].Name != "Jakarta" || cities[1].Name != "Lampung" {
		t.Fatalf("unexpected cities %+v", cities)
	}
	if cities[0].State != "" {
		t.Error("expected the first Jakarta to win")
	}
}

func TestGridStopsAtTenCities(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	for i, offset := range gridOffsets[:3] {
		var results []external.GeocodingResultDTO
		for j := 0; j < 5; j++ {
			results = append(results, external.GeocodingResultDTO{Name: fmt.Sprintf("City %d-%d", i, j), Country: "ID"})
		}
		gateway.AddReverse(origin.Offset(offset.Lat, offset.Lon), results...)
	}

	cities, _ := NewGridDiscoverer(gateway).Discover(context.Background(), origin, "ID")
	if len(cities) != MaxCities {
		t.Errorf("expected %d cities, got %d", MaxCities, len(cities))
	}
	if probes := len(gateway.Calls("reverse")); probes != 2 {
		t.Errorf("expected discovery to stop after 2 probes, got %d", probes)
	}
}

func TestStaticTable(t *testing.T) {
	discoverer := NewStaticDiscoverer()

	cities, _ := discoverer.Discover(context.Background(), origin, "id")
	if len(cities) == 0 || len(cities) > MaxCities || cities[0].Name != "Jakarta" {
		t.Fatalf("unexpected Indonesian cities %+v", cities)
	}
	for _, city := range cities {
		if city.Country != "ID" || !city.Coordinates.Valid() {
			t.Errorf("unexpected city %+v", city)
		}
	}

	cities[0].Name = "changed"
	again, _ := discoverer.Discover(context.Background(), origin, "ID")
	if again[0].Name != "Jakarta" {
		t.Error("callers must not be able to modify the table")
	}

	if unknown, _ := discoverer.Discover(context.Background(), origin, "XX"); len(unknown) != 0 {
		t.Errorf("expected no cities for an unknown country, got %v", unknown)
	}
}

func TestEveryCapitalHasATableEntry(t *testing.T) {
	for code, capital := range capitals {
		cities, ok := majorCities[code]
		if !ok || cities[0].Name != capital {
			t.Errorf("%s: expected %s first in the table", code, capital)
		}
		if CountryName(code) == code {
			t.Errorf("%s: missing country name", code)
		}
	}
	if CountryName("XX") != "XX" {
		t.Error("unknown codes should be returned as is")
	}
}

func TestCapitalSearchesAroundCapital(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	paris := entity.Coordinates{Lat: 48.8566, Lon: 2.3522}
	gateway.AddCity("Paris,FR", "FR", paris, 15, 0)
	gateway.AddReverse(paris, external.GeocodingResultDTO{Name: "Paris", Country: "FR", Lat: paris.Lat, Lon: paris.Lon})

	cities, _ := NewCapitalDiscoverer(gateway).Discover(context.Background(), origin, "FR")
	if len(cities) != 1 || cities[0].Name != "Paris" {
		t.Fatalf("unexpected cities %+v", cities)
	}
	if direct := gateway.Calls("direct"); len(direct) != 1 || direct[0] != "Paris,FR" {
		t.Errorf("unexpected direct geocoding calls %v", direct)
	}
}

func TestCapitalFallsBackToOrigin(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	gateway.AddReverse(origin, external.GeocodingResultDTO{Name: "Somewhere", Country: "XX"})

	cities, _ := NewCapitalDiscoverer(gateway).Discover(context.Background(), origin, "XX")
	if len(cities) != 1 || cities[0].Name != "Somewhere" {
		t.Errorf("unexpected cities %+v", cities)
	}
}

func TestNewDiscoverer(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	for name, want := range map[string]Strategy{"": StrategyGrid, "GRID": StrategyGrid, "static": StrategyStatic, "capital": StrategyCapital} {
		discoverer, err := NewDiscoverer(name, gateway)
		if err != nil || discoverer.Strategy() != want {
			t.Errorf("%q: expected %s, got %v err=%v", name, want, discoverer, err)
		}
	}
	if _, err := NewDiscoverer("random", gateway); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}
