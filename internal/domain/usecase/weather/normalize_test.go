package weather

import (
	"testing"

	"weather-dashboard/internal/domain/model/external"
)

func TestToForecastKeepsProviderOrder(t *testing.T) {
	response := &external.ForecastResponse{
		City: external.ForecastCityDTO{Name: "Lima", Country: "PE"},
		List: []external.ForecastItemDTO{
			{Dt: 300, DtTxt: "c", Main: external.MainDTO{Temp: 3}},
			{Dt: 100, DtTxt: "a", Main: external.MainDTO{Temp: 1}},
			{Dt: 200, Main: external.MainDTO{Temp: 2}, Pop: 0.4},
		},
	}

	series := ToForecast(response)
	if len(series.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(series.Entries))
	}
	if series.Entries[0].Temperature.Current != 3 || series.Entries[1].Label != "a" {
		t.Errorf("expected provider order, got %+v", series.Entries)
	}
	if series.Entries[2].Label == "" || series.Entries[2].PrecipitationProbability != 0.4 {
		t.Errorf("unexpected third entry %+v", series.Entries[2])
	}
}

func TestToAirQualityHandlesEmptyList(t *testing.T) {
	if ToAirQuality(&external.AirPollutionResponse{}) != nil {
		t.Error("expected nil air quality for an empty list")
	}
	if ToAirQuality(nil) != nil {
		t.Error("expected nil air quality for a nil response")
	}
}

func TestToSnapshotWithoutConditions(t *testing.T) {
	snapshot := ToSnapshot(&external.CurrentWeatherResponse{Name: "Quito", Wind: external.WindDTO{Deg: 225}})
	if snapshot.Condition.Main != "" || snapshot.Wind.Direction != "SW" {
		t.Errorf("unexpected snapshot %+v", snapshot)
	}
	if !snapshot.Sunrise.IsZero() {
		t.Error("expected zero sunrise when the provider omits it")
	}
}
