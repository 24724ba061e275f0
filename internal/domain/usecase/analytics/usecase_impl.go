package analytics

import (
	"errors"
	"fmt"
	"math"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/pkg/util/numberutils"
)

// ErrNoForecast is returned when no forecast is displayed yet
var ErrNoForecast = errors.New("no forecast loaded")

// entriesPerDay is the number of 3-hour steps in a day
const entriesPerDay = 8

type analyticsUseCase struct {
	store *state.Store
}

func NewAnalyticsUseCase(store *state.Store) UseCase {
	return &analyticsUseCase{store: store}
}

func (uc *analyticsUseCase) Current() (*Analytics, error) {
	current := uc.store.State()
	if current.Forecast == nil || len(current.Forecast.Entries) == 0 {
		return nil, ErrNoForecast
	}
	analytics := Build(*current.Forecast, current.Preferences.Unit)
	return &analytics, nil
}

// Build derives the hourly series from the first 8 entries and the daily series from every 8th entry.
// Times are shown in the city's local time.
func Build(series entity.ForecastSeries, unit entity.Unit) Analytics {
	zone := time.FixedZone(series.City, series.TimezoneOffset)

	hourly := make([]HourlyPoint, 0, entity.DisplayWindow)
	for _, entry := range series.Display() {
		hourly = append(hourly, HourlyPoint{
			Time:      fmt.Sprintf("%02d:00", entry.Timestamp.In(zone).Hour()),
			Temp:      entity.CounterTemperature(entry.Temperature.Current, unit),
			FeelsLike: entity.CounterTemperature(entry.Temperature.FeelsLike, unit),
			Humidity:  entry.Humidity,
			Pressure:  entry.Pressure,
		})
	}

	daily := make([]DailyPoint, 0, len(series.Entries)/entriesPerDay+1)
	for i := 0; i < len(series.Entries); i += entriesPerDay {
		entry := series.Entries[i]
		daily = append(daily, DailyPoint{
			Day:           entry.Timestamp.In(zone).Weekday().String()[:3],
			High:          entity.CounterTemperature(entry.Temperature.Max, unit),
			Low:           entity.CounterTemperature(entry.Temperature.Min, unit),
			Precipitation: int(math.Round(entry.PrecipitationProbability * 100)),
		})
	}

	return Analytics{
		City:    series.City,
		Unit:    unit,
		Hourly:  hourly,
		Daily:   daily,
		Summary: summarize(hourly, len(series.Entries)),
	}
}

func summarize(hourly []HourlyPoint, dataPoints int) Summary {
	summary := Summary{DataPoints: dataPoints}
	if len(hourly) == 0 {
		return summary
	}

	total := 0
	summary.MinPressure = hourly[0].Pressure
	for _, point := range hourly {
		total += point.Temp
		summary.MaxHumidity = max(summary.MaxHumidity, point.Humidity)
		summary.MinPressure = min(summary.MinPressure, point.Pressure)
		summary.MaxPressure = max(summary.MaxPressure, point.Pressure)
	}
	summary.AverageTemp = numberutils.Round(float64(total)/float64(len(hourly)), 1)
	return summary
}
