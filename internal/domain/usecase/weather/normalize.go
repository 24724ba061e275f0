package weather

import (
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
)

// ToSnapshot converts the provider's current weather payload
func ToSnapshot(response *external.CurrentWeatherResponse) entity.WeatherSnapshot {
	return entity.WeatherSnapshot{
		CityID:      response.ID,
		City:        response.Name,
		Country:     response.Sys.Country,
		Coordinates: entity.Coordinates{Lat: response.Coord.Lat, Lon: response.Coord.Lon},
		Timestamp:   unixTime(response.Dt),
		Temperature: toTemperature(response.Main),
		Humidity:    response.Main.Humidity,
		Pressure:    response.Main.Pressure,
		Visibility:  response.Visibility,
		Wind:        toWind(response.Wind),
		Cloudiness:  response.Clouds.All,
		Condition:   toCondition(response.Weather),
		Sunrise:     unixTime(response.Sys.Sunrise),
		Sunset:      unixTime(response.Sys.Sunset),

		TimezoneOffset: response.Timezone,
	}
}

// ToForecast converts the provider's 3-hour forecast payload, keeping the provider order
func ToForecast(response *external.ForecastResponse) entity.ForecastSeries {
	series := entity.ForecastSeries{
		City:           response.City.Name,
		Country:        response.City.Country,
		Coordinates:    entity.Coordinates{Lat: response.City.Coord.Lat, Lon: response.City.Coord.Lon},
		TimezoneOffset: response.City.Timezone,
		Entries:        make([]entity.ForecastEntry, 0, len(response.List)),
	}

	for _, item := range response.List {
		timestamp := unixTime(item.Dt)
		label := item.DtTxt
		if label == "" {
			label = timestamp.Format(time.DateTime)
		}

		series.Entries = append(series.Entries, entity.ForecastEntry{
			Timestamp:                timestamp,
			Label:                    label,
			Temperature:              toTemperature(item.Main),
			Humidity:                 item.Main.Humidity,
			Pressure:                 item.Main.Pressure,
			Wind:                     toWind(item.Wind),
			Cloudiness:               item.Clouds.All,
			Condition:                toCondition(item.Weather),
			PrecipitationProbability: item.Pop,
		})
	}

	return series
}

// ToAirQuality converts the first air pollution reading, or nil when there is none
func ToAirQuality(response *external.AirPollutionResponse) *entity.AirQuality {
	if response == nil || len(response.List) == 0 {
		return nil
	}

	item := response.List[0]
	return &entity.AirQuality{
		Index: item.Main.AQI,
		Label: entity.AirQualityLabel(item.Main.AQI),
		Components: entity.AirQualityComponents{
			CO:   item.Components["co"],
			NO:   item.Components["no"],
			NO2:  item.Components["no2"],
			O3:   item.Components["o3"],
			SO2:  item.Components["so2"],
			PM25: item.Components["pm2_5"],
			PM10: item.Components["pm10"],
			NH3:  item.Components["nh3"],
		},
		Timestamp: unixTime(item.Dt),
	}
}

func toTemperature(main external.MainDTO) entity.Temperature {
	return entity.Temperature{
		Current:   main.Temp,
		Min:       main.TempMin,
		Max:       main.TempMax,
		FeelsLike: main.FeelsLike,
	}
}

func toWind(wind external.WindDTO) entity.Wind {
	return entity.Wind{
		Speed:     wind.Speed,
		Degrees:   wind.Deg,
		Gust:      wind.Gust,
		Direction: entity.CompassDirection(wind.Deg),
	}
}

// toCondition takes the primary condition, the first of the list
func toCondition(conditions []external.ConditionDTO) entity.Condition {
	if len(conditions) == 0 {
		return entity.Condition{}
	}
	c := conditions[0]
	return entity.Condition{ID: c.ID, Main: c.Main, Description: c.Description, Icon: c.Icon}
}

func unixTime(seconds int64) time.Time {
	if seconds == 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}
