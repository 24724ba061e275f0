package entity

import (
	"fmt"
	"strings"

	"weather-dashboard/pkg/util/numberutils"
)

// Unit is the temperature unit used for display
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// ParseUnit accepts C/F (any case) and the provider names metric/imperial
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "c", "celsius", "metric":
		return Celsius, nil
	case "f", "fahrenheit", "imperial":
		return Fahrenheit, nil
	}
	return "", fmt.Errorf("unsupported unit %q", value)
}

// ToFahrenheit converts Celsius to Fahrenheit
func ToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// ToCelsius converts Fahrenheit to Celsius
func ToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// ConvertTemperature converts a Celsius value to unit without rounding
func ConvertTemperature(celsius float64, unit Unit) float64 {
	if unit == Fahrenheit {
		return ToFahrenheit(celsius)
	}
	return celsius
}

// DisplayTemperature converts and rounds to one decimal, as shown on cards
func DisplayTemperature(celsius float64, unit Unit) float64 {
	return numberutils.Round(ConvertTemperature(celsius, unit), 1)
}

// CounterTemperature converts and rounds to the nearest integer, as shown on counters and charts
func CounterTemperature(celsius float64, unit Unit) int {
	return int(numberutils.Round(ConvertTemperature(celsius, unit), 0))
}
