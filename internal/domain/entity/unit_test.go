package entity

import (
	"math"
	"testing"
)

func TestToFahrenheitMatchesFormula(t *testing.T) {
	for i := -900; i <= 600; i++ {
		c := float64(i) / 10
		got := ToFahrenheit(c)
		want := c*9/5 + 32
		if math.Abs(got-want) > 0.05 {
			t.Fatalf("ToFahrenheit(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestToFahrenheitIsDeterministic(t *testing.T) {
	for _, c := range []float64{-89.2, -40, 0, 21.7, 56.7} {
		if ToFahrenheit(c) != ToFahrenheit(c) {
			t.Fatalf("ToFahrenheit(%v) is not deterministic", c)
		}
	}
	if got := ToFahrenheit(-40); got != -40 {
		t.Errorf("expected -40, got %v", got)
	}
	if got := ToFahrenheit(100); got != 212 {
		t.Errorf("expected 212, got %v", got)
	}
}

func TestDisplayRoundTripWithinTolerance(t *testing.T) {
	for i := -900; i <= 600; i++ {
		c := float64(i) / 10
		shown := DisplayTemperature(c, Fahrenheit)
		back := ToCelsius(shown)
		if math.Abs(back-c) > 0.1 {
			t.Fatalf("round trip of %v gave %v (shown %v)", c, back, shown)
		}
	}
}

func TestDisplayAndCounterRounding(t *testing.T) {
	if got := DisplayTemperature(28.46, Celsius); got != 28.5 {
		t.Errorf("expected 28.5, got %v", got)
	}
	if got := DisplayTemperature(30, Fahrenheit); got != 86 {
		t.Errorf("expected 86, got %v", got)
	}
	if got := CounterTemperature(27.5, Celsius); got != 28 {
		t.Errorf("expected 28, got %d", got)
	}
	if got := CounterTemperature(27.4, Fahrenheit); got != 81 {
		t.Errorf("expected 81, got %d", got)
	}
}

func TestParseUnit(t *testing.T) {
	for input, want := range map[string]Unit{"C": Celsius, "f": Fahrenheit, "metric": Celsius, " Imperial ": Fahrenheit} {
		got, err := ParseUnit(input)
		if err != nil {
			t.Fatalf("ParseUnit(%q) failed: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseUnit(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := ParseUnit("K"); err == nil {
		t.Error("expected error for kelvin")
	}
}
