package board

import (
	"fmt"
	"strings"
)

// ─── Planetary conditions ───────────────────────────────────────────────────

type Light int

const (
	LightDay Light = iota
	LightDusk
	LightFullMoon
	LightGlare
	LightMoonless
	LightSolarFlare
	LightPitchBlack
)

var lightNames = []string{"day", "dusk", "full moon", "glare", "moonless", "solar flare", "pitch black"}

func (l Light) String() string { return enumName(lightNames, int(l)) }

// Dark reports night conditions where movement is done blind.
func (l Light) Dark() bool {
	return l == LightMoonless || l == LightPitchBlack
}

type Weather int

const (
	WeatherClear Weather = iota
	WeatherLightRain
	WeatherModerateRain
	WeatherHeavyRain
	WeatherGustingRain
	WeatherDownpour
	WeatherLightSnow
	WeatherModerateSnow
	WeatherSnowFlurries
	WeatherHeavySnow
	WeatherSleet
	WeatherIceStorm
	WeatherLightHail
	WeatherHeavyHail
)

var weatherNames = []string{
	"clear", "light rain", "moderate rain", "heavy rain", "gusting rain", "downpour",
	"light snow", "moderate snow", "snow flurries", "heavy snow", "sleet", "ice storm",
	"light hail", "heavy hail",
}

func (w Weather) String() string { return enumName(weatherNames, int(w)) }

type Wind int

const (
	WindCalm Wind = iota
	WindLightGale
	WindModerateGale
	WindStrongGale
	WindStorm
	WindTornadoF13
	WindTornadoF4
)

var windNames = []string{"calm", "light gale", "moderate gale", "strong gale", "storm", "tornado f1-f3", "tornado f4"}

func (w Wind) String() string { return enumName(windNames, int(w)) }

type Atmosphere int

const (
	AtmosphereStandard Atmosphere = iota
	AtmosphereThin
	AtmosphereTrace
	AtmosphereVacuum
)

var atmosphereNames = []string{"standard", "thin", "trace", "vacuum"}

func (a Atmosphere) String() string { return enumName(atmosphereNames, int(a)) }

// Conditions are the global battlefield conditions. Space marks an orbital
// map where no ground-based conditions apply.
type Conditions struct {
	Light      Light
	Weather    Weather
	Wind       Wind
	Gravity    float64
	Atmosphere Atmosphere
	Space      bool
}

func DefaultConditions() Conditions {
	return Conditions{Gravity: 1.0}
}

// Vacuum reports whether there is no air to carry weather or wind.
func (c Conditions) Vacuum() bool {
	return c.Space || c.Atmosphere == AtmosphereVacuum
}

func ParseLight(s string) (Light, error) {
	i, err := parseEnum(lightNames, "light", s)
	return Light(i), err
}

func ParseWeather(s string) (Weather, error) {
	i, err := parseEnum(weatherNames, "weather", s)
	return Weather(i), err
}

func ParseWind(s string) (Wind, error) {
	i, err := parseEnum(windNames, "wind", s)
	return Wind(i), err
}

func ParseAtmosphere(s string) (Atmosphere, error) {
	i, err := parseEnum(atmosphereNames, "atmosphere", s)
	return Atmosphere(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(names []string, kind, s string) (int, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	for i, n := range names {
		if strings.NewReplacer("-", " ").Replace(n) == norm {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
