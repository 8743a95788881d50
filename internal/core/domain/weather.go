package domain

import "encoding/json"

// WeatherSnapshot mirrors the current-weather document of the weather
// provider. A snapshot built by DecodeWeatherSnapshot keeps the provider's
// bytes and marshals back to them, so fields not modelled here survive.
type WeatherSnapshot struct {
	Coord      WeatherCoord       `json:"coord"`
	Weather    []WeatherCondition `json:"weather"`
	Base       string             `json:"base,omitempty"`
	Main       WeatherMain        `json:"main"`
	Visibility int                `json:"visibility"`
	Wind       WeatherWind        `json:"wind"`
	Clouds     WeatherClouds      `json:"clouds"`
	Rain       *Precipitation     `json:"rain,omitempty"`
	Snow       *Precipitation     `json:"snow,omitempty"`
	Dt         int64              `json:"dt"`
	Sys        WeatherSys         `json:"sys"`
	Timezone   int                `json:"timezone"`
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Cod        int                `json:"cod"`

	raw json.RawMessage
}

// DecodeWeatherSnapshot parses a provider document and remembers it verbatim.
func DecodeWeatherSnapshot(data []byte) (*WeatherSnapshot, error) {
	var w WeatherSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	w.raw = append(json.RawMessage(nil), data...)
	return &w, nil
}

func (w WeatherSnapshot) MarshalJSON() ([]byte, error) {
	if len(w.raw) > 0 {
		return w.raw, nil
	}
	type plain WeatherSnapshot
	return json.Marshal(plain(w))
}

type WeatherCoord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WeatherMain struct {
	Temp      float64  `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	Humidity  float64  `json:"humidity"`
	Pressure  float64  `json:"pressure"`
	TempMin   float64  `json:"temp_min"`
	TempMax   float64  `json:"temp_max"`
	SeaLevel  *float64 `json:"sea_level,omitempty"`
	GrndLevel *float64 `json:"grnd_level,omitempty"`
}

type WeatherWind struct {
	Speed float64  `json:"speed"`
	Deg   float64  `json:"deg"`
	Gust  *float64 `json:"gust,omitempty"`
}

type WeatherClouds struct {
	All int `json:"all"`
}

// Precipitation volume in mm for the last one and three hours.
type Precipitation struct {
	OneHour   *float64 `json:"1h,omitempty"`
	ThreeHour *float64 `json:"3h,omitempty"`
}

type WeatherSys struct {
	Type    *int   `json:"type,omitempty"`
	ID      *int64 `json:"id,omitempty"`
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}
