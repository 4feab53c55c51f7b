package icaldur

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidGeo is returned when a GEO value is not two semicolon
	// separated floats.
	ErrInvalidGeo = errors.New("invalid GEO value")
)

// Geo is a typed GEO value: latitude and longitude in decimal degrees.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.6
type Geo struct {
	Lat float64
	Lon float64
}

// ParseGeo parses a GEO value of the form "lat;lon".
func ParseGeo(value string) (Geo, error) {
	latStr, lonStr, found := strings.Cut(value, ";")
	if !found {
		return Geo{}, fmt.Errorf("%w: %s", ErrInvalidGeo, value)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return Geo{}, fmt.Errorf("%w: latitude %s", ErrInvalidGeo, latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return Geo{}, fmt.Errorf("%w: longitude %s", ErrInvalidGeo, lonStr)
	}
	return Geo{Lat: lat, Lon: lon}, nil
}
