package geo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DMSOptions controls degree/minute/second formatting. Separator is placed
// between the degree, minute, second and hemisphere components.
type DMSOptions struct {
	Separator string
}

var dmsPattern = regexp.MustCompile(`(\d+)°\s*(\d+)'\s*([0-9.]+)"\s*([NSEW])`)

// FormatLatitude renders a latitude in degrees as a DMS string, e.g.
// 38°53'52.34"N.
func FormatLatitude(degrees float64, opts DMSOptions) string {
	if degrees < 0 {
		return formatDMS(-degrees, "S", opts)
	}
	return formatDMS(degrees, "N", opts)
}

// FormatLongitude renders a longitude in degrees as a DMS string, e.g.
// 77°2'11.44"W.
func FormatLongitude(degrees float64, opts DMSOptions) string {
	if degrees < 0 {
		return formatDMS(-degrees, "W", opts)
	}
	return formatDMS(degrees, "E", opts)
}

// FormatDMS renders a coordinate as "latitude longitude" in DMS notation.
func FormatDMS(c Coordinate, opts DMSOptions) string {
	return FormatLatitude(c.Latitude, opts) + " " + FormatLongitude(c.Longitude, opts)
}

func formatDMS(degrees float64, hemisphere string, opts DMSOptions) string {
	d := int(degrees)
	remainder := (degrees - float64(d)) * 60
	m := int(remainder)
	s := (remainder - float64(m)) * 60

	sep := opts.Separator
	return fmt.Sprintf("%d°%s%d'%s%.2f\"%s%s", d, sep, m, sep, s, sep, hemisphere)
}

// ParseDMS parses a coordinate from DMS notation. The string must contain
// exactly one latitude (N/S) and one longitude (E/W) component, in either
// order; any separator characters between components are ignored.
func ParseDMS(s string) (Coordinate, error) {
	matches := dmsPattern.FindAllStringSubmatch(s, -1)
	if len(matches) != 2 {
		return Coordinate{}, fmt.Errorf("expected two DMS components in %q, found %d", s, len(matches))
	}

	var c Coordinate
	var haveLat, haveLon bool
	for _, m := range matches {
		value, err := dmsValue(m)
		if err != nil {
			return Coordinate{}, err
		}
		switch m[4] {
		case "N", "S":
			if haveLat {
				return Coordinate{}, fmt.Errorf("duplicate latitude component in %q", s)
			}
			c.Latitude = value
			haveLat = true
		case "E", "W":
			if haveLon {
				return Coordinate{}, fmt.Errorf("duplicate longitude component in %q", s)
			}
			c.Longitude = value
			haveLon = true
		}
	}
	if !haveLat || !haveLon {
		return Coordinate{}, fmt.Errorf("missing latitude or longitude component in %q", s)
	}
	return c, nil
}

func dmsValue(m []string) (float64, error) {
	d, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds %q: %w", m[3], err)
	}
	if min >= 60 || sec >= 60 {
		return 0, fmt.Errorf("minutes and seconds must be below 60 in %q", strings.Join(m[1:], " "))
	}
	value := float64(d) + float64(min)/60 + sec/3600
	if m[4] == "S" || m[4] == "W" {
		value = -value
	}
	return value, nil
}
