package entity

import "fmt"

// Location is a geographic coordinate pair captured at save time.
// A note either carries a complete location or none at all; the absence
// of a location is represented by a nil *Location, never by partially
// populated coordinates.
type Location struct {
	Latitude  float64 // Latitude in decimal degrees, [-90, 90].
	Longitude float64 // Longitude in decimal degrees, [-180, 180].
}

// NewLocation returns a Location for the given coordinate pair.
func NewLocation(latitude, longitude float64) *Location {
	return &Location{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// GeoURI renders the location as an RFC 5870 geo URI, e.g. "geo:37.330000,-122.000000".
func (l *Location) GeoURI() string {
	return fmt.Sprintf("geo:%f,%f", l.Latitude, l.Longitude)
}

// String implements fmt.Stringer for display formatting.
func (l *Location) String() string {
	return fmt.Sprintf("%.6f, %.6f", l.Latitude, l.Longitude)
}
