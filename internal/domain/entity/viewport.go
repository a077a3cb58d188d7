package entity

// Viewport is the geographic region the map should display, expressed as a
// center coordinate plus the degree span visible on each axis. It is derived
// from the currently located notes and has no identity or lifecycle of its own.
type Viewport struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}
