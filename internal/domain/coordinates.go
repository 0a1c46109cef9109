package domain

// Immutable geographic coordinate in decimal degrees (WGS 84).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Equal reports whether both components match exactly.
func (c Coordinate) Equal(o Coordinate) bool { return c.Lat == o.Lat && c.Lon == o.Lon }

// GeoEntity is any record that can be located on the map.
// A nil position means the record carries no usable coordinate.
type GeoEntity interface {
	Position() *Coordinate
}
