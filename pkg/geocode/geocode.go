package geocode

import "errors"

// ErrNotFound means the address could not be resolved to coordinates.
var ErrNotFound = errors.New("geocode: address not found")

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Components struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type Result struct {
	Coordinates      Coordinates `json:"coordinates"`
	FormattedAddress string      `json:"formattedAddress"`
	Components       Components  `json:"components"`
}

// Geocoder resolves a free-text address. The mock implementation is a
// development stand-in; swap in a real provider for production.
type Geocoder interface {
	Geocode(address string) (*Result, error)
}
