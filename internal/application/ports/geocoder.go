package ports

import (
	"context"
)

type Coordenadas struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a CEP (8 digits after normalization) into coordinates.
// A nil result with a nil error means the CEP could not be resolved by any
// provider.
type Geocoder interface {
	Coordinates(ctx context.Context, cep string) (*Coordenadas, error)
}
