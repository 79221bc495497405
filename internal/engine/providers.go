package engine

import "context"

// LocationProvider yields the device location. A nil result with nil
// error means permission was denied or no fix was available; callers
// treat that as "no location selected", never a crash.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (*Coordinates, error)
}

// ImagePicker resolves an image reference for quest photos. An empty
// result with nil error means the user cancelled.
type ImagePicker interface {
	PickImage(ctx context.Context) (string, error)
}

// LocationFunc adapts a function to a LocationProvider.
type LocationFunc func(ctx context.Context) (*Coordinates, error)

func (f LocationFunc) CurrentLocation(ctx context.Context) (*Coordinates, error) {
	return f(ctx)
}

// ImageFunc adapts a function to an ImagePicker.
type ImageFunc func(ctx context.Context) (string, error)

func (f ImageFunc) PickImage(ctx context.Context) (string, error) {
	return f(ctx)
}
