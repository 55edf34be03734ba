package kernel

import (
	"fmt"

	"dispatchops/internal/pkg/errs"
)

// Route is a value object describing a transfer from a pickup point to a
// drop-off point. Both endpoints are free-text location names as entered
// by dispatchers ("JFK Airport", "SoHo Hotel").
//
// The zero value is invalid and must be constructed through NewRoute.
type Route struct { //nolint:recvcheck //using for validation
	origin      string
	destination string
}

// NewRoute creates a Route. Both endpoints must be non-empty.
func NewRoute(origin, destination string) (Route, error) {
	route := Route{}

	if err := route.setOrigin(origin); err != nil {
		return Route{}, err
	}
	if err := route.setDestination(destination); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Origin returns the pickup point.
func (r Route) Origin() string {
	return r.origin
}

// Destination returns the drop-off point.
func (r Route) Destination() string {
	return r.destination
}

// IsEqual compares two routes by both endpoints.
func (r Route) IsEqual(other Route) bool {
	return r.origin == other.origin && r.destination == other.destination
}

// String renders the route as "origin -> destination".
func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.origin, r.destination)
}

// Validate checks that the Route was properly constructed.
func (r Route) Validate() error {
	if r.origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if r.destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	return nil
}

func (r *Route) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	r.origin = origin
	return nil
}

func (r *Route) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	r.destination = destination
	return nil
}
