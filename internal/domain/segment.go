package domain

// Segment is one atomic stretch of route geometry with fixed distance and
// duration, as returned by the directions provider. Segments are immutable
// and ordered in itinerary order along the route.
type Segment struct {
	DistanceMeters  int
	DurationSeconds int
	Start           Coordinates
	End             Coordinates
}

// Route is the normalized form of a provider-returned route: an ordered
// segment sequence plus aggregate metrics. It is shared read-only input to
// all simulators and contains no side effects.
type Route struct {
	Origin               string
	Destination          string
	Segments             []Segment
	TotalDistanceMeters  int
	TotalDurationSeconds int
}

// NewRoute builds a Route from an ordered segment sequence, computing the
// aggregate distance and duration once.
func NewRoute(origin, destination string, segments []Segment) *Route {
	r := &Route{
		Origin:      origin,
		Destination: destination,
		Segments:    segments,
	}
	for _, s := range segments {
		r.TotalDistanceMeters += s.DistanceMeters
		r.TotalDurationSeconds += s.DurationSeconds
	}
	return r
}

// Path returns the ordered polyline of segment boundaries: every segment
// start plus the final segment end.
func (r *Route) Path() []Coordinates {
	if len(r.Segments) == 0 {
		return nil
	}
	path := make([]Coordinates, 0, len(r.Segments)+1)
	for _, s := range r.Segments {
		path = append(path, s.Start)
	}
	path = append(path, r.Segments[len(r.Segments)-1].End)
	return path
}
