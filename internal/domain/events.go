package domain

import "time"

// StationInfo describes a fuel station resolved by the places collaborator.
type StationInfo struct {
	Name     string
	Address  string
	Rating   float64
	IsOpen   bool
	MapsURL  string
	Location Coordinates
	// State is the administrative region parsed from the station address,
	// empty when the provider could not resolve one.
	State string
}

// FuelStop records one refuel event emitted by the fuel simulator.
// Immutable once emitted. Except for the mandatory destination fill,
// LitersAdded always equals tank capacity minus the level before the fill.
type FuelStop struct {
	CumulativeDistanceMeters int
	DistanceFromPrevMeters   int
	LitersAdded              float64
	PricePerLiter            float64
	SegmentCost              float64
	FuelRemainingLiters      float64
	IsDestinationFill        bool
	Region                   string
	PriceSource              string
	PriceIsEstimate          bool
	// Station is absent for destination fills where no station resolved.
	Station *StationInfo
}

// Lodging is one overnight option attached to a rest stop.
type Lodging struct {
	Name    string
	Address string
	Rating  float64
	IsOpen  bool
	MapsURL string
	Phone   string
	Website string
}

// RestStop records an overnight halt, or the terminal arrival at the
// destination. Resume fields are absent on the terminal event.
type RestStop struct {
	ArrivalAt                time.Time
	CumulativeDistanceMeters int
	DistanceFromPrevMeters   int
	IsFinalDestination       bool
	ResumeAt                 *time.Time
	RestDuration             *time.Duration
	// TotalWithRests is the running trip duration including driving and
	// every rest up to and including this one.
	TotalWithRests time.Duration
	Locality       string
	Hotels         []Lodging
}

type MealKind string

const (
	MealBreakfast MealKind = "Breakfast"
	MealLunch     MealKind = "Lunch"
	MealDinner    MealKind = "Dinner"
)

// FixedDuration is the time accounted for the meal when it is not absorbed
// into a rest window.
func (k MealKind) FixedDuration() time.Duration {
	if k == MealBreakfast {
		return 30 * time.Minute
	}
	return time.Hour
}

// Restaurant is one dining option attached to a meal stop. Placeholder
// entries pad the list when the search strategies come up short.
type Restaurant struct {
	Name                string
	Address             string
	Rating              float64
	IsOpen              bool
	MapsURL             string
	Location            Coordinates
	DistanceFromRouteKm float64
	Placeholder         bool
}

// MealStop records one meal event. Location is interpolated along the
// segment the meal target fell into.
type MealStop struct {
	Kind                     MealKind
	Day                      int
	TargetAt                 time.Time
	Location                 Coordinates
	CumulativeDistanceMeters int
	DistanceFromPrevMeters   int
	// SuppressedDuration is true when the target falls inside an overnight
	// rest window; Duration is absent in that case.
	SuppressedDuration bool
	Duration           *time.Duration
	Locality           string
	Restaurants        []Restaurant
}

// TollPrices carries the per-booth price options a toll provider returned.
type TollPrices struct {
	Cash    float64
	Tag     float64
	Return  float64
	Monthly float64
}

// TollBooth is the per-booth detail of a toll result. Cost prefers the tag
// (FASTag) price over cash when both are present.
type TollBooth struct {
	Name           string
	City           string
	Cost           float64
	Prices         TollPrices
	Location       *Coordinates
	MapsURL        string
	PaymentMethods []string
}

// TollResult is the uniform shape both the provider path and the heuristic
// fallback produce. IsEstimate distinguishes the two.
type TollResult struct {
	TotalCost   float64
	BoothCount  int
	Booths      []TollBooth
	IsEstimate  bool
	VehicleType VehicleType
}
