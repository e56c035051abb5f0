package domain

import "fmt"

type VehicleType string

const (
	VehicleCar   VehicleType = "Car"
	VehicleBike  VehicleType = "Bike"
	VehicleTaxi  VehicleType = "Taxi"
	VehicleLCV   VehicleType = "LCV"
	VehicleTruck VehicleType = "Truck"
	VehicleBus   VehicleType = "Bus"
)

// TollExempt reports whether the vehicle class pays no highway tolls.
// Two-wheelers are exempt in this domain.
func (v VehicleType) TollExempt() bool { return v == VehicleBike }

type FuelType string

const (
	FuelPetrol FuelType = "petrol"
	FuelDiesel FuelType = "diesel"
)

// Vehicle holds the fuel-economy parameters the simulators need.
type Vehicle struct {
	Type               VehicleType
	Fuel               FuelType
	MileageKmPerLiter  float64
	TankCapacityLiters float64
}

func (v Vehicle) Validate() error {
	switch v.Type {
	case VehicleCar, VehicleBike, VehicleTaxi, VehicleLCV, VehicleTruck, VehicleBus:
	default:
		return fmt.Errorf("vehicle: unknown vehicle type %q", v.Type)
	}

	switch v.Fuel {
	case FuelPetrol, FuelDiesel:
	default:
		return fmt.Errorf("vehicle: unknown fuel type %q", v.Fuel)
	}

	if v.MileageKmPerLiter <= 0 {
		return fmt.Errorf("vehicle: mileage must be positive, got %v", v.MileageKmPerLiter)
	}
	if v.TankCapacityLiters <= 0 {
		return fmt.Errorf("vehicle: tank capacity must be positive, got %v", v.TankCapacityLiters)
	}

	return nil
}

// RangeKm is the full-tank driving range.
func (v Vehicle) RangeKm() float64 { return v.TankCapacityLiters * v.MileageKmPerLiter }
