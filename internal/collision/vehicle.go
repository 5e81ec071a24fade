package collision

import (
	"fmt"

	"collisions/pkg/records"
)

// VehicleField identifies one attribute of the fixed vehicle schema.
type VehicleField int

// Vehicle schema fields, in serialization order.
const (
	VehicleAgeBandOfDriver VehicleField = iota
	VehicleAgeOfDriver
	VehicleAgeOfVehicle
	VehicleDriverHomeAreaType
	VehicleDriverIMDDecile
	VehicleEngineCapacityCC
	VehicleFirstPointOfImpact
	VehicleGenericMakeModel
	VehicleHitObjectInCarriageway
	VehicleHitObjectOffCarriageway
	VehicleJourneyPurposeOfDriver
	VehicleJunctionLocation
	VehiclePropulsionCode
	VehicleSexOfDriver
	VehicleSkiddingAndOverturning
	VehicleTowingAndArticulation
	VehicleVehicleDirectionFrom
	VehicleVehicleDirectionTo
	VehicleVehicleLeavingCarriageway
	VehicleVehicleLeftHandDrive
	VehicleVehicleLocationRestrictedLane
	VehicleVehicleManoeuvre
	VehicleVehicleReference
	VehicleVehicleType

	numVehicleFields
)

var vehicleFieldNames = [numVehicleFields]string{
	"age_band_of_driver",
	"age_of_driver",
	"age_of_vehicle",
	"driver_home_area_type",
	"driver_imd_decile",
	"engine_capacity_cc",
	"first_point_of_impact",
	"generic_make_model",
	"hit_object_in_carriageway",
	"hit_object_off_carriageway",
	"journey_purpose_of_driver",
	"junction_location",
	"propulsion_code",
	"sex_of_driver",
	"skidding_and_overturning",
	"towing_and_articulation",
	"vehicle_direction_from",
	"vehicle_direction_to",
	"vehicle_leaving_carriageway",
	"vehicle_left_hand_drive",
	"vehicle_location_restricted_lane",
	"vehicle_manoeuvre",
	"vehicle_reference",
	"vehicle_type",
}

// vehicleSource maps each vehicle field onto the collision field it is
// projected from.
var vehicleSource = [numVehicleFields]Field{
	VehicleAgeBandOfDriver:               FieldAgeBandOfDriver,
	VehicleAgeOfDriver:                   FieldAgeOfDriver,
	VehicleAgeOfVehicle:                  FieldAgeOfVehicle,
	VehicleDriverHomeAreaType:            FieldDriverHomeAreaType,
	VehicleDriverIMDDecile:               FieldDriverIMDDecile,
	VehicleEngineCapacityCC:              FieldEngineCapacityCC,
	VehicleFirstPointOfImpact:            FieldFirstPointOfImpact,
	VehicleGenericMakeModel:              FieldGenericMakeModel,
	VehicleHitObjectInCarriageway:        FieldHitObjectInCarriageway,
	VehicleHitObjectOffCarriageway:       FieldHitObjectOffCarriageway,
	VehicleJourneyPurposeOfDriver:        FieldJourneyPurposeOfDriver,
	VehicleJunctionLocation:              FieldJunctionLocation,
	VehiclePropulsionCode:                FieldPropulsionCode,
	VehicleSexOfDriver:                   FieldSexOfDriver,
	VehicleSkiddingAndOverturning:        FieldSkiddingAndOverturning,
	VehicleTowingAndArticulation:         FieldTowingAndArticulation,
	VehicleVehicleDirectionFrom:          FieldVehicleDirectionFrom,
	VehicleVehicleDirectionTo:            FieldVehicleDirectionTo,
	VehicleVehicleLeavingCarriageway:     FieldVehicleLeavingCarriageway,
	VehicleVehicleLeftHandDrive:          FieldVehicleLeftHandDrive,
	VehicleVehicleLocationRestrictedLane: FieldVehicleLocationRestrictedLane,
	VehicleVehicleManoeuvre:              FieldVehicleManoeuvre,
	VehicleVehicleReference:              FieldVehicleReference,
	VehicleVehicleType:                   FieldVehicleType,
}

var vehicleFieldByName = func() map[string]VehicleField {
	m := make(map[string]VehicleField, numVehicleFields)
	for i, n := range vehicleFieldNames {
		m[n] = VehicleField(i)
	}
	return m
}()

// String returns the canonical name of f.
func (f VehicleField) String() string {
	if f < 0 || f >= numVehicleFields {
		return "unknown"
	}
	return vehicleFieldNames[f]
}

// VehicleFieldNames returns the vehicle schema in serialization order.
func VehicleFieldNames() []string {
	out := make([]string, numVehicleFields)
	copy(out, vehicleFieldNames[:])
	return out
}

// Vehicle is one vehicle involved in a collision. Every schema field is
// required at construction.
type Vehicle struct {
	vals [numVehicleFields]any
}

// NewVehicle builds a Vehicle from m. Any absent schema key fails with
// *MissingFieldError.
func NewVehicle(m map[string]any) (*Vehicle, error) {
	v := &Vehicle{}
	for i, name := range vehicleFieldNames {
		val, ok := m[name]
		if !ok {
			return nil, missingField(name)
		}
		v.vals[i] = normalize(val)
	}
	return v, nil
}

// HasField reports whether name belongs to the vehicle schema. Safe on a nil
// *Vehicle.
func (*Vehicle) HasField(name string) bool {
	_, ok := vehicleFieldByName[name]
	return ok
}

// Get returns a schema field by name.
func (v *Vehicle) Get(name string) (any, error) {
	f, ok := vehicleFieldByName[name]
	if !ok {
		return nil, missingField(name)
	}
	return v.vals[f], nil
}

// Serialize returns every schema field keyed by name.
func (v *Vehicle) Serialize() (map[string]any, error) {
	out := make(map[string]any, numVehicleFields)
	for i, name := range vehicleFieldNames {
		out[name] = v.vals[i]
	}
	return out, nil
}

// ParseVehicles accepts a *Vehicle, a single mapping, or a sequence of
// mappings, and returns one Vehicle per input mapping in input order.
func ParseVehicles(input any) (*Collection[*Vehicle], error) {
	out := NewCollection[*Vehicle]()
	switch in := input.(type) {
	case *Vehicle:
		if in == nil {
			return nil, fmt.Errorf("parse vehicles: nil *Vehicle: %w", ErrUnsupportedInput)
		}
		out.Append(in)
	case map[string]any:
		v, err := NewVehicle(in)
		if err != nil {
			return nil, fmt.Errorf("parse vehicle: %w", err)
		}
		out.Append(v)
	case records.Record:
		return ParseVehicles(map[string]any(in))
	case []map[string]any:
		for i, m := range in {
			if err := appendVehicle(out, i, m); err != nil {
				return nil, err
			}
		}
	case []records.Record:
		for i, m := range in {
			if err := appendVehicle(out, i, m); err != nil {
				return nil, err
			}
		}
	case []any:
		for i, el := range in {
			var m map[string]any
			switch x := el.(type) {
			case map[string]any:
				m = x
			case records.Record:
				m = x
			default:
				return nil, fmt.Errorf("parse vehicles: element %d is %T: %w", i, el, ErrUnsupportedInput)
			}
			if err := appendVehicle(out, i, m); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("parse vehicles: %T: %w", input, ErrUnsupportedInput)
	}
	return out, nil
}

func appendVehicle(out *Collection[*Vehicle], i int, m map[string]any) error {
	v, err := NewVehicle(m)
	if err != nil {
		return fmt.Errorf("parse vehicles: element %d: %w", i, err)
	}
	out.Append(v)
	return nil
}

// Named accessors.

func (v *Vehicle) AgeBandOfDriver() any           { return v.vals[VehicleAgeBandOfDriver] }
func (v *Vehicle) AgeOfDriver() any               { return v.vals[VehicleAgeOfDriver] }
func (v *Vehicle) AgeOfVehicle() any              { return v.vals[VehicleAgeOfVehicle] }
func (v *Vehicle) DriverHomeAreaType() any        { return v.vals[VehicleDriverHomeAreaType] }
func (v *Vehicle) DriverIMDDecile() any           { return v.vals[VehicleDriverIMDDecile] }
func (v *Vehicle) EngineCapacityCC() any          { return v.vals[VehicleEngineCapacityCC] }
func (v *Vehicle) FirstPointOfImpact() any        { return v.vals[VehicleFirstPointOfImpact] }
func (v *Vehicle) GenericMakeModel() any          { return v.vals[VehicleGenericMakeModel] }
func (v *Vehicle) HitObjectInCarriageway() any    { return v.vals[VehicleHitObjectInCarriageway] }
func (v *Vehicle) HitObjectOffCarriageway() any   { return v.vals[VehicleHitObjectOffCarriageway] }
func (v *Vehicle) JourneyPurposeOfDriver() any    { return v.vals[VehicleJourneyPurposeOfDriver] }
func (v *Vehicle) JunctionLocation() any          { return v.vals[VehicleJunctionLocation] }
func (v *Vehicle) PropulsionCode() any            { return v.vals[VehiclePropulsionCode] }
func (v *Vehicle) SexOfDriver() any               { return v.vals[VehicleSexOfDriver] }
func (v *Vehicle) SkiddingAndOverturning() any    { return v.vals[VehicleSkiddingAndOverturning] }
func (v *Vehicle) TowingAndArticulation() any     { return v.vals[VehicleTowingAndArticulation] }
func (v *Vehicle) VehicleDirectionFrom() any      { return v.vals[VehicleVehicleDirectionFrom] }
func (v *Vehicle) VehicleDirectionTo() any        { return v.vals[VehicleVehicleDirectionTo] }
func (v *Vehicle) VehicleLeavingCarriageway() any { return v.vals[VehicleVehicleLeavingCarriageway] }
func (v *Vehicle) VehicleLeftHandDrive() any      { return v.vals[VehicleVehicleLeftHandDrive] }
func (v *Vehicle) VehicleLocationRestrictedLane() any {
	return v.vals[VehicleVehicleLocationRestrictedLane]
}
func (v *Vehicle) VehicleManoeuvre() any { return v.vals[VehicleVehicleManoeuvre] }
func (v *Vehicle) VehicleReference() any { return v.vals[VehicleVehicleReference] }
func (v *Vehicle) VehicleType() any      { return v.vals[VehicleVehicleType] }
