package collision

// Field identifies one canonical collision attribute. The zero value is
// FieldAccidentIndex, the record identifier.
type Field int

// Canonical collision fields. The order is the storage order of a Collision
// and the column order used by Fields.
const (
	FieldAccidentIndex Field = iota
	FieldAccidentYear
	FieldLatitude
	FieldLongitude
	FieldAccidentReference
	FieldAccidentSeverity
	FieldAgeBandOfCasualty
	FieldAgeBandOfDriver
	FieldAgeOfCasualty
	FieldAgeOfDriver
	FieldAgeOfVehicle
	FieldBusOrCoachPassenger
	FieldCarPassenger
	FieldCarriagewayHazards
	FieldCasualtyClass
	FieldCasualtyHomeAreaType
	FieldCasualtyIMDDecile
	FieldCasualtyReference
	FieldCasualtySeverity
	FieldCasualtyType
	FieldDate
	FieldDayOfWeek
	FieldDidPoliceOfficerAttendSceneOfAccident
	FieldDriverHomeAreaType
	FieldDriverIMDDecile
	FieldEngineCapacityCC
	FieldFirstPointOfImpact
	FieldFirstRoadClass
	FieldFirstRoadNumber
	FieldGenericMakeModel
	FieldHitObjectInCarriageway
	FieldHitObjectOffCarriageway
	FieldJourneyPurposeOfDriver
	FieldJunctionControl
	FieldJunctionDetail
	FieldJunctionLocation
	FieldLightConditions
	FieldLocalAuthorityDistrict
	FieldLocalAuthorityHighway
	FieldLocalAuthorityONSDistrict
	FieldLocationEastingOSGR
	FieldLocationNorthingOSGR
	FieldLSOAOfAccidentLocation
	FieldNumberOfCasualties
	FieldNumberOfVehicles
	FieldPedestrianCrossingHumanControl
	FieldPedestrianCrossingPhysicalFacilities
	FieldPedestrianLocation
	FieldPedestrianMovement
	FieldPedestrianRoadMaintenanceWorker
	FieldPoliceForce
	FieldPropulsionCode
	FieldRoadSurfaceConditions
	FieldRoadType
	FieldSecondRoadClass
	FieldSecondRoadNumber
	FieldSexOfCasualty
	FieldSexOfDriver
	FieldSkiddingAndOverturning
	FieldSpecialConditionsAtSite
	FieldSpeedLimit
	FieldTime
	FieldTowingAndArticulation
	FieldTrunkRoadFlag
	FieldUrbanOrRuralArea
	FieldVehicleDirectionFrom
	FieldVehicleDirectionTo
	FieldVehicleLeavingCarriageway
	FieldVehicleLeftHandDrive
	FieldVehicleLocationRestrictedLane
	FieldVehicleManoeuvre
	FieldVehicleReference
	FieldVehicleType
	FieldWeatherConditions

	numFields
)

var fieldNames = [numFields]string{
	"accident_index",
	"accident_year",
	"latitude",
	"longitude",
	"accident_reference",
	"accident_severity",
	"age_band_of_casualty",
	"age_band_of_driver",
	"age_of_casualty",
	"age_of_driver",
	"age_of_vehicle",
	"bus_or_coach_passenger",
	"car_passenger",
	"carriageway_hazards",
	"casualty_class",
	"casualty_home_area_type",
	"casualty_imd_decile",
	"casualty_reference",
	"casualty_severity",
	"casualty_type",
	"date",
	"day_of_week",
	"did_police_officer_attend_scene_of_accident",
	"driver_home_area_type",
	"driver_imd_decile",
	"engine_capacity_cc",
	"first_point_of_impact",
	"first_road_class",
	"first_road_number",
	"generic_make_model",
	"hit_object_in_carriageway",
	"hit_object_off_carriageway",
	"journey_purpose_of_driver",
	"junction_control",
	"junction_detail",
	"junction_location",
	"light_conditions",
	"local_authority_district",
	"local_authority_highway",
	"local_authority_ons_district",
	"location_easting_osgr",
	"location_northing_osgr",
	"lsoa_of_accident_location",
	"number_of_casualties",
	"number_of_vehicles",
	"pedestrian_crossing_human_control",
	"pedestrian_crossing_physical_facilities",
	"pedestrian_location",
	"pedestrian_movement",
	"pedestrian_road_maintenance_worker",
	"police_force",
	"propulsion_code",
	"road_surface_conditions",
	"road_type",
	"second_road_class",
	"second_road_number",
	"sex_of_casualty",
	"sex_of_driver",
	"skidding_and_overturning",
	"special_conditions_at_site",
	"speed_limit",
	"time",
	"towing_and_articulation",
	"trunk_road_flag",
	"urban_or_rural_area",
	"vehicle_direction_from",
	"vehicle_direction_to",
	"vehicle_leaving_carriageway",
	"vehicle_left_hand_drive",
	"vehicle_location_restricted_lane",
	"vehicle_manoeuvre",
	"vehicle_reference",
	"vehicle_type",
	"weather_conditions",
}

// serializedFields lists the fields emitted by Serialize after id, lat, lng
// and year, in emission order. accident_year is the recorded value and may
// differ from the year derived from the date.
var serializedFields = []Field{
	FieldAccidentYear,
	FieldAccidentReference,
	FieldAccidentSeverity,
	FieldAgeBandOfCasualty,
	FieldAgeBandOfDriver,
	FieldAgeOfCasualty,
	FieldAgeOfDriver,
	FieldAgeOfVehicle,
	FieldBusOrCoachPassenger,
	FieldCarPassenger,
	FieldCarriagewayHazards,
	FieldCasualtyClass,
	FieldCasualtyHomeAreaType,
	FieldCasualtyIMDDecile,
	FieldCasualtyReference,
	FieldCasualtySeverity,
	FieldCasualtyType,
	FieldDate,
	FieldDayOfWeek,
	FieldDidPoliceOfficerAttendSceneOfAccident,
	FieldDriverHomeAreaType,
	FieldDriverIMDDecile,
	FieldEngineCapacityCC,
	FieldFirstPointOfImpact,
	FieldFirstRoadClass,
	FieldFirstRoadNumber,
	FieldGenericMakeModel,
	FieldHitObjectInCarriageway,
	FieldHitObjectOffCarriageway,
	FieldJourneyPurposeOfDriver,
	FieldJunctionControl,
	FieldJunctionDetail,
	FieldJunctionLocation,
	FieldLightConditions,
	FieldLocalAuthorityDistrict,
	FieldLocalAuthorityHighway,
	FieldLocalAuthorityONSDistrict,
	FieldLocationEastingOSGR,
	FieldLocationNorthingOSGR,
	FieldLSOAOfAccidentLocation,
	FieldNumberOfCasualties,
	FieldNumberOfVehicles,
	FieldPedestrianCrossingHumanControl,
	FieldPedestrianCrossingPhysicalFacilities,
	FieldPedestrianLocation,
	FieldPedestrianMovement,
	FieldPedestrianRoadMaintenanceWorker,
	FieldPoliceForce,
	FieldPropulsionCode,
	FieldRoadSurfaceConditions,
	FieldRoadType,
	FieldSecondRoadClass,
	FieldSecondRoadNumber,
	FieldSexOfCasualty,
	FieldSexOfDriver,
	FieldSkiddingAndOverturning,
	FieldSpecialConditionsAtSite,
	FieldSpeedLimit,
	FieldTime,
	FieldTowingAndArticulation,
	FieldTrunkRoadFlag,
	FieldUrbanOrRuralArea,
	FieldVehicleDirectionFrom,
	FieldVehicleDirectionTo,
	FieldVehicleLeavingCarriageway,
	FieldVehicleLeftHandDrive,
	FieldVehicleLocationRestrictedLane,
	FieldVehicleManoeuvre,
	FieldVehicleReference,
	FieldVehicleType,
	FieldWeatherConditions,
}

var fieldByName = func() map[string]Field {
	m := make(map[string]Field, numFields)
	for i, n := range fieldNames {
		m[n] = Field(i)
	}
	return m
}()

// Derived attribute names accepted by Collision.Get in addition to the
// canonical field names.
const (
	AttrID        = "id"
	AttrYear      = "year"
	AttrGeo       = "geo"
	AttrTimestamp = "timestamp"
)

// String returns the canonical name of f.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields returns every canonical field in storage order.
func Fields() []Field {
	out := make([]Field, numFields)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// FieldNames returns the canonical field names in storage order.
func FieldNames() []string {
	out := make([]string, numFields)
	copy(out, fieldNames[:])
	return out
}

// LookupField maps a canonical name to its Field. Unknown names yield a
// *MissingFieldError.
func LookupField(name string) (Field, error) {
	f, ok := fieldByName[name]
	if !ok {
		return 0, missingField(name)
	}
	return f, nil
}

// SerializedKeys returns the keys of Collision.Serialize in emission order:
// id, lat, lng, year, then accident_year and the remaining canonical fields.
func SerializedKeys() []string {
	keys := make([]string, 0, 4+len(serializedFields))
	keys = append(keys, AttrID, "lat", "lng", AttrYear)
	for _, f := range serializedFields {
		keys = append(keys, f.String())
	}
	return keys
}
