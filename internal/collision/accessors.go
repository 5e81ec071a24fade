package collision

// Named accessors, one per canonical field. Values are the normalized scalars
// stored at construction: nil, int64, float64 or string.

func (c *Collision) AccidentIndex() any        { return c.vals[FieldAccidentIndex] }
func (c *Collision) AccidentYear() any         { return c.vals[FieldAccidentYear] }
func (c *Collision) Latitude() any             { return c.vals[FieldLatitude] }
func (c *Collision) Longitude() any            { return c.vals[FieldLongitude] }
func (c *Collision) AccidentReference() any    { return c.vals[FieldAccidentReference] }
func (c *Collision) AccidentSeverity() any     { return c.vals[FieldAccidentSeverity] }
func (c *Collision) AgeBandOfCasualty() any    { return c.vals[FieldAgeBandOfCasualty] }
func (c *Collision) AgeBandOfDriver() any      { return c.vals[FieldAgeBandOfDriver] }
func (c *Collision) AgeOfCasualty() any        { return c.vals[FieldAgeOfCasualty] }
func (c *Collision) AgeOfDriver() any          { return c.vals[FieldAgeOfDriver] }
func (c *Collision) AgeOfVehicle() any         { return c.vals[FieldAgeOfVehicle] }
func (c *Collision) BusOrCoachPassenger() any  { return c.vals[FieldBusOrCoachPassenger] }
func (c *Collision) CarPassenger() any         { return c.vals[FieldCarPassenger] }
func (c *Collision) CarriagewayHazards() any   { return c.vals[FieldCarriagewayHazards] }
func (c *Collision) CasualtyClass() any        { return c.vals[FieldCasualtyClass] }
func (c *Collision) CasualtyHomeAreaType() any { return c.vals[FieldCasualtyHomeAreaType] }
func (c *Collision) CasualtyIMDDecile() any    { return c.vals[FieldCasualtyIMDDecile] }
func (c *Collision) CasualtyReference() any    { return c.vals[FieldCasualtyReference] }
func (c *Collision) CasualtySeverity() any     { return c.vals[FieldCasualtySeverity] }
func (c *Collision) CasualtyType() any         { return c.vals[FieldCasualtyType] }
func (c *Collision) Date() any                 { return c.vals[FieldDate] }
func (c *Collision) DayOfWeek() any            { return c.vals[FieldDayOfWeek] }
func (c *Collision) DidPoliceOfficerAttendSceneOfAccident() any {
	return c.vals[FieldDidPoliceOfficerAttendSceneOfAccident]
}
func (c *Collision) DriverHomeAreaType() any        { return c.vals[FieldDriverHomeAreaType] }
func (c *Collision) DriverIMDDecile() any           { return c.vals[FieldDriverIMDDecile] }
func (c *Collision) EngineCapacityCC() any          { return c.vals[FieldEngineCapacityCC] }
func (c *Collision) FirstPointOfImpact() any        { return c.vals[FieldFirstPointOfImpact] }
func (c *Collision) FirstRoadClass() any            { return c.vals[FieldFirstRoadClass] }
func (c *Collision) FirstRoadNumber() any           { return c.vals[FieldFirstRoadNumber] }
func (c *Collision) GenericMakeModel() any          { return c.vals[FieldGenericMakeModel] }
func (c *Collision) HitObjectInCarriageway() any    { return c.vals[FieldHitObjectInCarriageway] }
func (c *Collision) HitObjectOffCarriageway() any   { return c.vals[FieldHitObjectOffCarriageway] }
func (c *Collision) JourneyPurposeOfDriver() any    { return c.vals[FieldJourneyPurposeOfDriver] }
func (c *Collision) JunctionControl() any           { return c.vals[FieldJunctionControl] }
func (c *Collision) JunctionDetail() any            { return c.vals[FieldJunctionDetail] }
func (c *Collision) JunctionLocation() any          { return c.vals[FieldJunctionLocation] }
func (c *Collision) LightConditions() any           { return c.vals[FieldLightConditions] }
func (c *Collision) LocalAuthorityDistrict() any    { return c.vals[FieldLocalAuthorityDistrict] }
func (c *Collision) LocalAuthorityHighway() any     { return c.vals[FieldLocalAuthorityHighway] }
func (c *Collision) LocalAuthorityONSDistrict() any { return c.vals[FieldLocalAuthorityONSDistrict] }
func (c *Collision) LocationEastingOSGR() any       { return c.vals[FieldLocationEastingOSGR] }
func (c *Collision) LocationNorthingOSGR() any      { return c.vals[FieldLocationNorthingOSGR] }
func (c *Collision) LSOAOfAccidentLocation() any    { return c.vals[FieldLSOAOfAccidentLocation] }
func (c *Collision) NumberOfCasualties() any        { return c.vals[FieldNumberOfCasualties] }
func (c *Collision) NumberOfVehicles() any          { return c.vals[FieldNumberOfVehicles] }
func (c *Collision) PedestrianCrossingHumanControl() any {
	return c.vals[FieldPedestrianCrossingHumanControl]
}
func (c *Collision) PedestrianCrossingPhysicalFacilities() any {
	return c.vals[FieldPedestrianCrossingPhysicalFacilities]
}
func (c *Collision) PedestrianLocation() any { return c.vals[FieldPedestrianLocation] }
func (c *Collision) PedestrianMovement() any { return c.vals[FieldPedestrianMovement] }
func (c *Collision) PedestrianRoadMaintenanceWorker() any {
	return c.vals[FieldPedestrianRoadMaintenanceWorker]
}
func (c *Collision) PoliceForce() any               { return c.vals[FieldPoliceForce] }
func (c *Collision) PropulsionCode() any            { return c.vals[FieldPropulsionCode] }
func (c *Collision) RoadSurfaceConditions() any     { return c.vals[FieldRoadSurfaceConditions] }
func (c *Collision) RoadType() any                  { return c.vals[FieldRoadType] }
func (c *Collision) SecondRoadClass() any           { return c.vals[FieldSecondRoadClass] }
func (c *Collision) SecondRoadNumber() any          { return c.vals[FieldSecondRoadNumber] }
func (c *Collision) SexOfCasualty() any             { return c.vals[FieldSexOfCasualty] }
func (c *Collision) SexOfDriver() any               { return c.vals[FieldSexOfDriver] }
func (c *Collision) SkiddingAndOverturning() any    { return c.vals[FieldSkiddingAndOverturning] }
func (c *Collision) SpecialConditionsAtSite() any   { return c.vals[FieldSpecialConditionsAtSite] }
func (c *Collision) SpeedLimit() any                { return c.vals[FieldSpeedLimit] }
func (c *Collision) Time() any                      { return c.vals[FieldTime] }
func (c *Collision) TowingAndArticulation() any     { return c.vals[FieldTowingAndArticulation] }
func (c *Collision) TrunkRoadFlag() any             { return c.vals[FieldTrunkRoadFlag] }
func (c *Collision) UrbanOrRuralArea() any          { return c.vals[FieldUrbanOrRuralArea] }
func (c *Collision) VehicleDirectionFrom() any      { return c.vals[FieldVehicleDirectionFrom] }
func (c *Collision) VehicleDirectionTo() any        { return c.vals[FieldVehicleDirectionTo] }
func (c *Collision) VehicleLeavingCarriageway() any { return c.vals[FieldVehicleLeavingCarriageway] }
func (c *Collision) VehicleLeftHandDrive() any      { return c.vals[FieldVehicleLeftHandDrive] }
func (c *Collision) VehicleLocationRestrictedLane() any {
	return c.vals[FieldVehicleLocationRestrictedLane]
}
func (c *Collision) VehicleManoeuvre() any  { return c.vals[FieldVehicleManoeuvre] }
func (c *Collision) VehicleReference() any  { return c.vals[FieldVehicleReference] }
func (c *Collision) VehicleType() any       { return c.vals[FieldVehicleType] }
func (c *Collision) WeatherConditions() any { return c.vals[FieldWeatherConditions] }
