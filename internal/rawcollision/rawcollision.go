// Package rawcollision translates dataset-specific column names into the
// canonical collision field names. Published STATS19 extracts have used
// several header spellings over the years ("Accident_Index",
// "1st_Road_Class", "Local_Authority_(District)", "Engine_Capacity_(CC)",
// "Was_Vehicle_Left_Hand_Drive?"); all of them map onto one snake_case
// vocabulary here. Cell values pass through untouched.
package rawcollision

import (
	"sort"
	"strings"

	"collisions/pkg/records"
)

const utf8BOM = "\ufeff"

// aliases maps a mechanically normalized header onto its canonical name when
// the two differ.
var aliases = map[string]string{
	"accident_ref":                 "accident_reference",
	"year":                         "accident_year",
	"1st_road_class":               "first_road_class",
	"1st_road_number":              "first_road_number",
	"2nd_road_class":               "second_road_class",
	"2nd_road_number":              "second_road_number",
	"1st_point_of_impact":          "first_point_of_impact",
	"was_vehicle_left_hand_drive":  "vehicle_left_hand_drive",
	"was_vehicle_left_hand_drive_": "vehicle_left_hand_drive",
	"vehicle_left_hand_drive_":     "vehicle_left_hand_drive",
	"lat":                          "latitude",
	"lng":                          "longitude",
	"lon":                          "longitude",
	"police_officer_attend":        "did_police_officer_attend_scene_of_accident",
	"road_maintenance_worker":      "pedestrian_road_maintenance_worker",
	"make_model":                   "generic_make_model",
	"imd_decile_of_casualty":       "casualty_imd_decile",
	"imd_decile_of_driver":         "driver_imd_decile",
	"local_authority_ons_code":     "local_authority_ons_district",
	"lsoa_of_accident":             "lsoa_of_accident_location",
}

var replacer = strings.NewReplacer(
	" ", "_",
	"-", "_",
	"(", "_",
	")", "_",
	"?", "",
	".", "_",
	"/", "_",
)

// CanonicalName maps one source column name onto its canonical field name.
// Names that are already canonical are returned unchanged.
func CanonicalName(column string) string {
	s := strings.TrimSpace(strings.TrimPrefix(column, utf8BOM))
	s = replacer.Replace(strings.ToLower(s))
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")
	if a, ok := aliases[s]; ok {
		return a
	}
	return s
}

// Normalize returns a new record keyed by canonical names. When several
// source columns map onto the same canonical name, a column already spelled
// canonically wins; otherwise the lexically first source column wins.
func Normalize(raw records.Record) records.Record {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(records.Record, len(raw))
	exact := make(map[string]bool, len(raw))
	for _, k := range keys {
		name := CanonicalName(k)
		isExact := k == name
		if _, seen := out[name]; seen && (exact[name] || !isExact) {
			continue
		}
		out[name] = raw[k]
		exact[name] = isExact
	}
	return out
}
