package rawcollision

import (
	"testing"

	"collisions/pkg/records"
)

func TestCanonicalName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"accident_index", "accident_index"},
		{"\ufeffAccident_Index", "accident_index"},
		{"  Accident_Severity ", "accident_severity"},
		{"1st_Road_Class", "first_road_class"},
		{"2nd_Road_Number", "second_road_number"},
		{"Local_Authority_(District)", "local_authority_district"},
		{"Local_Authority_(Highway)", "local_authority_highway"},
		{"Engine_Capacity_(CC)", "engine_capacity_cc"},
		{"Was_Vehicle_Left_Hand_Drive?", "vehicle_left_hand_drive"},
		{"Pedestrian_Crossing-Human_Control", "pedestrian_crossing_human_control"},
		{"Vehicle_Location-Restricted_Lane", "vehicle_location_restricted_lane"},
		{"Year", "accident_year"},
		{"Speed limit", "speed_limit"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()
			if got := CanonicalName(c.in); got != c.want {
				t.Fatalf("CanonicalName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestNormalize_RenamesAndKeepsValues(t *testing.T) {
	t.Parallel()

	raw := records.Record{
		"Accident_Index": "2020010219808",
		"1st_Road_Class": int64(3),
		"Latitude":       51.5,
		"Time":           nil,
	}
	got := Normalize(raw)

	if got["accident_index"] != "2020010219808" {
		t.Fatalf("accident_index: got %#v", got["accident_index"])
	}
	if got["first_road_class"] != int64(3) {
		t.Fatalf("first_road_class: got %#v", got["first_road_class"])
	}
	if got["latitude"] != 51.5 {
		t.Fatalf("latitude: got %#v", got["latitude"])
	}
	if v, ok := got["time"]; !ok || v != nil {
		t.Fatalf("time should be present and nil: %#v (present=%v)", v, ok)
	}
	if _, ok := raw["accident_index"]; ok {
		t.Fatalf("Normalize mutated its input: %#v", raw)
	}
}

func TestNormalize_CanonicalSpellingWins(t *testing.T) {
	t.Parallel()

	raw := records.Record{
		"Year":          int64(1999),
		"accident_year": int64(2020),
	}
	if got := Normalize(raw)["accident_year"]; got != int64(2020) {
		t.Fatalf("accident_year: got %#v, want 2020", got)
	}
}
