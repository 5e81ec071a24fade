package collision

import (
	"errors"
	"testing"

	"collisions/pkg/records"
)

func sampleVehicle(overrides map[string]any) map[string]any {
	m := make(map[string]any, numVehicleFields)
	for i, name := range vehicleFieldNames {
		m[name] = int64(i + 1)
	}
	m["generic_make_model"] = "FORD FIESTA"
	for k, v := range overrides {
		m[k] = v
	}
	return m
}

func TestNewVehicle_Strict(t *testing.T) {
	t.Parallel()

	for _, name := range VehicleFieldNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := sampleVehicle(nil)
			delete(m, name)
			_, err := NewVehicle(m)
			var mf *MissingFieldError
			if !errors.As(err, &mf) || mf.Field != name {
				t.Fatalf("expected MissingFieldError for %s, got %v", name, err)
			}
		})
	}
}

func TestParseVehicles_Shapes(t *testing.T) {
	t.Parallel()

	one := sampleVehicle(map[string]any{"vehicle_reference": int64(1)})
	two := sampleVehicle(map[string]any{"vehicle_reference": int64(2)})

	cases := []struct {
		name string
		in   any
		refs []int64
	}{
		{"single map", one, []int64{1}},
		{"single record", records.Record(one), []int64{1}},
		{"map slice", []map[string]any{one, two}, []int64{1, 2}},
		{"record slice", []records.Record{two, one}, []int64{2, 1}},
		{"any slice", []any{one, records.Record(two)}, []int64{1, 2}},
		{"empty slice", []map[string]any{}, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVehicles(tc.in)
			if err != nil {
				t.Fatalf("ParseVehicles: %v", err)
			}
			if got.Len() != len(tc.refs) {
				t.Fatalf("len: got %d want %d", got.Len(), len(tc.refs))
			}
			for i, ref := range tc.refs {
				if got.At(i).VehicleReference() != ref {
					t.Fatalf("At(%d): got %#v want %d", i, got.At(i).VehicleReference(), ref)
				}
			}
		})
	}
}

func TestParseVehicles_Idempotent(t *testing.T) {
	t.Parallel()

	v, err := NewVehicle(sampleVehicle(nil))
	if err != nil {
		t.Fatalf("NewVehicle: %v", err)
	}
	got, err := ParseVehicles(v)
	if err != nil || got.At(0) != v {
		t.Fatalf("ParseVehicles(*Vehicle): %v", err)
	}
}

func TestParseVehicles_Errors(t *testing.T) {
	t.Parallel()

	bad := sampleVehicle(nil)
	delete(bad, "vehicle_type")

	if _, err := ParseVehicles([]any{sampleVehicle(nil), bad}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	for _, in := range []any{"x", 3, []any{"x"}, nil} {
		if _, err := ParseVehicles(in); !errors.Is(err, ErrUnsupportedInput) {
			t.Fatalf("ParseVehicles(%#v): expected ErrUnsupportedInput, got %v", in, err)
		}
	}
}

func TestVehicle_FilterAndSerialize(t *testing.T) {
	t.Parallel()

	coll, err := ParseVehicles([]map[string]any{
		sampleVehicle(map[string]any{"vehicle_reference": int64(1), "sex_of_driver": int64(1)}),
		sampleVehicle(map[string]any{"vehicle_reference": int64(2), "sex_of_driver": int64(2)}),
	})
	if err != nil {
		t.Fatalf("ParseVehicles: %v", err)
	}
	got, err := coll.Filter(map[string]any{"sex_of_driver": 2})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if got.Len() != 1 || got.At(0).VehicleReference() != int64(2) {
		t.Fatalf("Filter: got %d records", got.Len())
	}
	if _, err := coll.Filter(map[string]any{"speed_limit": 30}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for a collision-only field, got %v", err)
	}

	m, err := got.At(0).Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(m) != len(VehicleFieldNames()) || m["generic_make_model"] != "FORD FIESTA" {
		t.Fatalf("Serialize: %#v", m)
	}
	back, err := NewVehicle(m)
	if err != nil || back.VehicleReference() != int64(2) {
		t.Fatalf("round trip: %v", err)
	}
}
