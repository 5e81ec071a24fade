package records

import (
	"reflect"
	"testing"
)

func TestRecord_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	r := Record{"a": int64(1), "b": "x", "c": nil}
	c := r.Clone()
	c["a"] = int64(2)
	delete(c, "b")

	if r["a"] != int64(1) || r["b"] != "x" {
		t.Fatalf("clone mutated source: %#v", r)
	}
	if _, ok := c["c"]; !ok {
		t.Fatalf("nil value not carried over: %#v", c)
	}
}

func TestRecord_KeysSorted(t *testing.T) {
	t.Parallel()

	got := Record{"time": "11:45", "date": "31/12/2020", "accident_index": "x"}.Keys()
	want := []string{"accident_index", "date", "time"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
}
