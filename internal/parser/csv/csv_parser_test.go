package csv

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"collisions/pkg/records"
)

const sample = "Accident_Index, Speed limit ,Latitude,LSOA_of_Accident_Location,Time\n" +
	"2020010219808,30,51.508057,E01004762,09:00\n" +
	"2020010220496, 20 ,-0.5,,17:50\n"

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	recs, err := NewParser(Options{}).Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d rows, want 2", len(recs))
	}
	want := records.Record{
		"accident_index":            "2020010220496",
		"speed_limit":               " 20 ",
		"latitude":                  "-0.5",
		"lsoa_of_accident_location": nil,
		"time":                      "17:50",
	}
	if !reflect.DeepEqual(recs[1], want) {
		t.Fatalf("row 1 = %#v, want %#v", recs[1], want)
	}
}

func TestParse_TrimAndInfer(t *testing.T) {
	t.Parallel()

	p := NewParser(Options{TrimSpace: true, InferTypes: true})
	recs, err := p.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r0, r1 := recs[0], recs[1]
	if r0["accident_index"] != int64(2020010219808) {
		t.Fatalf("accident_index: %#v", r0["accident_index"])
	}
	if r1["speed_limit"] != int64(20) || r0["latitude"] != 51.508057 || r1["latitude"] != -0.5 {
		t.Fatalf("numbers: %#v %#v %#v", r1["speed_limit"], r0["latitude"], r1["latitude"])
	}
	if r0["lsoa_of_accident_location"] != "E01004762" || r0["time"] != "09:00" {
		t.Fatalf("text cells: %#v %#v", r0["lsoa_of_accident_location"], r0["time"])
	}
}

func TestInfer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want any
	}{
		{"0", int64(0)},
		{"-1", int64(-1)},
		{"+7", int64(7)},
		{"01", "01"},
		{"0.25", 0.25},
		{"00.5", "00.5"},
		{"1.", "1."},
		{".5", ".5"},
		{"1e3", "1e3"},
		{"NaN", "NaN"},
		{"0x10", "0x10"},
		{"31/12/2020", "31/12/2020"},
		{"99999999999999999999", "99999999999999999999"},
	}
	for _, c := range cases {
		if got := InferValue(c.in); got != c.want {
			t.Fatalf("InferValue(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestParse_HeaderMap(t *testing.T) {
	t.Parallel()

	p := NewParser(Options{HeaderMap: map[string]string{"Speed limit": "limit_mph"}})
	recs, err := p.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if recs[0]["limit_mph"] != "30" {
		t.Fatalf("limit_mph: %#v", recs[0])
	}
}

func TestParse_BOM(t *testing.T) {
	t.Parallel()

	t.Run("utf8", func(t *testing.T) {
		t.Parallel()
		recs, err := NewParser(Options{}).Parse(strings.NewReader("\ufeff" + sample))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if _, ok := recs[0]["accident_index"]; !ok {
			t.Fatalf("BOM leaked into header: %#v", recs[0])
		}
	})

	t.Run("utf16le", func(t *testing.T) {
		t.Parallel()
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		var buf bytes.Buffer
		w := transform.NewWriter(&buf, enc)
		if _, err := w.Write([]byte(sample)); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		recs, err := NewParser(Options{}).Parse(&buf)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if recs[0]["accident_index"] != "2020010219808" {
			t.Fatalf("utf16 row: %#v", recs[0])
		}
	})
}

func TestParse_StrictWidth(t *testing.T) {
	t.Parallel()

	in := "a,b,c\n1,2,3\n4,5\n6,7,8\n"
	_, err := NewParser(Options{}).Parse(strings.NewReader(in))
	if !errors.Is(err, ErrRowWidth) {
		t.Fatalf("expected ErrRowWidth, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error should name line 3: %v", err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := NewParser(Options{}).Parse(strings.NewReader("")); err == nil {
		t.Fatal("expected header error on empty input")
	}
	recs, err := NewParser(Options{}).Parse(strings.NewReader("a,b\n"))
	if err != nil || len(recs) != 0 {
		t.Fatalf("header only: %d rows, %v", len(recs), err)
	}
}

func TestStream_LinesAndStop(t *testing.T) {
	t.Parallel()

	in := "a,b\n\"multi\nline\",1\nx,2\ny,3\n"
	var lines []int
	stop := errors.New("stop")
	err := NewParser(Options{}).Stream(context.Background(), strings.NewReader(in), func(line int, rec records.Record) error {
		lines = append(lines, line)
		if rec["a"] == "x" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if !reflect.DeepEqual(lines, []int{2, 4}) {
		t.Fatalf("lines = %v, want [2 4]", lines)
	}
}

func TestStream_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewParser(Options{}).Stream(ctx, strings.NewReader(sample), func(int, records.Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("accident_index,speed_limit,latitude,time\n")
	for i := 0; i < 10_000; i++ {
		sb.WriteString("2020010219808,30,51.508057,09:00\n")
	}
	data := sb.String()
	p := NewParser(Options{TrimSpace: true, InferTypes: true})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(strings.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
