package netformat

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/travigo/transitnet/pkg/network"
)

func TestParseStopRecord(t *testing.T) {
	cases := []struct {
		line string
		want StopRecord
	}{
		{"stop0:0:1", StopRecord{Name: "stop0", X: 0, Y: 1}},
		{"Central Station:-4:12", StopRecord{Name: "Central Station", X: -4, Y: 12}},
		{"stop0: 3 : -2 ", StopRecord{Name: "stop0", X: 3, Y: -2}},
	}

	for _, c := range cases {
		got, err := ParseStopRecord(c.line)
		if err != nil {
			t.Fatalf("ParseStopRecord(%q): %v", c.line, err)
		}
		if diff := pretty.Diff(c.want, got); len(diff) > 0 {
			t.Fatalf("ParseStopRecord(%q) mismatch: %v", c.line, diff)
		}
	}
}

func TestParseStopRecordRejects(t *testing.T) {
	cases := []struct {
		line string
		err  error
	}{
		{"stop0:0", ErrFieldCount},
		{"stop0:0:1:2", ErrFieldCount},
		{":0:1", network.ErrNoName},
		{"stop0:zero:1", ErrInvalidInteger},
		{"stop0:1 2:1", ErrInvalidInteger},
		{"stop0:0:", ErrInvalidInteger},
		{"stop,0:0:1", ErrExtraDelimiter},
		{"stop|0:0:1", ErrExtraDelimiter},
	}

	for _, c := range cases {
		_, err := ParseStopRecord(c.line)
		if !IsFormatError(err) {
			t.Fatalf("ParseStopRecord(%q) returned %v, expected a format error", c.line, err)
		}
		if !errors.Is(err, c.err) {
			t.Fatalf("ParseStopRecord(%q) returned %v, expected %v", c.line, err, c.err)
		}
	}
}

func TestParseRouteRecord(t *testing.T) {
	cases := []struct {
		line string
		want RouteRecord
	}{
		{
			"bus,blue,2:stop1|stop3|stop0",
			RouteRecord{Type: network.TransportTypeBus, Name: "blue", Number: 2, Stops: []string{"stop1", "stop3", "stop0"}},
		},
		{
			"ferry,harbour, 9 :",
			RouteRecord{Type: network.TransportTypeFerry, Name: "harbour", Number: 9, Stops: []string{}},
		},
		{
			"train,,7:a",
			RouteRecord{Type: network.TransportTypeTrain, Name: "", Number: 7, Stops: []string{"a"}},
		},
	}

	for _, c := range cases {
		got, err := ParseRouteRecord(c.line)
		if err != nil {
			t.Fatalf("ParseRouteRecord(%q): %v", c.line, err)
		}
		if diff := pretty.Diff(c.want, got); len(diff) > 0 {
			t.Fatalf("ParseRouteRecord(%q) mismatch: %v", c.line, diff)
		}
	}
}

func TestParseRouteRecordRejects(t *testing.T) {
	cases := []struct {
		line string
		err  error
	}{
		{"bus,blue,2", ErrFieldCount},
		{"bus,2:stop0", ErrFieldCount},
		{"bus,blue,2,3:stop0", ErrFieldCount},
		{"bus,blue,2:stop0:stop1", ErrExtraDelimiter},
		{"bus,blue,2:stop0,stop1", ErrExtraDelimiter},
		{"bus,bl|ue,2:stop0", ErrExtraDelimiter},
		{"tram,blue,2:stop0", network.ErrUnknownTransportType},
		{"Bus,blue,2:stop0", network.ErrUnknownTransportType},
		{"bus,blue,two:stop0", ErrInvalidInteger},
		{"bus,blue,2 2:stop0", ErrInvalidInteger},
		{"bus,blue,2:stop0||stop1", ErrEmptyStopSlot},
		{"bus,blue,2:|stop0", ErrEmptyStopSlot},
		{"bus,blue,2:stop0|", ErrEmptyStopSlot},
	}

	for _, c := range cases {
		_, err := ParseRouteRecord(c.line)
		if !IsFormatError(err) {
			t.Fatalf("ParseRouteRecord(%q) returned %v, expected a format error", c.line, err)
		}
		if !errors.Is(err, c.err) {
			t.Fatalf("ParseRouteRecord(%q) returned %v, expected %v", c.line, err, c.err)
		}
	}
}

func TestParseVehicleRecord(t *testing.T) {
	cases := []struct {
		line string
		want VehicleRecord
	}{
		{"bus,412,20,2,ABC123", VehicleRecord{ID: 412, Capacity: 20, RouteNumber: 2, Detail: network.BusDetail{Registration: "ABC123"}}},
		{"train,123,30,1,2", VehicleRecord{ID: 123, Capacity: 30, RouteNumber: 1, Detail: network.TrainDetail{CarriageCount: 2}}},
		{"train,5,100,7,0", VehicleRecord{ID: 5, Capacity: 100, RouteNumber: 7, Detail: network.TrainDetail{CarriageCount: 1}}},
		{"ferry,9,200,4,", VehicleRecord{ID: 9, Capacity: 200, RouteNumber: 4, Detail: network.FerryDetail{FerryType: network.DefaultFerryType}}},
		{"ferry,9,200,4,Mirimar", VehicleRecord{ID: 9, Capacity: 200, RouteNumber: 4, Detail: network.FerryDetail{FerryType: "Mirimar"}}},
	}

	for _, c := range cases {
		got, err := ParseVehicleRecord(c.line)
		if err != nil {
			t.Fatalf("ParseVehicleRecord(%q): %v", c.line, err)
		}
		if diff := pretty.Diff(c.want, got); len(diff) > 0 {
			t.Fatalf("ParseVehicleRecord(%q) mismatch: %v", c.line, diff)
		}
	}
}

func TestParseVehicleRecordRejects(t *testing.T) {
	cases := []struct {
		line string
		err  error
	}{
		{"bus,412,20,2", ErrFieldCount},
		{"bus,412,20,2,ABC,123", ErrFieldCount},
		{"tram,412,20,2,ABC123", network.ErrUnknownTransportType},
		{"bus,four,20,2,ABC123", ErrInvalidInteger},
		{"bus,412,,2,ABC123", ErrInvalidInteger},
		{"bus,412,20,route,ABC123", ErrInvalidInteger},
		{"train,123,30,1,two", ErrInvalidInteger},
		{"bus,412,20,2,ABC:123", ErrExtraDelimiter},
		{"bus,412,20,2,ABC|123", ErrExtraDelimiter},
	}

	for _, c := range cases {
		_, err := ParseVehicleRecord(c.line)
		if !IsFormatError(err) {
			t.Fatalf("ParseVehicleRecord(%q) returned %v, expected a format error", c.line, err)
		}
		if !errors.Is(err, c.err) {
			t.Fatalf("ParseVehicleRecord(%q) returned %v, expected %v", c.line, err, c.err)
		}
	}
}

func TestRecordStringsInvertParsing(t *testing.T) {
	for _, line := range []string{"stop0:0:1", "stop1:-1:0"} {
		record, err := ParseStopRecord(line)
		if err != nil {
			t.Fatal(err)
		}
		if got := record.String(); got != line {
			t.Fatalf("stop record for %q encoded as %q", line, got)
		}
	}

	for _, line := range []string{"train,red,1:stop0|stop2|stop1", "ferry,harbour,9:", "bus,,3:a"} {
		record, err := ParseRouteRecord(line)
		if err != nil {
			t.Fatal(err)
		}
		if got := record.String(); got != line {
			t.Fatalf("route record for %q encoded as %q", line, got)
		}
	}

	for _, line := range []string{"bus,412,20,2,ABC123", "bus,1,10,3,", "train,42,60,1,3", "ferry,7,150,9,CityCat"} {
		record, err := ParseVehicleRecord(line)
		if err != nil {
			t.Fatal(err)
		}
		if got := record.String(); got != line {
			t.Fatalf("vehicle record for %q encoded as %q", line, got)
		}
	}
}
