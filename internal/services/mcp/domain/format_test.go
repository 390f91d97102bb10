package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func TestFormatLineStatus(t *testing.T) {
	t.Run("good service", func(t *testing.T) {
		line := gjson.Parse(`{"name":"Victoria","lineStatuses":[{"statusSeverityDescription":"Good Service"}]}`)
		got := formatLineStatus(line)
		want := "Line: Victoria\nStatus: Good Service\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("includes reason when present", func(t *testing.T) {
		line := gjson.Parse(`{"name":"Northern","lineStatuses":[{"statusSeverityDescription":"Minor Delays","reason":"signal failure at Bank"}]}`)
		got := formatLineStatus(line)
		want := "Line: Northern\nStatus: Minor Delays\nReason: signal failure at Bank\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("first status entry wins", func(t *testing.T) {
		line := gjson.Parse(`{"name":"Central","lineStatuses":[{"statusSeverityDescription":"Severe Delays"},{"statusSeverityDescription":"Good Service"}]}`)
		got := formatLineStatus(line)
		if !strings.Contains(got, "Status: Severe Delays") {
			t.Errorf("expected first status entry, got %q", got)
		}
	})

	t.Run("empty record renders placeholders", func(t *testing.T) {
		got := formatLineStatus(gjson.Parse(`{}`))
		want := "Line: Unknown Line\nStatus: Unknown\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("pure", func(t *testing.T) {
		line := gjson.Parse(`{"name":"Victoria"}`)
		if formatLineStatus(line) != formatLineStatus(line) {
			t.Error("expected identical output for identical input")
		}
	})
}

func TestFormatArrival(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("minutes until arrival", func(t *testing.T) {
		arrival := gjson.Parse(`{"lineName":"Victoria","platformName":"Platform 4","destinationName":"Brixton","expectedArrival":"2024-03-01T12:05:30Z"}`)
		got := formatArrival(arrival, now)
		want := "Line: Victoria\nPlatform: Platform 4\nDestination: Brixton\nArrival: 5 minutes\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("due when at or past now", func(t *testing.T) {
		arrival := gjson.Parse(`{"expectedArrival":"2024-03-01T11:59:00Z"}`)
		if got := formatArrival(arrival, now); !strings.Contains(got, "Arrival: Due") {
			t.Errorf("expected Due, got %q", got)
		}
		arrival = gjson.Parse(`{"expectedArrival":"2024-03-01T12:00:30Z"}`)
		if got := formatArrival(arrival, now); !strings.Contains(got, "Arrival: Due") {
			t.Errorf("expected Due for sub-minute arrival, got %q", got)
		}
	})

	t.Run("unparsable timestamp", func(t *testing.T) {
		arrival := gjson.Parse(`{"expectedArrival":"not-a-time"}`)
		if got := formatArrival(arrival, now); !strings.Contains(got, "Arrival: Time unknown") {
			t.Errorf("expected Time unknown, got %q", got)
		}
	})

	t.Run("empty record renders placeholders", func(t *testing.T) {
		got := formatArrival(gjson.Parse(`{}`), now)
		want := "Line: Unknown Line\nPlatform: Unknown Platform\nDestination: Unknown Destination\nArrival: Time unknown\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestFormatBikePoint(t *testing.T) {
	t.Run("extracts counts from property list", func(t *testing.T) {
		point := gjson.Parse(`{"commonName":"Soho Square","additionalProperties":[
			{"key":"TerminalName","value":"001023"},
			{"key":"NbEmptyDocks","value":"12"},
			{"key":"NbBikes","value":"5"}]}`)
		got := formatBikePoint(point)
		want := "Location: Soho Square\nBikes Available: 5\nEmpty Docks: 12\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("empty record renders placeholders", func(t *testing.T) {
		got := formatBikePoint(gjson.Parse(`{}`))
		want := "Location: Unknown Location\nBikes Available: Unknown\nEmpty Docks: Unknown\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestFormatStationInfo(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		station := gjson.Parse(`{
			"commonName":"Green Park",
			"modes":["tube"],
			"zones":[1],
			"lines":[{"name":"Victoria"},{"name":"Jubilee"},{"name":"Piccadilly"}],
			"additionalProperties":[
				{"category":"Facility","key":"Lifts"},
				{"category":"Accessibility","key":"Step free access"},
				{"category":"Facility","key":"Toilets"},
				{"category":"Geo","key":"Ignored"}]}`)
		got := formatStationInfo(station)
		want := "Station: Green Park\n" +
			"Transport Modes: tube\n" +
			"Zones: 1\n" +
			"Lines: Victoria, Jubilee, Piccadilly\n" +
			"Facilities: Lifts, Toilets\n" +
			"Accessibility: Step free access\n" +
			"---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("optional sections omitted", func(t *testing.T) {
		station := gjson.Parse(`{"commonName":"Bank","modes":["tube","dlr"],"zones":[1],"lines":[{"name":"Central"}]}`)
		got := formatStationInfo(station)
		if strings.Contains(got, "Facilities:") || strings.Contains(got, "Accessibility:") {
			t.Errorf("expected optional sections to be omitted, got %q", got)
		}
		if !strings.Contains(got, "Transport Modes: tube, dlr") {
			t.Errorf("expected comma-joined modes, got %q", got)
		}
	})

	t.Run("empty record renders placeholders", func(t *testing.T) {
		got := formatStationInfo(gjson.Parse(`{}`))
		want := "Station: Unknown Station\nTransport Modes: \nZones: \nLines: \n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestFormatNearbyStop(t *testing.T) {
	t.Run("rounds distance to whole meters", func(t *testing.T) {
		stop := gjson.Parse(`{"commonName":"Angel","distance":156.7,"modes":["tube"],"lines":[{"name":"Northern"}]}`)
		got := formatNearbyStop(stop)
		want := "Stop: Angel\nDistance: 157m\nModes: tube\nLines: Northern\n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("empty record renders placeholders", func(t *testing.T) {
		got := formatNearbyStop(gjson.Parse(`{}`))
		want := "Stop: Unknown Location\nDistance: 0m\nModes: \nLines: \n---"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}
