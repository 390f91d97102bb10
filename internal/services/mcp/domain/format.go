package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Formatters map one upstream record to one text block ending in the block
// separator. They substitute placeholders for missing fields and never
// fail, so a partially-populated record still renders.

// blockSeparator terminates every formatted block so blocks can be joined
// uniformly.
const blockSeparator = "---"

// stringField reads a string field from a record, falling back when the
// field is absent or empty.
func stringField(record gjson.Result, path, fallback string) string {
	if value := record.Get(path).String(); value != "" {
		return value
	}
	return fallback
}

// joinValues comma-joins the string rendering of every element.
func joinValues(values []gjson.Result) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, value.String())
	}
	return strings.Join(parts, ", ")
}

// lineNames comma-joins the name of every serving line on a record.
func lineNames(record gjson.Result) string {
	lines := record.Get("lines").Array()
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, line.Get("name").String())
	}
	return strings.Join(parts, ", ")
}

// propertyKeysByCategory collects the key of every additional property in
// the given category.
func propertyKeysByCategory(record gjson.Result, category string) []string {
	var keys []string
	for _, prop := range record.Get("additionalProperties").Array() {
		if prop.Get("category").String() == category {
			keys = append(keys, prop.Get("key").String())
		}
	}
	return keys
}

// formatLineStatus renders a line record as a status block. The first
// status entry supplies the severity description and optional reason.
func formatLineStatus(line gjson.Result) string {
	name := stringField(line, "name", "Unknown Line")
	status := "Unknown"
	reason := ""

	if statuses := line.Get("lineStatuses").Array(); len(statuses) > 0 {
		status = stringField(statuses[0], "statusSeverityDescription", "Unknown")
		reason = statuses[0].Get("reason").String()
	}

	formatted := fmt.Sprintf("Line: %s\nStatus: %s", name, status)
	if reason != "" {
		formatted += "\nReason: " + reason
	}
	return formatted + "\n" + blockSeparator
}

// formatArrival renders an arrival prediction. The expected arrival is
// reported as whole minutes from now; predictions at or past now render as
// "Due" and unparsable timestamps as "Time unknown".
func formatArrival(arrival gjson.Result, now time.Time) string {
	line := stringField(arrival, "lineName", "Unknown Line")
	destination := stringField(arrival, "destinationName", "Unknown Destination")
	platform := stringField(arrival, "platformName", "Unknown Platform")

	timeDesc := "Time unknown"
	if expected, err := time.Parse(time.RFC3339, arrival.Get("expectedArrival").String()); err == nil {
		if minutes := int(expected.Sub(now).Minutes()); minutes > 0 {
			timeDesc = fmt.Sprintf("%d minutes", minutes)
		} else {
			timeDesc = "Due"
		}
	}

	return fmt.Sprintf("Line: %s\nPlatform: %s\nDestination: %s\nArrival: %s\n%s",
		line, platform, destination, timeDesc, blockSeparator)
}

// formatBikePoint renders a bike point with its dock counts. The counts
// live in an unordered key/value property list.
func formatBikePoint(point gjson.Result) string {
	name := stringField(point, "commonName", "Unknown Location")
	bikes := "Unknown"
	docks := "Unknown"

	for _, prop := range point.Get("additionalProperties").Array() {
		switch prop.Get("key").String() {
		case "NbBikes":
			bikes = stringField(prop, "value", "Unknown")
		case "NbEmptyDocks":
			docks = stringField(prop, "value", "Unknown")
		}
	}

	return fmt.Sprintf("Location: %s\nBikes Available: %s\nEmpty Docks: %s\n%s",
		name, bikes, docks, blockSeparator)
}

// formatStationInfo renders a station detail record. Facility and
// accessibility sections appear only when the record carries properties in
// those categories.
func formatStationInfo(station gjson.Result) string {
	name := stringField(station, "commonName", "Unknown Station")
	modes := joinValues(station.Get("modes").Array())
	zones := joinValues(station.Get("zones").Array())
	lines := lineNames(station)

	formatted := fmt.Sprintf("Station: %s\nTransport Modes: %s\nZones: %s\nLines: %s\n",
		name, modes, zones, lines)

	if facilities := propertyKeysByCategory(station, "Facility"); len(facilities) > 0 {
		formatted += fmt.Sprintf("Facilities: %s\n", strings.Join(facilities, ", "))
	}
	if accessibility := propertyKeysByCategory(station, "Accessibility"); len(accessibility) > 0 {
		formatted += fmt.Sprintf("Accessibility: %s\n", strings.Join(accessibility, ", "))
	}

	return formatted + blockSeparator
}

// formatNearbyStop renders a stop returned by a radius search.
func formatNearbyStop(stop gjson.Result) string {
	name := stringField(stop, "commonName", "Unknown Location")
	distance := stop.Get("distance").Float()
	modes := joinValues(stop.Get("modes").Array())

	return fmt.Sprintf("Stop: %s\nDistance: %.0fm\nModes: %s\nLines: %s\n%s",
		name, distance, modes, lineNames(stop), blockSeparator)
}
