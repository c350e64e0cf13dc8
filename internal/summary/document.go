// Package summary loads k6 summary exports and extracts the statistics
// shown in the stress report.
package summary

import (
	"errors"
	"math"
	"sort"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a summary export is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Document is a parsed k6 summary export:
//
//	{"metrics": {"http_reqs": {"values": {"count": 120, "rate": 11.9}}}}
//
// A nil *Document stands for a missing or malformed export and yields
// null for every statistic.
type Document struct {
	groups map[string]gjson.Result
}

// ParseDocument parses a summary export. The whole input must be valid
// JSON; there are no partial results.
func ParseDocument(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := members(gjson.ParseBytes(data))

	// Metric names are looked up literally; they may contain path syntax
	// such as "http_req_duration{expected_response:true}".
	return &Document{
		groups: members(root["metrics"]),
	}, nil
}

// members returns the members of a JSON object keyed by their unescaped
// names. When a key repeats, the last occurrence wins. Non-objects have no
// members.
func members(obj gjson.Result) map[string]gjson.Result {
	if !obj.IsObject() {
		return nil
	}

	m := make(map[string]gjson.Result)
	obj.ForEach(func(key, value gjson.Result) bool {
		m[key.Str] = value
		return true
	})
	return m
}

// Stat returns the named statistic of a metric group. Missing groups,
// missing statistics, non-numeric and out-of-range values are null.
func (d *Document) Stat(metric, stat string) Value {
	if d == nil {
		return Null
	}

	group, ok := d.groups[metric]
	if !ok {
		return Null
	}

	value, ok := members(members(group)["values"])[stat]
	if !ok || value.Type != gjson.Number {
		return Null
	}

	n := value.Float()
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return Null
	}
	return Of(n)
}

// Metrics returns the sorted names of the metric groups in the export.
func (d *Document) Metrics() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.groups))
	for name := range d.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
