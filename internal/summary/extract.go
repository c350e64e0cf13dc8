package summary

import (
	"bytes"
	"encoding/json"
)

// Field names one statistic shown (or kept) for a run.
type Field string

const (
	FieldRequests          Field = "http_reqs_count"
	FieldRequestRate       Field = "http_reqs_rate"
	FieldDurationAvg       Field = "http_req_duration_avg"
	FieldDurationMin       Field = "http_req_duration_min"
	FieldDurationMax       Field = "http_req_duration_max"
	FieldDurationP95       Field = "http_req_duration_p95"
	FieldFailedRate        Field = "http_req_failed_rate"
	FieldFailedCount       Field = "http_req_failed_count"
	FieldIterations        Field = "iterations"
	FieldVUsMax            Field = "vus_max"
	FieldIterationDuration Field = "iteration_duration_avg"
)

// Source locates a statistic inside a summary export:
// metrics.<Metric>.values.<Stat>.
type Source struct {
	Metric string
	Stat   string
}

// Rule maps a field to where it is read from. Fallback is consulted only
// when Primary is absent or null; a present zero is kept.
type Rule struct {
	Field    Field
	Primary  Source
	Fallback *Source
}

// Rules lists every extracted field in output order.
//
// The failed count reads "passes" before "fails". For http_req_failed a
// pass is a failed request, so the fallback counts the opposite outcome.
var Rules = []Rule{
	{Field: FieldRequests, Primary: Source{"http_reqs", "count"}},
	{Field: FieldRequestRate, Primary: Source{"http_reqs", "rate"}},
	{Field: FieldDurationAvg, Primary: Source{"http_req_duration", "avg"}},
	{Field: FieldDurationMin, Primary: Source{"http_req_duration", "min"}},
	{Field: FieldDurationMax, Primary: Source{"http_req_duration", "max"}},
	{Field: FieldDurationP95, Primary: Source{"http_req_duration", "p(95)"}, Fallback: &Source{"http_req_duration", "med"}},
	{Field: FieldFailedRate, Primary: Source{"http_req_failed", "rate"}},
	{Field: FieldFailedCount, Primary: Source{"http_req_failed", "passes"}, Fallback: &Source{"http_req_failed", "fails"}},
	{Field: FieldIterations, Primary: Source{"iterations", "count"}},
	{Field: FieldVUsMax, Primary: Source{"vus_max", "value"}, Fallback: &Source{"vus", "value"}},
	{Field: FieldIterationDuration, Primary: Source{"iteration_duration", "avg"}},
}

// Metrics holds the extracted statistics of one run.
type Metrics struct {
	values map[Field]Value
}

// Extract reads every rule from doc. A nil doc yields all-null metrics.
// Failures are per field: one missing statistic never affects another.
func Extract(doc *Document) Metrics {
	values := make(map[Field]Value, len(Rules))

	for _, rule := range Rules {
		v := doc.Stat(rule.Primary.Metric, rule.Primary.Stat)
		if rule.Fallback != nil {
			v = v.Or(doc.Stat(rule.Fallback.Metric, rule.Fallback.Stat))
		}
		values[rule.Field] = v
	}

	return Metrics{values: values}
}

// Get returns the value of f; unknown fields are null.
func (m Metrics) Get(f Field) Value {
	return m.values[f]
}

// IsEmpty reports whether every field is null.
func (m Metrics) IsEmpty() bool {
	for _, v := range m.values {
		if !v.IsNull() {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the fields as an object in rule order.
func (m Metrics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, rule := range Rules {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(string(rule.Field))
		if err != nil {
			return nil, err
		}
		value, err := m.Get(rule.Field).MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
