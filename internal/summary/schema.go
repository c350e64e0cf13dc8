package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// exportSchema describes the parts of a k6 summary export the report reads.
// Other keys (root_group, state, thresholds, ...) are left unconstrained.
const exportSchema = `{
  "type": "object",
  "required": ["metrics"],
  "properties": {
    "metrics": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["values"],
        "properties": {
          "values": {
            "type": "object",
            "additionalProperties": {"type": ["number", "null"]}
          }
        }
      }
    }
  }
}`

// Violations is the list of schema violations found in one export.
type Violations []error

func (v Violations) Error() string {
	if len(v) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range v {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// SchemaChecker reports where a summary export departs from the expected
// shape. Departures do not stop extraction; they only explain why fields
// come out null.
type SchemaChecker struct {
	schema *jsonschema.Schema
}

// NewSchemaChecker compiles the summary export schema.
func NewSchemaChecker() (*SchemaChecker, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("summary-export.json", strings.NewReader(exportSchema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	schema, err := compiler.Compile("summary-export.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return &SchemaChecker{schema: schema}, nil
}

// Check validates raw JSON against the export schema and returns every
// violation, or nil if the export conforms.
func (c *SchemaChecker) Check(data []byte) Violations {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Violations{fmt.Errorf("invalid JSON: %w", err)}
	}

	err := c.schema.Validate(doc)
	if err == nil {
		return nil
	}

	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return leafViolations(validationErr)
	}
	return Violations{err}
}

// leafViolations flattens a validation error tree into its leaf causes.
func leafViolations(err *jsonschema.ValidationError) Violations {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return Violations{fmt.Errorf("%s: %s", location, err.Message)}
	}

	var violations Violations
	for _, cause := range err.Causes {
		violations = append(violations, leafViolations(cause)...)
	}
	return violations
}
