package responses

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/abhisek/growthfit/internal/catalog"
)

// document is the on-disk form of a response set. Values are kept as
// written because the schema accepts integral forms such as 4.0 and 4e0.
type document struct {
	Responses []struct {
		QuestionID string      `json:"questionId"`
		Value      json.Number `json:"value"`
	} `json:"responses"`
}

// Decode reads a response document, validates its shape and every value
// against c, and returns the resulting set. Repeated IDs resolve to the last
// entry in the document.
func Decode(r io.Reader, c *catalog.Catalog) (*Set, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &InvalidInputError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	col := NewCollector(c)
	for i, resp := range doc.Responses {
		v, err := integerValue(resp.Value)
		if err != nil {
			return nil, &InvalidInputError{Err: fmt.Errorf("schema validation failed: response %d: %w", i, err)}
		}
		if err := col.Record(resp.QuestionID, v); err != nil {
			return nil, fmt.Errorf("response %d: %w", i, err)
		}
	}
	return col.Set(), nil
}

// integerValue converts a schema-checked number to int. Integral floats
// are accepted; anything else is reported as not an integer.
func integerValue(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("value %s must be an integer between %d and %d", n, math.MinInt32, math.MaxInt32)
	}
	return int(f), nil
}
