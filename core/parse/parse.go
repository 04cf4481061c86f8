package parse

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs parses content as JSON into T, repairing the text with
// jsonrepair and retrying once if the strict decode fails. It exists for
// the array/dict "from text" constructors (stdlib/array.go, stdlib/dict.go),
// which hand it loosely-formed literal text typed by a program author, not
// machine-generated JSON guaranteed to be well-formed.
//
// Type parameters:
//   - T: the target type to parse the string into (a slice or map shape,
//     e.g. []interface{} or map[string]interface{})
//
// Example usage:
//
//	arr, err := ParseStringAs[[]interface{}](`[1, 2, 3]`)
//	dict, err := ParseStringAs[map[string]interface{}](`{name: 'John', age: 30}`)
func ParseStringAs[T any](content string) (T, error) {
	var result T
	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repairedJSON, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err := json.Unmarshal([]byte(repairedJSON), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
	}
	return result, nil
}
