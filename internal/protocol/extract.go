package protocol

import "encoding/json"

// ErrCodeKey is the response field carrying the device-reported result
// code. Zero means success.
const ErrCodeKey = "err_code"

// ParseResponse parses decoded response text into a generic JSON tree.
func ParseResponse(text string) (any, error) {
	var root any
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		return nil, err
	}
	return root, nil
}

// Extract walks a parsed response left to right through nested objects
// and returns the value at the end of the path.
//
// The first missing key at any depth fails with KeyNotAvailableError
// carrying the full original response. There are no partial results:
// either the whole path resolves or the call fails.
func Extract(root any, path ...string) (any, error) {
	current := root
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, &KeyNotAvailableError{Key: key, Response: root}
		}
		next, ok := obj[key]
		if !ok {
			return nil, &KeyNotAvailableError{Key: key, Response: root}
		}
		current = next
	}
	return current, nil
}

// AsInt64 coerces an extracted leaf to an integer. JSON numbers decode
// as float64; values with a fractional part do not round silently.
func AsInt64(v any) (int64, error) {
	f, ok := v.(float64)
	if !ok || f != float64(int64(f)) {
		return 0, &ValueShapeError{Want: "integer", Got: v}
	}
	return int64(f), nil
}

// AsFloat64 coerces an extracted leaf to a number.
func AsFloat64(v any) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, &ValueShapeError{Want: "number", Got: v}
	}
	return f, nil
}

// AsString coerces an extracted leaf to a string.
func AsString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ValueShapeError{Want: "string", Got: v}
	}
	return s, nil
}

// AsArray coerces an extracted leaf to a JSON array.
func AsArray(v any) ([]any, error) {
	a, ok := v.([]any)
	if !ok {
		return nil, &ValueShapeError{Want: "array", Got: v}
	}
	return a, nil
}

// AsObject coerces an extracted leaf to a JSON object.
func AsObject(v any) (map[string]any, error) {
	o, ok := v.(map[string]any)
	if !ok {
		return nil, &ValueShapeError{Want: "object", Got: v}
	}
	return o, nil
}
