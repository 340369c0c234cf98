package homework

// FieldHomeworks is the response key holding the list of changed homeworks.
const FieldHomeworks = "homeworks"

// ValidateResponse checks the decoded API body and returns the raw homework list.
// Individual entries are not inspected here; see ParseRecord.
func ValidateResponse(body any) ([]any, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, &Error{Kind: KindShape, Field: "response", Value: jsonType(body)}
	}
	raw, ok := obj[FieldHomeworks]
	if !ok {
		return nil, &Error{Kind: KindMissingKey, Field: FieldHomeworks}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &Error{Kind: KindShape, Field: FieldHomeworks, Value: jsonType(raw)}
	}
	return list, nil
}

// jsonType names the JSON type of a value produced by encoding/json.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unknown"
	}
}
