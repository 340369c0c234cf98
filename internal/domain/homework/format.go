package homework

import "strings"

// ParseRecord extracts a Record from one decoded homework object.
func ParseRecord(raw any) (Record, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Record{}, &Error{Kind: KindShape, Field: "homework", Value: jsonType(raw)}
	}

	nameVal, ok := obj[FieldName]
	if !ok {
		return Record{}, &Error{Kind: KindMissingField, Field: FieldName}
	}
	name, ok := nameVal.(string)
	if !ok {
		return Record{}, &Error{Kind: KindShape, Field: FieldName, Value: jsonType(nameVal)}
	}

	statusVal, _ := obj[FieldStatus].(string)
	status := Status(statusVal)
	if _, known := Verdict(status); !known {
		return Record{}, &Error{Kind: KindUnknownStatus, Field: FieldStatus, Value: statusVal}
	}

	return Record{Name: name, Status: status}, nil
}

// FormatStatus turns one decoded homework object into a notification line.
func FormatStatus(raw any) (string, error) {
	rec, err := ParseRecord(raw)
	if err != nil {
		return "", err
	}
	return rec.Message(), nil
}

// FormatStatuses formats every record and joins the lines with newlines.
// Any bad record fails the whole batch so that nothing is sent partially.
func FormatStatuses(raws []any) (string, error) {
	lines := make([]string, 0, len(raws))
	for _, raw := range raws {
		line, err := FormatStatus(raw)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
