package homework

import "fmt"

// JSON keys of a single homework object in the API response.
const (
	FieldName   = "homework_name"
	FieldStatus = "status"
)

// Record is one homework entry from the API response.
type Record struct {
	Name   string
	Status Status
}

// Message renders the notification line for the record.
// The status is expected to be a known one; ParseRecord guarantees that.
func (r Record) Message() string {
	verdict, _ := Verdict(r.Status)
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", r.Name, verdict)
}
