package homework

import (
	"errors"
	"fmt"
)

// Kind classifies failures of a single poll cycle.
type Kind string

const (
	KindTransport     Kind = "TRANSPORT"
	KindEndpoint      Kind = "ENDPOINT"
	KindClient        Kind = "CLIENT"
	KindServer        Kind = "SERVER"
	KindShape         Kind = "SHAPE"
	KindMissingKey    Kind = "MISSING_KEY"
	KindMissingField  Kind = "MISSING_FIELD"
	KindUnknownStatus Kind = "UNKNOWN_STATUS"
)

// Error is returned by every fallible step of a cycle.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind       Kind
	Endpoint   string // transport kinds
	StatusCode int    // transport kinds, 0 when no response was received
	Field      string // shape and field kinds
	Value      string // offending value, e.g. an unknown status
	Err        error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindEndpoint:
		msg = fmt.Sprintf("Не найден endpoint адрес %s. Код ответа API: %d", e.Endpoint, e.StatusCode)
	case KindClient:
		msg = fmt.Sprintf("Ошибка в клиентской части при запросе к %s, код: %d", e.Endpoint, e.StatusCode)
	case KindServer:
		msg = fmt.Sprintf("Ошибка на сервере при запросе к %s, код: %d", e.Endpoint, e.StatusCode)
	case KindTransport:
		if e.StatusCode != 0 {
			msg = fmt.Sprintf("Ошибка при запросе к %s, код: %d", e.Endpoint, e.StatusCode)
		} else {
			msg = fmt.Sprintf("Ошибка при запросе к %s", e.Endpoint)
		}
	case KindShape:
		if e.Value != "" {
			msg = fmt.Sprintf("Неверный формат данных в ответе от API: %s (%s)", e.Field, e.Value)
		} else {
			msg = fmt.Sprintf("Неверный формат данных в ответе от API: %s", e.Field)
		}
	case KindMissingKey:
		msg = fmt.Sprintf("В ответе API отсутствует ожидаемый ключ %s", e.Field)
	case KindMissingField:
		msg = fmt.Sprintf("Отсутствует поле %s в данных о работе", e.Field)
	case KindUnknownStatus:
		msg = fmt.Sprintf("Недокументированный статус работы: %q", e.Value)
	default:
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Endpoint == "" && t.StatusCode == 0 && t.Field == "" && t.Value == "" && t.Err == nil
}

// Sentinels for errors.Is checks.
var (
	ErrTransport     = &Error{Kind: KindTransport}
	ErrEndpoint      = &Error{Kind: KindEndpoint}
	ErrClient        = &Error{Kind: KindClient}
	ErrServer        = &Error{Kind: KindServer}
	ErrShape         = &Error{Kind: KindShape}
	ErrMissingKey    = &Error{Kind: KindMissingKey}
	ErrMissingField  = &Error{Kind: KindMissingField}
	ErrUnknownStatus = &Error{Kind: KindUnknownStatus}
)

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
