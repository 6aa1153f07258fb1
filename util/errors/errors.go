package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/make-os/dao/util"
	"github.com/spf13/cast"
)

// BadFieldError implements error. It describes an error relating to an object and/or field.
type BadFieldError struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
	Index *int   `json:"index,omitempty"`
	Data  interface{}
}

func (b *BadFieldError) Is(target error) bool {
	_, ok := target.(*BadFieldError)
	return ok
}

func (b *BadFieldError) Error() string {
	return fieldErrorWithIndex(b.Index, b.Field, b.Msg).Error()
}

// FieldErrorWithIndex creates an instance of BadFieldError with an index
func FieldErrorWithIndex(index int, field string, msg string, data ...interface{}) error {
	e := &BadFieldError{Field: field, Msg: msg}
	if index > -1 {
		e.Index = &index
	}
	if len(data) > 0 {
		e.Data = data[0]
	}
	return e
}

// fieldError is used to describe an error concerning an objects field/property
func fieldError(field, err string) error {
	return fmt.Errorf("%s", mapToJSONWithNoBrackets(map[string]string{
		"field": field,
		"msg":   err,
	}))
}

func mapToJSONWithNoBrackets(m map[string]string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(m)
	data := strings.TrimSpace(buf.String())
	return strings.TrimSpace(strings.Trim(strings.Trim(data, "{"), "}"))
}

// fieldErrorWithIndex is used to describe an error concerning a field/property
// of an object contained in list (array or slice).
// If index is -1, it will revert to FieldError
func fieldErrorWithIndex(index *int, field, err string) error {
	if index == nil || *index <= -1 {
		return fieldError(field, err)
	}
	return fmt.Errorf("%s", mapToJSONWithNoBrackets(map[string]string{
		"index": cast.ToString(*index),
		"field": field,
		"msg":   err,
	}))
}

// BadFieldErrorFromStr attempts to convert a string to a BadFieldError.
// It expects the string to match the BadFieldError.Error output.
func BadFieldErrorFromStr(str string) *BadFieldError {
	jsonStr := `{` + str + `}`
	m := make(map[string]string)
	if err := json.Unmarshal([]byte(jsonStr), &m); err != nil {
		return &BadFieldError{Msg: str}
	}
	var fe BadFieldError
	if err := util.DecodeMap(m, &fe); err != nil {
		return &BadFieldError{Msg: str}
	}
	return &fe
}
