package helpers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"
)

// Error is a struct that represents an error returned over the HTTP façade
type Error struct {
	Title string `json:"title"`
	Err   any    `json:"details"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("Error: [%s] %+v", e.Title, e.Err)
	}
	return fmt.Sprintf("Error: [%s]", e.Title)
}

// ErrorResponse is a struct that represents an error response in JSON from REST API
type ErrorResponse struct {
	Error *Error `json:"error"`
}

// NewError creates a bare titled error
func NewError(title string) *Error {
	return &Error{Title: title}
}

// NewErrorDetails creates a titled error carrying structured details
func NewErrorDetails(title string, err any) *Error {
	return &Error{Title: title, Err: err}
}

// NewErrorFromError maps any error the engine can produce onto the façade's Error shape
func NewErrorFromError(err error) *Error {
	if err == nil {
		return nil
	}

	if helperErr, ok := err.(*Error); ok {
		return helperErr
	}

	if jsonUnmarshalTypeError, ok := err.(*json.UnmarshalTypeError); ok {
		return &Error{Title: "json_type_error", Err: formatJSONUnmarshalTypeError(jsonUnmarshalTypeError)}
	}
	if jsonSyntaxError, ok := err.(*json.SyntaxError); ok {
		return &Error{Title: "json_syntax_error", Err: map[string]any{"position": jsonSyntaxError.Offset, "error": jsonSyntaxError.Error()}}
	}
	if validatorErr, ok := err.(validator.ValidationErrors); ok {
		return &Error{Title: "validation_error", Err: formatValidationErrors(validatorErr)}
	}

	return NewErrorDetails("internal_server_error", err.Error())
}

func formatValidationErrors(err validator.ValidationErrors) []map[string]any {
	v := make([]map[string]any, 0)
	for _, e := range err {
		splits := strings.SplitN(e.Namespace(), ".", 2)
		namespace := ""
		if len(splits) > 1 {
			namespace = splits[1]
		}
		v = append(v, map[string]any{
			"field":           e.Field(),
			"namespace":       namespace,
			"type":            e.Kind().String(),
			"validation":      e.Tag(),
			"validationParam": e.Param(),
			"value":           e.Value(),
		})
	}
	return v
}

func formatJSONUnmarshalTypeError(err *json.UnmarshalTypeError) []map[string]any {
	return []map[string]any{
		{
			"field":    err.Field,
			"expected": err.Type.Kind().String(),
			"actual":   err.Value,
		},
	}
}

// Problem404 returns a generic RFC7807 not-found problem for unmatched routes
func Problem404() *problems.Problem {
	return problems.NewStatusProblem(404)
}
