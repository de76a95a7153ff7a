package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Request bodies that fail schema validation (unknown fields, missing
// required fields, malformed JSON) are plain client errors; report them as
// 400 instead of huma's default 422.
func init() {
	newError := huma.NewError
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		return newError(status, message, errs...)
	}
}
