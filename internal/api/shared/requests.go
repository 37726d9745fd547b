package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// MaxRequestBodyBytes bounds JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into the given value.
// Exactly one JSON value is accepted; unknown fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}

	if dec.More() {
		return fmt.Errorf("unexpected data after JSON body")
	}

	return nil
}

// ValidateRequest validates the given struct. Types with a Validate method
// validate themselves; everything else is checked against its validate tags.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
