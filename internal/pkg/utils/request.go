package utils

import (
	"doctor-finder-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"strings"
)

// GetTrimmedQueryParam returns the named query param with surrounding whitespace removed.
func GetTrimmedQueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// GetOptionalFloatQueryParam parses the named query param as a float. An absent
// or blank param yields nil so callers can tell "not given" from zero.
func GetOptionalFloatQueryParam(r *http.Request, name string) (*float64, error) {
	raw := GetTrimmedQueryParam(r, name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, exceptions.ErrInvalidQueryParam(err, name)
	}
	return &value, nil
}
