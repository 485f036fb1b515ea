package http

import (
	"fmt"
	"net/http"
	"strconv"
)

// queryInt64 parses an optional integer query parameter. Absence is not an
// error; a value that is present but not an integer maps to
// [ErrInvalidQueryParameter].
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q must be an integer", ErrInvalidQueryParameter, name)
	}
	return &value, nil
}
