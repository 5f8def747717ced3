package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apperrors "hotelbooking/pkg/errors"

	"github.com/julienschmidt/httprouter"
)

// PathInt reads a positive integer path parameter.
func PathInt(ps httprouter.Params, name string) (int, error) {
	raw := ps.ByName(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, raw))
	}
	return v, nil
}

// DecodeJSON decodes r's body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperrors.InvalidInput("Request body too large").
				WithDetails(map[string]any{"limit": maxErr.Limit})
		}
		return apperrors.InvalidInput("Invalid request body").
			WithDetails(map[string]any{"error": err.Error()})
	}
	return nil
}
