package server

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/steuerkit/rechner/internal/calculation"
	"github.com/steuerkit/rechner/internal/letter"
	"github.com/steuerkit/rechner/internal/rentlevel"
)

// errBadRequest marks bodies that could not be decoded.
var errBadRequest = errors.New("bad request")

// ErrorResponse is the error envelope of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Field            string `json:"field,omitempty"`
}

type errorMapping struct {
	sentinel error
	status   int
	code     string
}

// errorMappings is checked in order; the first sentinel matched by errors.Is wins.
var errorMappings = []errorMapping{
	{calculation.ErrIndeterminate, http.StatusUnprocessableEntity, "indeterminate"},
	{calculation.ErrInvalidTaxClass, http.StatusBadRequest, "invalid_tax_class"},
	{calculation.ErrDateOrder, http.StatusBadRequest, "date_order"},
	{calculation.ErrUnknownSelector, http.StatusBadRequest, "unknown_selector"},
	{calculation.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{letter.ErrUnknownOption, http.StatusBadRequest, "unknown_selector"},
	{rentlevel.ErrUnknownCity, http.StatusBadRequest, "unknown_city"},
	{errBadRequest, http.StatusBadRequest, "bad_request"},
}

// classify returns the status code and error code for err.
func classify(err error) (int, string) {
	m, ok := lo.Find(errorMappings, func(m errorMapping) bool { return errors.Is(err, m.sentinel) })
	if !ok {
		return http.StatusInternalServerError, "internal_error"
	}
	return m.status, m.code
}

// writeError writes the envelope for err. Internal errors carry no description.
func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	resp := ErrorResponse{Error: code}
	if status != http.StatusInternalServerError {
		resp.ErrorDescription = err.Error()
		var inputErr *calculation.InputError
		if errors.As(err, &inputErr) {
			resp.Field = inputErr.Field
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
