package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/platos-api/internal/validation"
	"github.com/go-chi/chi/v5"
)

// platoIDParam is the chi URL parameter holding the plato id
const platoIDParam = "plato_id"

// parsePlatoID reads the plato id from the URL
func parsePlatoID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, platoIDParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.Single("int_parsing",
			"Input should be a valid integer, unable to parse string as an integer",
			"path", platoIDParam)
	}
	return id, nil
}

// decodeBody reads a request body holding exactly one JSON object
// and returns its members. Failures are reported as validation.Errors
func decodeBody(r *http.Request) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, validation.Single("missing", "Field required", "body")
		}
		return nil, validation.Single("json_invalid", "JSON decode error", "body")
	}

	// Anything after the first value makes the whole body invalid
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, validation.Single("json_invalid", "JSON decode error", "body")
	}

	if isNull(raw) {
		return nil, validation.Single("missing", "Field required", "body")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, validation.Single("model_attributes_type",
			"Input should be a valid dictionary or object to extract fields from", "body")
	}
	return fields, nil
}

// decodePlato extracts the plato fields from the request body
// Every rejected field is reported, not just the first. Absent and null
// fields come back nil
func decodePlato(r *http.Request) (*string, *float64, error) {
	fields, err := decodeBody(r)
	if err != nil {
		return nil, nil, err
	}

	var errs validation.Errors

	name, fe := stringField(fields, "name")
	if fe != nil {
		errs = append(errs, *fe)
	}
	precio, fe := floatField(fields, "precio")
	if fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return nil, nil, errs
	}
	return name, precio, nil
}

func stringField(fields map[string]json.RawMessage, key string) (*string, *validation.FieldError) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &validation.FieldError{
			Loc:  []string{"body", key},
			Msg:  "Input should be a valid string",
			Type: "string_type",
		}
	}
	return &s, nil
}

// floatField accepts JSON numbers and numeric strings such as "12.5"
func floatField(fields map[string]json.RawMessage, key string) (*float64, *validation.FieldError) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &validation.FieldError{
			Loc:  []string{"body", key},
			Msg:  "Input should be a valid number",
			Type: "float_type",
		}
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, &validation.FieldError{
			Loc:  []string{"body", key},
			Msg:  "Input should be a valid number, unable to parse string as a number",
			Type: "float_parsing",
		}
	}
	return &f, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
