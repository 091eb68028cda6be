// File: request.go
// Role: Boundary form of AddEdge for loosely typed payloads (decoded JSON,
//       scenario files). Presence is checked with go-playground/validator,
//       the weight is parsed by ParseWeight.

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EdgeRequest is an AddEdge call as it arrives from an external caller.
// Weight may be any numeric type, a json.Number or a numeric string.
type EdgeRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
	Weight any    `json:"weight" validate:"required"`
}

// requestValidator reports field names by their json tag.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Validate checks that every required field is present and that Weight
// parses to a valid weight. It returns the parsed weight.
func (r EdgeRequest) Validate() (float64, error) {
	if err := requestValidator.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return 0, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fields, ", "))
		}
		return 0, err
	}

	return ParseWeight(r.Weight)
}

// AddEdgeRequest validates req and applies it with AddEdge.
// Returns ErrMissingField or ErrInvalidWeight; on error the graph is unchanged.
func (g *Graph) AddEdgeRequest(req EdgeRequest) error {
	w, err := req.Validate()
	if err != nil {
		return err
	}

	return g.AddEdge(req.Source, req.Target, w)
}

// ParseWeight converts a loosely typed weight into a float64 and checks that
// it is finite and non-negative.
//
// Accepted: all Go integer and float kinds, json.Number, and strings holding a
// decimal or scientific number (surrounding whitespace ignored).
// nil yields ErrMissingField; anything else invalid yields ErrInvalidWeight.
func ParseWeight(v any) (float64, error) {
	var w float64
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: weight", ErrMissingField)
	case float64:
		w = x
	case float32:
		w = float64(x)
	case int:
		w = float64(x)
	case int8:
		w = float64(x)
	case int16:
		w = float64(x)
	case int32:
		w = float64(x)
	case int64:
		w = float64(x)
	case uint:
		w = float64(x)
	case uint8:
		w = float64(x)
	case uint16:
		w = float64(x)
	case uint32:
		w = float64(x)
	case uint64:
		w = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidWeight, x.String())
		}
		w = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidWeight, x)
		}
		w = f
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidWeight, v)
	}

	if err := checkWeight(w); err != nil {
		return 0, err
	}

	return w, nil
}
