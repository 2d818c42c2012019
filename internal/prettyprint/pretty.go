// Package prettyprint implements the pretty-print external collaborator
// of spec.md §1/§6: a pure formatter from a Value (or an error) to a
// display string, plus a JSON rendering used by `pcalc eval --format
// json`.
package prettyprint

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// Format renders v per spec.md §6's pretty-print contract: rationals
// with denominator 1 print as their numerator (value.BigNum.String()
// already does this); booleans as true/false; lists as "(e1 e2 ...)";
// procedures as "(params) (body-head args...)"; symbols resolve via
// the environment by the evaluator before reaching here, so a Symbol
// that arrives at Format unresolved prints by its own name; void
// prints as the empty string.
func Format(v value.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// FormatError renders a CalcError for the REPL, with source-position
// decoration when available.
func FormatError(err *calcerr.CalcError) string {
	return err.Format(false)
}

// FormatJSON renders v as a JSON document, built incrementally with
// tidwall/sjson rather than a struct-tagged encoding/json pass — the
// Value union has no natural struct shape to tag, so sjson's
// set-by-path API is a better fit than marshaling a synthetic mirror
// struct (see SPEC_FULL.md's DOMAIN STACK table).
func FormatJSON(v value.Value) (string, error) {
	return formatJSONValue("", v)
}

func formatJSONValue(prefix string, v value.Value) (string, error) {
	switch val := v.(type) {
	case value.BigNum:
		return setPath(prefix, val.N.String())
	case value.Boolean:
		return setPath(prefix, val.B)
	case value.Symbol:
		return setPath(prefix, val.Name)
	case value.Void:
		return setPath(prefix, nil)
	case value.List:
		doc := "[]"
		var err error
		for i, item := range val.Items {
			doc, err = mergeArrayItem(doc, i, item)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	case value.Matrix:
		doc := "{}"
		var err error
		doc, err = sjson.Set(doc, "rows", val.Rows)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, "cols", val.Cols)
		if err != nil {
			return "", err
		}
		cells := make([]string, len(val.Data))
		for i, c := range val.Data {
			cells[i] = c.String()
		}
		return sjson.Set(doc, "data", cells)
	case value.Proc:
		doc := "{}"
		var err error
		doc, err = sjson.Set(doc, "params", val.Params)
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, "body", val.Body.String())
	default:
		return setPath(prefix, v.String())
	}
}

func setPath(prefix string, v any) (string, error) {
	if prefix == "" {
		return sjson.Set("{}", "value", v)
	}
	return sjson.Set("{}", prefix, v)
}

func mergeArrayItem(doc string, index int, item value.Value) (string, error) {
	itemJSON, err := formatJSONValue("", item)
	if err != nil {
		return "", err
	}
	return sjson.SetRaw(doc, fmt.Sprintf("%d", index), itemJSON)
}
