package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// loadPrelude binds a YAML document of `name: literal` pairs into env
// before the first input is read (SPEC_FULL.md's AMBIENT STACK
// "Config" section) -- a scaled-down analogue of the teacher's
// unit/uses system, here just a flat map of preloaded constants.
//
// Literal values may be a number, a bool, or a string. A string that
// parses as an n/d fraction or a decimal is bound as a number; any
// other string is bound as a Symbol.
func loadPrelude(path string, env *environment.Frame) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read prelude %s: %w", path, err)
	}

	var bindings map[string]any
	if err := yaml.Unmarshal(data, &bindings); err != nil {
		return fmt.Errorf("failed to parse prelude %s: %w", path, err)
	}

	for name, raw := range bindings {
		v, verr := preludeValue(raw)
		if verr != nil {
			return fmt.Errorf("prelude %s: %s: %w", path, name, verr)
		}
		env.Bind(name, v)
	}
	return nil
}

// loadPreludeJSON mirrors loadPrelude for a JSON document, read with
// tidwall/gjson rather than encoding/json (SPEC_FULL.md's DOMAIN STACK
// table). Every top-level key is bound; a value that is not a number,
// bool or string (a nested object or array) is an error.
func loadPreludeJSON(path string, env *environment.Frame) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read prelude %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("prelude %s is not valid JSON", path)
	}

	var outerErr error
	gjson.ParseBytes(data).ForEach(func(key, val gjson.Result) bool {
		v, verr := preludeValue(val.Value())
		if verr != nil {
			outerErr = fmt.Errorf("prelude %s: %s: %w", path, key.String(), verr)
			return false
		}
		env.Bind(key.String(), v)
		return true
	})
	return outerErr
}

func preludeValue(raw any) (value.Value, error) {
	switch v := raw.(type) {
	case bool:
		return value.Boolean{B: v}, nil
	case int:
		return value.BigNum{N: rational.NewInt(int64(v))}, nil
	case int64:
		return value.BigNum{N: rational.NewInt(v)}, nil
	case uint64:
		return value.BigNum{N: rational.NewInt(int64(v))}, nil
	case float64:
		n, ferr := rational.FromFloat(v)
		if ferr != nil {
			return nil, ferr
		}
		return value.BigNum{N: n}, nil
	case string:
		if n, err := rational.ParseFraction(v); err == nil {
			return value.BigNum{N: n}, nil
		}
		if n, err := rational.FromString(v); err == nil {
			return value.BigNum{N: n}, nil
		}
		return value.Symbol{Name: v}, nil
	default:
		return nil, fmt.Errorf("unsupported prelude value %#v", raw)
	}
}
