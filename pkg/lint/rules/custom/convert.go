package custom

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"
)

// toStarlark converts a configuration or metadata value. Values of other
// types are dropped by the caller.
func toStarlark(v any) (starlark.Value, error) {
	switch val := v.(type) {
	case nil:
		return starlark.None, nil
	case string:
		return starlark.String(val), nil
	case bool:
		return starlark.Bool(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case int64:
		return starlark.MakeInt64(val), nil
	case uint64:
		return starlark.MakeUint64(val), nil
	case float64:
		return starlark.Float(val), nil
	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil
	case []any:
		list := make([]starlark.Value, 0, len(val))
		for i, item := range val {
			sv, err := toStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list = append(list, sv)
		}
		return starlark.NewList(list), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		dict := starlark.NewDict(len(val))
		for _, k := range keys {
			sv, err := toStarlark(val[k])
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, err
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// dictOf converts m, skipping entries whose values have no Starlark form.
func dictOf(m map[string]any) *starlark.Dict {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dict := starlark.NewDict(len(m))
	for _, k := range keys {
		sv, err := toStarlark(m[k])
		if err != nil {
			continue
		}
		_ = dict.SetKey(starlark.String(k), sv)
	}
	return dict
}

// toGo converts a value returned by a script.
func toGo(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.String:
		return string(val), nil
	case starlark.Bool:
		return bool(val), nil
	case starlark.Int:
		i, ok := val.Int64()
		if !ok {
			return val.String(), nil
		}
		return int(i), nil
	case starlark.Float:
		return float64(val), nil
	case starlark.Indexable: // list, tuple
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := toGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = gv
		}
		return out, nil
	case *starlark.Dict:
		out := make(map[string]any, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			gv, err := toGo(item[1])
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", string(key), err)
			}
			out[string(key)] = gv
		}
		return out, nil
	default:
		return val.String(), nil
	}
}
