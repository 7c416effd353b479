package filter

import (
	"fmt"
	"strconv"
)

// Literal renders a comparison value into its textual filter form.
// Supported kinds: strings, byte slices, booleans (rendered TRUE/FALSE per
// the directory boolean syntax), integers, unsigned integers, floats and
// fmt.Stringer implementations. Anything else cannot be represented.
func Literal(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", fmt.Errorf("nil value")
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
