package secretbind

import (
	"fmt"
	"strconv"
)

// The byte-oriented backends share one fixed mapping per value kind:
// strings are stored as their UTF-8 bytes, booleans as the canonical
// strconv form ("true"/"false"), blobs untouched. Nothing else is
// encoded — there is no structured-object codec in this module.

func encodeBool(v bool) []byte {
	return []byte(strconv.FormatBool(v))
}

func decodeBool(key string, data []byte) (bool, error) {
	v, err := strconv.ParseBool(string(data))
	if err != nil {
		return false, fmt.Errorf("decode bool %q: %w", key, err)
	}
	return v, nil
}
