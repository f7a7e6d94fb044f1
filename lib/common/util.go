package common

import (
	"encoding/json"
	"net/url"
	"os"

	"github.com/google/uuid"
)

// GetUniqueIDFromUUID returns a version 1 (time based) uuid.
func GetUniqueIDFromUUID() string {
	return uuid.Must(uuid.NewUUID()).String()
}

func GetENVValue(key, defaultValue string) (v string) {
	var found bool
	if v, found = os.LookupEnv(key); !found {
		return defaultValue
	}

	return
}

func InStringArray(a []string, s string) (index int, found bool) {
	var h string
	for index, h = range a {
		found = h == s
		if found {
			return
		}
	}

	index = -1
	return
}

// MustMarshalJSON is for values that always encode; an error gives nil.
func MustMarshalJSON(o interface{}) []byte {
	b, _ := json.Marshal(o)
	return b
}

// GetUrlQuery returns the first value of `key` in `query`, or
// `defaultValue` when it is missing.
func GetUrlQuery(query url.Values, key, defaultValue string) string {
	v := query.Get(key)
	if len(v) > 0 {
		return v
	}

	return defaultValue
}
