package server

import "fmt"

// Parameter extraction helpers for tool argument maps

// StringParam returns params[key] as a string, formatting non-string
// values, or defaultVal if the key is absent.
func StringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// requiredString distinguishes a missing argument from an empty string,
// which is a valid record name.
func requiredString(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
