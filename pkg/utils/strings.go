package utils

import "strings"

// RemoveEmptyStrings returns the non-empty elements of slice, in order.
func RemoveEmptyStrings(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// SplitList splits a comma-separated value such as CORS_ORIGINS or
// ES_ADDRESSES, trimming spaces and dropping empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return RemoveEmptyStrings(parts)
}
