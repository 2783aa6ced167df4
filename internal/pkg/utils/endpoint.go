package utils

import "strings"

// BuildEndpointPath joins the prefix, version and segments into one rooted path,
// tolerating stray slashes in configured values.
func BuildEndpointPath(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(part, "/")
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return "/" + strings.Join(cleaned, "/")
}
