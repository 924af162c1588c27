package services

import (
	"fmt"
	"strings"
)

// validateOrderBy parses a comma-separated order_by value against a
// whitelist. Requesting an unlisted field is a hard validation error,
// never a silent ignore. A leading '-' means descending.
func validateOrderBy(raw string, allowed []string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = true
	}

	var clauses, invalid []string
	for _, part := range strings.Split(raw, ",") {
		field := strings.TrimSpace(part)
		desc := strings.HasPrefix(field, "-")
		name := strings.TrimPrefix(field, "-")
		if !allowedSet[name] {
			invalid = append(invalid, name)
			continue
		}
		if desc {
			clauses = append(clauses, name+" DESC")
		} else {
			clauses = append(clauses, name)
		}
	}

	if len(invalid) > 0 {
		return nil, fieldError("ordering", fmt.Sprintf(
			"Invalid ordering field(s): %s. Expected one of: %s.",
			strings.Join(invalid, ", "), strings.Join(allowed, ", "),
		))
	}
	return clauses, nil
}
