package users

import "net/url"

// FiltersFromQuery parses user filters from URL query values.
// Supported parameters: role, status.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("role"); v != "" {
		if role, err := ParseRole(v); err == nil {
			f.Role = &role
		}
	}

	if v := values.Get("status"); v != "" {
		status := Status(v)
		if status == StatusActive || status == StatusSuspended {
			f.Status = &status
		}
	}

	return f
}
