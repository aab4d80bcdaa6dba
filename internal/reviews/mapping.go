package reviews

import "net/url"

// FiltersFromQuery parses review filters from URL query values.
// Supported parameters: status, platform.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("status"); v != "" {
		if status, err := ParseStatus(v); err == nil {
			f.Status = &status
		}
	}

	if v := values.Get("platform"); v != "" {
		f.Platform = &v
	}

	return f
}
