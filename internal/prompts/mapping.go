package prompts

import (
	"net/url"
	"strconv"
)

// FiltersFromQuery parses prompt filters from URL query values.
// Supported parameters: stage, active.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("stage"); v != "" {
		if stage, err := ParseStage(v); err == nil {
			f.Stage = &stage
		}
	}

	if v := values.Get("active"); v != "" {
		if active, err := strconv.ParseBool(v); err == nil {
			f.Active = &active
		}
	}

	return f
}
