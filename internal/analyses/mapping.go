package analyses

import (
	"net/url"

	"github.com/reviewlens/reviewlens/internal/workflow"
)

// FiltersFromQuery parses analysis filters from URL query values.
// Supported parameters: classification, platform, language.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("classification"); v != "" {
		if c, err := workflow.ParseClassification(v); err == nil {
			f.Classification = &c
		}
	}

	if v := values.Get("platform"); v != "" {
		f.Platform = &v
	}

	if v := values.Get("language"); v != "" {
		f.Language = &v
	}

	return f
}
