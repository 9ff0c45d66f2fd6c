package config

import (
	"strings"
	"time"
	_ "time/tzdata"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
)

// Location resolves the timezone setting. An empty value is UTC.
func (c *SiteConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "unknown timezone").
			Fatal().
			WithContext("timezone", name).
			Build()
	}
	return loc, nil
}
