package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/truepath/advocates-site/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the content tables. The service refuses to start with
// broken content, the same way it refuses invalid config.
func Validate(site *domain.Site) error {
	if site == nil {
		return domain.NewValidationError("", "site content is nil")
	}

	if err := validate.Struct(site); err != nil {
		return formatValidationErrors(err)
	}

	sections := make(map[string]struct{}, len(site.Headings()))
	for _, h := range site.Headings() {
		if _, dup := sections[h.ID]; dup {
			return domain.NewValidationError("Headings", fmt.Sprintf("duplicate section id %q", h.ID))
		}

		sections[h.ID] = struct{}{}
	}

	links := []struct {
		field string
		links []domain.NavLink
	}{
		{"Nav", site.Nav},
		{"Actions", site.Actions},
		{"Hero.Actions", site.Hero.Actions},
	}

	for _, group := range links {
		for i, link := range group.links {
			if _, ok := sections[link.Anchor]; !ok {
				return domain.NewValidationError(
					fmt.Sprintf("%s[%d].Anchor", group.field, i),
					fmt.Sprintf("unknown section %q", link.Anchor),
				)
			}
		}
	}

	for i, d := range site.Donations {
		field := fmt.Sprintf("Donations[%d]", i)

		switch {
		case d.URL == "" && d.CopyValue == "":
			return domain.NewValidationError(field, "needs a link or a copyable identifier")
		case d.URL != "" && d.CopyValue != "":
			return domain.NewValidationError(field, "cannot have both a link and a copyable identifier")
		case d.URL != "" && d.CTALabel == "":
			return domain.NewValidationError(field+".CTALabel", "is required for linked channels")
		}
	}

	return nil
}

// formatValidationErrors converts validator errors to a single domain error.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.TrimPrefix(e.Namespace(), "Site."), e.Tag()))
	}

	first := validationErrors[0]

	return domain.NewValidationError(
		strings.TrimPrefix(first.Namespace(), "Site."),
		strings.Join(msgs, "; "),
	)
}

// Checker reports whether the content loaded at startup is still valid.
// It is registered with the health registry so /-/ready reflects it.
type Checker struct {
	site *domain.Site
}

// NewChecker creates a content health checker.
func NewChecker(site *domain.Site) *Checker {
	return &Checker{site: site}
}

// Name implements ports.HealthChecker.
func (c *Checker) Name() string {
	return "content"
}

// Check implements ports.HealthChecker.
func (c *Checker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return Validate(c.site)
}
