package dto

import "github.com/truepath/advocates-site/internal/domain"

// ContentQuery filters GET /api/v1/content.
type ContentQuery struct {
	// Section limits the response to one section's heading and records.
	Section string `form:"section" validate:"omitempty,oneof=services about pricing donate contact"`
}

// ContentResponse is the JSON feed of the site content.
type ContentResponse struct {
	Site *domain.Site `json:"site"`
	Meta ContentMeta  `json:"meta"`
}

// ContentMeta carries the values a client needs to reproduce the page's
// behaviour.
type ContentMeta struct {
	ThanksURL        string `json:"thanksUrl"`
	CopyResetDelayMS int64  `json:"copyResetDelayMs"`
}

// SectionResponse is one section of the content feed.
type SectionResponse struct {
	Heading domain.SectionHeading `json:"heading"`
	Items   any                   `json:"items,omitempty"`
}

// NewSectionResponse picks the records shown under the section id. ok is
// false for an unknown id.
func NewSectionResponse(site *domain.Site, id string) (SectionResponse, bool) {
	switch id {
	case site.ServicesHeading.ID:
		return SectionResponse{Heading: site.ServicesHeading, Items: site.Services}, true
	case site.AboutHeading.ID:
		return SectionResponse{Heading: site.AboutHeading, Items: AboutItems{Reasons: site.Reasons, Steps: site.Steps}}, true
	case site.PricingHeading.ID:
		return SectionResponse{Heading: site.PricingHeading, Items: site.Pricing}, true
	case site.DonateHeading.ID:
		return SectionResponse{Heading: site.DonateHeading, Items: site.Donations}, true
	case site.ContactHeading.ID:
		return SectionResponse{Heading: site.ContactHeading, Items: site.Contact}, true
	}

	return SectionResponse{}, false
}

// AboutItems groups the about section's two lists.
type AboutItems struct {
	Reasons []string `json:"reasons"`
	Steps   []string `json:"steps"`
}
