package jsearch

import (
	"fmt"
	"strings"
)

const (
	// NotSpecified is used when a posting carries neither city nor country.
	NotSpecified = "Not specified"

	// descriptionPreviewLimit bounds the display form of a description. The
	// full text is retained for matching.
	descriptionPreviewLimit = 200
)

type Postings struct {
	Items []*Posting
}

// Posting is one job listing as returned by the JSearch API. It is immutable
// once fetched.
type Posting struct {
	Title       string `json:"job_title,omitempty"`
	Employer    string `json:"employer_name,omitempty"`
	City        string `json:"job_city,omitempty"`
	Country     string `json:"job_country,omitempty"`
	Description string `json:"job_description,omitempty"`
	ApplyLink   string `json:"job_apply_link,omitempty"`
}

// Location renders the posting location from the optional city and country
// fields, degrading to NotSpecified when both are absent.
func (p *Posting) Location() string {
	city := strings.TrimSpace(p.City)
	country := strings.TrimSpace(p.Country)

	switch {
	case city != "" && country != "":
		return fmt.Sprintf("%s, %s", city, country)
	case city != "":
		return city
	case country != "":
		return country
	}
	return NotSpecified
}

// ShortDescription returns the display form of the description, truncated
// with an ellipsis.
func (p *Posting) ShortDescription() string {
	if p.Description == "" {
		return ""
	}

	runes := []rune(p.Description)
	if len(runes) <= descriptionPreviewLimit {
		return p.Description
	}
	return string(runes[:descriptionPreviewLimit]) + "..."
}

func (p *Postings) Len() int {
	return len(p.Items)
}

// ReportByEmployer groups postings by employer name for a quick overview.
func (p *Postings) ReportByEmployer() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Employer
		if key == "" {
			key = NotSpecified
		}
		report[key] = append(report[key], map[string]string{
			"title":       posting.Title,
			"location":    posting.Location(),
			"url":         posting.ApplyLink,
			"description": posting.ShortDescription(),
		})
	}
	return report
}
