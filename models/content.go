package models

import "time"

// HeroSlide is a storefront banner slide.
type HeroSlide struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Image     string    `json:"image"`
	Link      string    `json:"link,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteConfig is the storefront-wide configuration blob. There is no schema
// versioning; missing fields are filled in at read time by ApplyDefaults.
type SiteConfig struct {
	StoreName    string `json:"store_name"`
	LogoURL      string `json:"logo_url,omitempty"`
	Hotline      string `json:"hotline,omitempty"`
	Address      string `json:"address,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
	Announcement string `json:"announcement,omitempty"`
}

// DefaultSiteConfig returns the configuration used before an admin saves one.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		StoreName: "2ND Game Shop",
		Hotline:   "1900 0000",
	}
}

// ApplyDefaults fills zero-valued fields from the default configuration so
// that configs written by older versions of the admin console stay readable.
func (c *SiteConfig) ApplyDefaults() {
	def := DefaultSiteConfig()
	if c.StoreName == "" {
		c.StoreName = def.StoreName
	}
	if c.Hotline == "" {
		c.Hotline = def.Hotline
	}
}
