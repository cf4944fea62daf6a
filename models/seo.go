package models

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title       string   // Page title
	Description string   // Meta description
	Keywords    string   // Meta keywords (comma-separated)
	Canonical   string   // Canonical URL
	OGImage     string   // Open Graph image URL
	OGType      string   // Open Graph type (website, article, etc.)
	TwitterCard string   // Twitter card type (summary, summary_large_image)
	NoIndex     bool     // If true, adds noindex directive
	Locale      string   // Current locale (e.g., "en", "es")
	AltLocales  []string // Alternative locales for hreflang
}

// Alternate is an hreflang link for one locale
type Alternate struct {
	Lang string
	Href string
}

// Alternates returns hreflang links pointing at the canonical URL with ?lang=
func (s *SEO) Alternates() []Alternate {
	if s.Canonical == "" {
		return nil
	}
	alts := make([]Alternate, 0, len(s.AltLocales))
	for _, lang := range s.AltLocales {
		alts = append(alts, Alternate{Lang: lang, Href: s.Canonical + "?lang=" + lang})
	}
	return alts
}

// Robots returns the content of the robots meta tag
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}
