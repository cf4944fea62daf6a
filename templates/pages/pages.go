package pages

import (
	"attorney_site_go/models"
	"attorney_site_go/templates/components"
	"attorney_site_go/templates/partials"
	"embed"

	"github.com/a-h/templ"
)

//go:embed *.html
var fs embed.FS

var set = components.MustParse(
	components.Source{FS: fs, Patterns: []string{"*.html"}},
	partials.Source,
)

// Layout carries what every full page needs
type Layout struct {
	SEO              *models.SEO
	Nav              []models.NavItem
	AltLang          string
	TurnstileSiteKey string
	Year             int
}

// LandingPage is the view model of the home page
type LandingPage struct {
	Layout
	Site        models.SiteContent
	Attorney    Attorney
	ContactForm partials.ContactForm
}

// Attorney is the identity shown in the hero, about and footer sections
type Attorney struct {
	Name     string
	Title    string
	Photo    string
	Address  string
	WhatsApp string
	Email    string
}

// DefaultAttorney returns the practice's identity
func DefaultAttorney() Attorney {
	return Attorney{
		Name:     models.AttorneyName,
		Title:    models.AttorneyTitle,
		Photo:    models.AttorneyPhoto,
		Address:  models.OfficeAddress,
		WhatsApp: models.OfficeWhatsApp,
		Email:    models.OfficeEmail,
	}
}

// PrivacyPage is the view model of the privacy policy
type PrivacyPage struct {
	Layout
	Attorney Attorney
}

func Landing(page LandingPage) templ.Component {
	return set.Component("landing", page)
}

func Privacy(page PrivacyPage) templ.Component {
	return set.Component("privacy", page)
}
