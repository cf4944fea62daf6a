package models

// Firm identity shown in navigation, hero and footer
const (
	AttorneyName   = "M. John Abraham"
	AttorneyTitle  = "Attorney at Law"
	AttorneyPhoto  = "https://i.imgur.com/Sr0VR0K.jpeg"
	OfficeAddress  = "190-17 Union Turnpike, Fresh Meadows, NY 11366, United States"
	OfficeWhatsApp = "+1 (419) 607-7952"
	OfficeEmail    = "martezjohnabraham@gmail.com"
)

// NavItem is a link in the navigation bar
type NavItem struct {
	LabelKey string
	Href     string
}

// Stat is one figure in the achievements grid
type Stat struct {
	Icon     string
	LabelKey string
	Value    string
}

// PracticeArea is one card in the practice areas grid
type PracticeArea struct {
	Icon           string
	TitleKey       string
	DescriptionKey string
}

// ContactInfo is one card next to the contact form
type ContactInfo struct {
	Icon     string
	TitleKey string
	Details  []string
}

// SiteContent groups the fixed content of the landing page
type SiteContent struct {
	NavItems      []NavItem
	Credentials   []string
	Stats         []Stat
	PracticeAreas []PracticeArea
	ContactInfo   []ContactInfo
	CaseTypes     []string
}

// DefaultSiteContent returns the landing page content
func DefaultSiteContent() SiteContent {
	return SiteContent{
		NavItems: []NavItem{
			{LabelKey: "nav.home", Href: "/#home"},
			{LabelKey: "nav.about", Href: "/#about"},
			{LabelKey: "nav.practice", Href: "/#practice"},
			{LabelKey: "nav.contact", Href: "/#contact"},
		},
		Credentials: []string{
			"J.D., Harvard Law School",
			"Licensed in New York & New Jersey",
			"15+ Years Experience",
			"Former Federal Prosecutor",
		},
		Stats: []Stat{
			{Icon: "scale", LabelKey: "about.stats.cases_won", Value: "250+"},
			{Icon: "award", LabelKey: "about.stats.years", Value: "15+"},
			{Icon: "users", LabelKey: "about.stats.clients", Value: "500+"},
			{Icon: "book", LabelKey: "about.stats.articles", Value: "25+"},
		},
		PracticeAreas: []PracticeArea{
			{Icon: "building", TitleKey: "practice.corporate.title", DescriptionKey: "practice.corporate.description"},
			{Icon: "home", TitleKey: "practice.real_estate.title", DescriptionKey: "practice.real_estate.description"},
			{Icon: "briefcase", TitleKey: "practice.employment.title", DescriptionKey: "practice.employment.description"},
			{Icon: "shield", TitleKey: "practice.criminal.title", DescriptionKey: "practice.criminal.description"},
			{Icon: "users", TitleKey: "practice.family.title", DescriptionKey: "practice.family.description"},
			{Icon: "file", TitleKey: "practice.estate.title", DescriptionKey: "practice.estate.description"},
			{Icon: "trending", TitleKey: "practice.loan.title", DescriptionKey: "practice.loan.description"},
		},
		ContactInfo: []ContactInfo{
			{Icon: "map", TitleKey: "contact.info.location", Details: []string{"123 Legal Plaza, Suite 500", "New York, NY 10001"}},
			{Icon: "phone", TitleKey: "contact.info.phone", Details: []string{"(304) 303-9843", "24/7 Emergency Line"}},
			{Icon: "mail", TitleKey: "contact.info.email", Details: []string{"rofilate007@gmail.com", "Quick Response Guaranteed"}},
			{Icon: "clock", TitleKey: "contact.info.hours", Details: []string{"Mon-Fri: 8:00 AM - 6:00 PM", "Weekend by Appointment"}},
		},
		CaseTypes: CaseTypes,
	}
}
