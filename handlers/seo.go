package handlers

import (
	"attorney_site_go/models"
	"attorney_site_go/services/i18n"
	"context"
)

type seoPage struct {
	key         string
	path        string
	ogType      string
	twitterCard string
}

// SEO configurations for public pages; texts come from the seo.<key>.* translations
var pageSEO = map[string]seoPage{
	"landing": {key: "landing", path: "/", ogType: "website", twitterCard: "summary_large_image"},
	"privacy": {key: "privacy", path: "/privacy", ogType: "website", twitterCard: "summary"},
}

// GetSEO returns the SEO metadata of a page in the request's language
func GetSEO(ctx context.Context, page, baseURL string) *models.SEO {
	cfg, ok := pageSEO[page]
	if !ok {
		return nil
	}

	lang := i18n.GetLocale(ctx)
	seo := &models.SEO{
		Title:       i18n.T(ctx, "seo."+cfg.key+".title"),
		Description: i18n.T(ctx, "seo."+cfg.key+".description"),
		Canonical:   baseURL + cfg.path,
		OGImage:     models.AttorneyPhoto,
		OGType:      cfg.ogType,
		TwitterCard: cfg.twitterCard,
		Locale:      lang,
	}

	// Keywords are optional per page
	if keywords := i18n.T(ctx, "seo."+cfg.key+".keywords"); keywords != "seo."+cfg.key+".keywords" {
		seo.Keywords = keywords
	}

	for _, alt := range i18n.Languages() {
		if alt != lang {
			seo.AltLocales = append(seo.AltLocales, alt)
		}
	}
	return seo
}
