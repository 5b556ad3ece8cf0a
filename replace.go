package webseo

import "strings"

// Token names recognised in the HTML template as {{NAME}}.
const (
	TokenLangCode              = "LANG_CODE"
	TokenMetaTitle             = "META_TITLE"
	TokenMetaDescription       = "META_DESCRIPTION"
	TokenMetaKeywords          = "META_KEYWORDS"
	TokenAuthorName            = "AUTHOR_NAME"
	TokenSiteURL               = "SITE_URL"
	TokenBaseURL               = "BASE_URL"
	TokenAvatarURL             = "AVATAR_URL"
	TokenSiteName              = "SITE_NAME"
	TokenLocale                = "LOCALE"
	TokenTwitterHandle         = "TWITTER_HANDLE"
	TokenJobTitle              = "JOB_TITLE"
	TokenStructuredDescription = "STRUCTURED_DESCRIPTION"
	TokenSocialLinksJSON       = "SOCIAL_LINKS_JSON"
	TokenOrganization          = "ORGANIZATION"
	TokenOrganizationURL       = "ORGANIZATION_URL"
	TokenSkillsJSON            = "SKILLS_JSON"
	TokenEducation             = "EDUCATION"
	TokenCity                  = "CITY"
	TokenCountry               = "COUNTRY"
	TokenAnalyticsID           = "ANALYTICS_ID"
)

// Tokens lists every recognised token name in table order.
var Tokens = []string{
	TokenLangCode,
	TokenMetaTitle,
	TokenMetaDescription,
	TokenMetaKeywords,
	TokenAuthorName,
	TokenSiteURL,
	TokenBaseURL,
	TokenAvatarURL,
	TokenSiteName,
	TokenLocale,
	TokenTwitterHandle,
	TokenJobTitle,
	TokenStructuredDescription,
	TokenSocialLinksJSON,
	TokenOrganization,
	TokenOrganizationURL,
	TokenSkillsJSON,
	TokenEducation,
	TokenCity,
	TokenCountry,
	TokenAnalyticsID,
}

// Marker returns the template marker for a token name, e.g. {{SITE_NAME}}.
func Marker(name string) string {
	return "{{" + name + "}}"
}

// Replacements builds the value of every token from the two configuration
// documents. Absent values map to "". The Twitter handle never carries a
// leading '@'.
func Replacements(site WebsiteConfig, seo SeoConfig) map[string]string {
	handle := TwitterHandle(site.SocialLinks)
	if handle == "" {
		handle = strings.TrimPrefix(seo.Twitter.Creator.String(), "@")
	}
	sd := seo.StructuredData

	return map[string]string{
		TokenLangCode:              seo.MetaTags.Language.String(),
		TokenMetaTitle:             seo.MetaTags.Title.String(),
		TokenMetaDescription:       seo.MetaTags.Description.String(),
		TokenMetaKeywords:          JoinKeywords(seo.MetaTags.Keywords),
		TokenAuthorName:            seo.MetaTags.Author.String(),
		TokenSiteURL:               seo.SiteInfo.BaseURL.String(),
		TokenBaseURL:               seo.SiteInfo.BaseURL.String(),
		TokenAvatarURL:             site.PersonalInfo.AvatarURL.String(),
		TokenSiteName:              seo.SiteInfo.SiteName.String(),
		TokenLocale:                seo.MetaTags.Locale.String(),
		TokenTwitterHandle:         handle,
		TokenJobTitle:              sd.JobTitle.String(),
		TokenStructuredDescription: sd.Description.String(),
		TokenSocialLinksJSON:       JSONArray(sd.SameAs),
		TokenOrganization:          sd.Organization.String(),
		TokenOrganizationURL:       sd.OrganizationURL.String(),
		TokenSkillsJSON:            JSONArray(sd.Skills),
		TokenEducation:             sd.Education.String(),
		TokenCity:                  sd.Address.Locality.String(),
		TokenCountry:               sd.Address.Country.String(),
		TokenAnalyticsID:           seo.Analytics.GoogleAnalyticsID.String(),
	}
}

// Substitute replaces every recognised {{TOKEN}} marker in template with its
// value. Unknown markers are left untouched.
func Substitute(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for _, name := range Tokens {
		v, ok := values[name]
		if !ok {
			continue
		}
		pairs = append(pairs, Marker(name), v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Apply substitutes the configuration values into template.
func Apply(template string, site WebsiteConfig, seo SeoConfig) string {
	return Substitute(template, Replacements(site, seo))
}
