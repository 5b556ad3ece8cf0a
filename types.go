package webseo

// WebsiteConfig is the site/personal information document
// (assets/config/website_config_default.json). Only the fields the templater
// reads are declared; everything else in the document is ignored.
type WebsiteConfig struct {
	PersonalInfo PersonalInfo `json:"personal_info" yaml:"personal_info"`
	SocialLinks  []SocialLink `json:"social_links" yaml:"social_links"`
}

// PersonalInfo carries the site owner's profile data.
type PersonalInfo struct {
	Name      string `json:"name" yaml:"name"`
	AvatarURL Text   `json:"avatar_url" yaml:"avatar_url"`
}

// SocialLink is one entry of the ordered social_links list.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// SeoConfig is the SEO metadata document (assets/config/seo_config.json).
// Scalar fields use Text so numbers and booleans in the document are
// accepted and substituted in their string form.
type SeoConfig struct {
	SiteInfo       SiteInfo       `json:"site_info" yaml:"site_info"`
	MetaTags       MetaTags       `json:"meta_tags" yaml:"meta_tags"`
	Twitter        Twitter        `json:"twitter" yaml:"twitter"`
	StructuredData StructuredData `json:"structured_data" yaml:"structured_data"`
	Analytics      Analytics      `json:"analytics" yaml:"analytics"`
}

type SiteInfo struct {
	BaseURL  Text `json:"base_url" yaml:"base_url"`
	SiteName Text `json:"site_name" yaml:"site_name"`
}

type MetaTags struct {
	Language    Text     `json:"language" yaml:"language"`
	Title       Text     `json:"title" yaml:"title"`
	Description Text     `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Author      Text     `json:"author" yaml:"author"`
	Locale      Text     `json:"locale" yaml:"locale"`
}

type Twitter struct {
	Creator Text `json:"creator" yaml:"creator"`
}

// StructuredData feeds the JSON-LD Person block of the page.
// A nil slice means the field was absent from the document; an empty
// non-nil slice was present as [].
type StructuredData struct {
	JobTitle        Text     `json:"job_title" yaml:"job_title"`
	Description     Text     `json:"description" yaml:"description"`
	SameAs          []string `json:"same_as" yaml:"same_as"`
	Organization    Text     `json:"organization" yaml:"organization"`
	OrganizationURL Text     `json:"organization_url" yaml:"organization_url"`
	Skills          []string `json:"skills" yaml:"skills"`
	Education       Text     `json:"education" yaml:"education"`
	Address         Address  `json:"address" yaml:"address"`
}

type Address struct {
	Locality Text `json:"locality" yaml:"locality"`
	Country  Text `json:"country" yaml:"country"`
}

type Analytics struct {
	GoogleAnalyticsID Text `json:"google_analytics_id" yaml:"google_analytics_id"`
}
