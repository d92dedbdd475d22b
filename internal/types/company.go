package types

// Company represents the company profile of the authenticated account,
// as returned by /company/me.
type Company struct {
	ID                 int    `json:"id"`
	Email              string `json:"email,omitempty"`
	CompanyName        string `json:"company_name,omitempty"`
	CompanyLogoURL     string `json:"company_logo_url,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	Sector             string `json:"sector,omitempty"`
	LocationCity       string `json:"location_city,omitempty"`
	LocationCountry    string `json:"location_country,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	LinkedinURL        string `json:"linkedin_url,omitempty"`
}

// CompanyPatch is a partial update of the company profile.
type CompanyPatch struct {
	CompanyName     *string `json:"company_name,omitempty"`
	Sector          *string `json:"sector,omitempty"`
	Overview        *string `json:"overview,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	LocationCity    *string `json:"location_city,omitempty"`
	LocationCountry *string `json:"location_country,omitempty"`
	CompanyWebsite  *string `json:"company_website,omitempty"`
}

// PublicCompany is the public view of a company looked up by owner user id.
type PublicCompany struct {
	ID              int    `json:"id"`
	Name            string `json:"name,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
	CompanyOverview string `json:"company_overview,omitempty"`
}

// LogoResponse is returned after a company logo upload.
type LogoResponse struct {
	CompanyLogoURL string `json:"company_logo_url"`
}
