package dto

// --- Request DTOs ---

// UpdateSettingsRequest represents site-wide settings update data.
type UpdateSettingsRequest struct {
	SiteTitle       string `json:"siteTitle" binding:"required"`
	SiteDescription string `json:"siteDescription,omitempty"`
	FooterText      string `json:"footerText,omitempty"`
}

// --- Response DTOs ---

// SettingsResponse represents the site settings singleton.
type SettingsResponse struct {
	SiteTitle       string `json:"siteTitle" example:"Academic Portfolio"`
	SiteDescription string `json:"siteDescription"`
	FooterText      string `json:"footerText"`
	UpdatedAt       string `json:"updatedAt" example:"2026-01-16T11:30:00Z"`
}
