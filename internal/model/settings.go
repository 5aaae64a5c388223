package model

import "time"

// Settings is the site-wide settings singleton: at most one row exists.
type Settings struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Tagline     string    `json:"tagline"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Facebook    string    `json:"facebook"`
	Instagram   string    `json:"instagram"`
	Twitter     string    `json:"twitter"`
	LinkedIn    string    `json:"linkedin"`
	TikTok      string    `json:"tiktok"`
	WhatsApp    string    `json:"whatsapp"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SettingsPatch is the payload for updating settings. Non-nil fields are
// merged into the existing row, or seed a new row if none exists yet.
type SettingsPatch struct {
	CompanyName *string `json:"companyName"`
	Tagline     *string `json:"tagline"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	Twitter     *string `json:"twitter"`
	LinkedIn    *string `json:"linkedin"`
	TikTok      *string `json:"tiktok"`
	WhatsApp    *string `json:"whatsapp"`
}

// DefaultSettings is the response-time fallback when no settings row exists.
// It is never persisted.
func DefaultSettings() Settings {
	return Settings{
		CompanyName: "Everest Worldwide Consultancy Pvt. Ltd.",
		Tagline:     "Your Gateway to Global Education",
	}
}
