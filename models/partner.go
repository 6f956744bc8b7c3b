package models

// Partner is a partner company shown with its logo.
type Partner struct {
	ID      int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name    string `gorm:"size:255" json:"name" form:"name"`
	LogoURL string `gorm:"size:512" json:"logo_url" form:"logo_url"`
}
