package models

// Module is one product of the catalog.
// ImageURL holds the stored relative path (ex: images/modules/struct.png), never the public URL.
type Module struct {
	ID          int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title" form:"title"`
	Description string `gorm:"type:text" json:"description" form:"description"`
	ImageURL    string `gorm:"size:512" json:"image_url" form:"image_url"`
	Industry    string `gorm:"size:50;index" json:"industry" form:"industry"`
	Subject     string `gorm:"size:50;index" json:"subject" form:"subject"`
}
