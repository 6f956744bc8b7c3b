package models

const CLIENT_TYPE_CATEGORY = "category"

// Client is a cooperating unit. Seed documents carry them as "categories".
type Client struct {
	ID    int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Type  string `gorm:"size:50" json:"type" form:"type"`
	Name  string `gorm:"size:100" json:"name" form:"name"`
	Value string `gorm:"size:100" json:"value" form:"value"`
}
