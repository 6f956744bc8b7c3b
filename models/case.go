package models

// Case is a customer success case.
// "case" is an SQL keyword, so the name lives in the case_name column.
type Case struct {
	ID       int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ImageURL string `gorm:"size:512" json:"image_url" form:"image_url"`
	Case     string `gorm:"column:case_name;size:100" json:"case" form:"case"`
	Value    string `gorm:"size:100" json:"value" form:"value"`
}
