package models

type Note struct {
	BaseModel
	UserID  string `gorm:"not null;index" json:"-"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
}
