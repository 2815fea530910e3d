package model

// swagger:model Note
type Note struct {
	BaseModel
	Title         string `gorm:"size:255;not null" json:"title"`
	Content       string `gorm:"type:longtext" json:"content"`
	Subject       string `gorm:"size:100;index" json:"subject"`
	ClassName     string `gorm:"size:50;index" json:"className"`
	AttachmentURL string `gorm:"size:500" json:"attachmentUrl,omitempty"`
	AuthorID      uint   `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author        *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Note) TableName() string {
	return "notes"
}
