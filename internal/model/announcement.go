package model

import "time"

// swagger:model Announcement
type Announcement struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	Audience string `gorm:"size:20;default:'all'" json:"audience"` // all, students, teachers
	AuthorID uint   `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsPinned bool   `gorm:"default:false" json:"isPinned"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// swagger:model Event
type Event struct {
	BaseModel
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	StartsAt    time.Time `gorm:"index" json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	CreatorID   uint      `gorm:"index;type:bigint unsigned" json:"creatorId"`
}

func (Event) TableName() string {
	return "events"
}
