package model

// swagger:model Club
type Club struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	PatronID    uint   `gorm:"index;type:bigint unsigned" json:"patronId"`
	Patron      *User  `gorm:"foreignKey:PatronID" json:"patron,omitempty"`
}

func (Club) TableName() string {
	return "clubs"
}

// swagger:model ClubMember
type ClubMember struct {
	BaseModel
	ClubID     uint   `gorm:"uniqueIndex:idx_club_student;type:bigint unsigned" json:"clubId"`
	StudentID  uint   `gorm:"uniqueIndex:idx_club_student;type:bigint unsigned" json:"studentId"`
	Student    *User  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	RoleInClub string `gorm:"size:50;default:'member'" json:"roleInClub"`
}

func (ClubMember) TableName() string {
	return "club_members"
}
