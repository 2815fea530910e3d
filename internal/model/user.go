package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

type AccountStatus string

const (
	AccountPending  AccountStatus = "pending"
	AccountApproved AccountStatus = "approved"
	AccountRejected AccountStatus = "rejected"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string        `gorm:"size:100;not null" json:"name"`
	Email     string        `gorm:"size:100;unique;not null" json:"email"`
	Password  string        `gorm:"size:100;not null" json:"-"`
	Role      UserRole      `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	Status    AccountStatus `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	ClassName string        `gorm:"size:50" json:"className"`
	Avatar    string        `gorm:"size:255" json:"avatar"`
	Disabled  bool          `gorm:"default:false" json:"disabled"`
	LastLogin time.Time     `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time     `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
