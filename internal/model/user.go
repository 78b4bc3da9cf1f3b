package model

type UserRole string

const (
	Admin  UserRole = "admin"
	Editor UserRole = "editor"
)

type User struct {
	BaseModel
	Name     string   `gorm:"size:100" json:"name"`
	Email    string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:editor" json:"role"`
}

func (User) TableName() string {
	return "users"
}
