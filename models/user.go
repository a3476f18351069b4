package models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a login principal. Users are created by seeding or administration,
// never through the public API.
type User struct {
	Id           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:256;not null"`
	Role         string `json:"role" gorm:"size:20;default:customer"`
}

func (User) TableName() string { return "users" }
