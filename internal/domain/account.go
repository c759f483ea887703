package domain

import "time"

// Admin is a dashboard operator account. Password holds the bcrypt hash
// and is never serialized.
type Admin struct {
	ID        int64     `json:"id,string" form:"id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email" form:"email"`
	Password  string    `json:"-" form:"password"`
	Name      string    `json:"name" form:"name"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Admin) TableName() string {
	return "sys_admin"
}

// User is a storefront customer profile.
type User struct {
	ID        int64     `json:"id,string" form:"id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email" form:"email"`
	Name      string    `json:"name" form:"name"`
	Phone     string    `gorm:"size:64" json:"phone" form:"phone"`
	Address   string    `json:"address" form:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (User) TableName() string {
	return "sys_user"
}
