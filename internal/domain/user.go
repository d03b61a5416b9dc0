package domain

type User struct {
	UserID int    `gorm:"primaryKey;autoIncrement;column:user_id" json:"userId"`
	Name   string `gorm:"column:name" json:"name"`
}

func (User) TableName() string { return "users" }
