package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleRoot  = "root"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique;not null"`
	GoogleID     string `gorm:"index"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	Trips []Trip `gorm:"foreignKey:AccountID"`
}
