package models

// Sex is the user's sex as shown in the catalog, either SexMale or SexFemale.
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// User owns categories.
type User struct {
	ID   uint   `gorm:"primaryKey" yaml:"id"`
	Name string `gorm:"not null" yaml:"name"`
	Sex  Sex    `gorm:"type:char(1);not null" yaml:"sex"`
}

func (u *User) TableName() string {
	return "users"
}
