package model

import "time"

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
)

type Task struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null;default:''"`
	Description string `gorm:"not null;default:''"`
	Status      string `gorm:"type:varchar(50);not null"`
	UserID      *uint  `gorm:"index"`
	User        *User  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID is the task owner. Tasks without an owner
// belong to nobody.
func (t *Task) IsOwnedBy(userID uint) bool {
	return t.UserID != nil && *t.UserID == userID
}
