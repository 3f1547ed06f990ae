package models

import "time"

type User struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	FirebaseUID string     `gorm:"type:varchar(160);uniqueIndex;not null" json:"firebase_uid"`
	Email       *string    `gorm:"type:varchar(256)" json:"email"`
	Name        *string    `gorm:"type:varchar(160)" json:"name"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
