package models

import "time"

type Event struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"column:title_event;type:varchar(200);not null" json:"title_event"`
	Description *string    `gorm:"column:description_event;type:varchar(500)" json:"description_event"`
	Date        time.Time  `gorm:"column:data_evento;not null;index" json:"data_evento"`
	Location    *string    `gorm:"column:local_evento;type:varchar(100)" json:"local_evento"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	AuthorUID   string     `gorm:"type:varchar(160);not null;index" json:"author_uid"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:AuthorUID;references:FirebaseUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) GetID() uint64        { return e.ID }
func (e *Event) GetAuthorUID() string { return e.AuthorUID }

func (e *Event) AssignOwner(owner Owner) {
	e.AuthorUID = owner.UID
}

func (e *Event) MarkCreated(at time.Time) {
	e.CreatedAt = at
	e.UpdatedAt = &at
}

func (e *Event) MarkUpdated(at time.Time) {
	e.UpdatedAt = &at
}
