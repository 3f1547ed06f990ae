package models

import "time"

type Flashcard struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"column:titulo;type:varchar(160);not null" json:"titulo"`
	Front      string    `gorm:"column:frente;type:text;not null" json:"frente"`
	Back       string    `gorm:"column:verso;type:text;not null" json:"verso"`
	AuthorUID  string    `gorm:"type:varchar(160);not null;index" json:"author_uid"`
	AuthorName string    `gorm:"type:varchar(160);not null" json:"author_name"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:AuthorUID;references:FirebaseUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

func (f *Flashcard) GetID() uint64        { return f.ID }
func (f *Flashcard) GetAuthorUID() string { return f.AuthorUID }

func (f *Flashcard) AssignOwner(owner Owner) {
	f.AuthorUID = owner.UID
	f.AuthorName = owner.Name
}

func (f *Flashcard) MarkCreated(at time.Time) {
	f.CreatedAt = at
	f.UpdatedAt = at
}

func (f *Flashcard) MarkUpdated(at time.Time) {
	f.UpdatedAt = at
}
