package models

import "time"

// Summary is a study note ("resumo").
type Summary struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"column:titulo;type:varchar(160);not null" json:"titulo"`
	Content    string    `gorm:"column:conteudo;type:text;not null" json:"conteudo"`
	AuthorUID  string    `gorm:"type:varchar(160);not null;index" json:"author_uid"`
	AuthorName string    `gorm:"type:varchar(160);not null" json:"author_name"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:AuthorUID;references:FirebaseUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Summary) TableName() string {
	return "resumos"
}

func (s *Summary) GetID() uint64        { return s.ID }
func (s *Summary) GetAuthorUID() string { return s.AuthorUID }

func (s *Summary) AssignOwner(owner Owner) {
	s.AuthorUID = owner.UID
	s.AuthorName = owner.Name
}

func (s *Summary) MarkCreated(at time.Time) {
	s.CreatedAt = at
	s.UpdatedAt = at
}

func (s *Summary) MarkUpdated(at time.Time) {
	s.UpdatedAt = at
}
