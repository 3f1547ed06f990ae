package models

import "time"

// Pomodoro records one finished focus session. The table carries no
// update timestamp.
type Pomodoro struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Cycles    int       `gorm:"column:ciclos;not null" json:"ciclos"`
	Duration  int       `gorm:"not null" json:"duration"`
	WorkTime  int       `gorm:"column:tempo_trabalho;not null" json:"tempo_trabalho"`
	BreakTime int       `gorm:"column:tempo_descanso;not null" json:"tempo_descanso"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UserID    uint64    `gorm:"column:userid;not null" json:"userid"`
	AuthorUID string    `gorm:"type:varchar(160);not null;index" json:"author_uid"`

	// Relations
	User *User `gorm:"foreignKey:AuthorUID;references:FirebaseUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pomodoro) TableName() string {
	return "pomodoros"
}

func (p *Pomodoro) GetID() uint64        { return p.ID }
func (p *Pomodoro) GetAuthorUID() string { return p.AuthorUID }

func (p *Pomodoro) AssignOwner(owner Owner) {
	p.AuthorUID = owner.UID
	p.UserID = owner.UserID
}

func (p *Pomodoro) MarkCreated(at time.Time) {
	p.CreatedAt = at
}

func (p *Pomodoro) MarkUpdated(time.Time) {}
