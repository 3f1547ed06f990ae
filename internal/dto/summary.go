package dto

import (
	"time"

	"github.com/sabidos/sabidos-api/internal/models"
)

// CreateSummaryRequest is the body accepted when creating a study note
type CreateSummaryRequest struct {
	Titulo   string `json:"titulo" binding:"required,max=160"`
	Conteudo string `json:"conteudo" binding:"required,max=8000"`
}

// UpdateSummaryRequest carries the note fields to change
type UpdateSummaryRequest struct {
	Titulo   *string `json:"titulo" binding:"omitnil,min=1,max=160"`
	Conteudo *string `json:"conteudo" binding:"omitnil,min=1,max=8000"`
}

// SummaryResponse represents a study note in API responses
type SummaryResponse struct {
	ID         uint64    `json:"id"`
	Titulo     string    `json:"titulo"`
	Conteudo   string    `json:"conteudo"`
	AuthorUID  string    `json:"authorUid"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (r CreateSummaryRequest) ToModel() *models.Summary {
	return &models.Summary{
		Title:   r.Titulo,
		Content: r.Conteudo,
	}
}

func (r UpdateSummaryRequest) ApplyTo(summary *models.Summary) {
	if r.Titulo != nil {
		summary.Title = *r.Titulo
	}
	if r.Conteudo != nil {
		summary.Content = *r.Conteudo
	}
}

func ToSummaryResponse(summary models.Summary) SummaryResponse {
	return SummaryResponse{
		ID:         summary.ID,
		Titulo:     summary.Title,
		Conteudo:   summary.Content,
		AuthorUID:  summary.AuthorUID,
		AuthorName: summary.AuthorName,
		CreatedAt:  summary.CreatedAt,
		UpdatedAt:  summary.UpdatedAt,
	}
}

func ToSummaryResponses(summaries []models.Summary) []SummaryResponse {
	items := make([]SummaryResponse, len(summaries))
	for i, summary := range summaries {
		items[i] = ToSummaryResponse(summary)
	}
	return items
}
