package dto

import (
	"time"

	"github.com/sabidos/sabidos-api/internal/models"
)

// CreateFlashcardRequest is the body accepted when creating a flashcard
type CreateFlashcardRequest struct {
	Titulo string `json:"titulo" binding:"required,max=160"`
	Frente string `json:"frente" binding:"required,max=8000"`
	Verso  string `json:"verso" binding:"required,max=8000"`
}

// UpdateFlashcardRequest carries the flashcard fields to change
type UpdateFlashcardRequest struct {
	Titulo *string `json:"titulo" binding:"omitnil,min=1,max=160"`
	Frente *string `json:"frente" binding:"omitnil,min=1,max=8000"`
	Verso  *string `json:"verso" binding:"omitnil,min=1,max=8000"`
}

// GenerateFlashcardsRequest is the body for AI flashcard suggestions
type GenerateFlashcardsRequest struct {
	Text string `json:"text" binding:"required,max=20000"`
}

// FlashcardResponse represents a flashcard in API responses
type FlashcardResponse struct {
	ID         uint64    `json:"id"`
	Titulo     string    `json:"titulo"`
	Frente     string    `json:"frente"`
	Verso      string    `json:"verso"`
	AuthorUID  string    `json:"authorUid"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FlashcardSuggestion is a generated flashcard that has not been saved
type FlashcardSuggestion struct {
	Titulo string `json:"titulo"`
	Frente string `json:"frente"`
	Verso  string `json:"verso"`
}

// GenerateFlashcardsResponse wraps the generated suggestions
type GenerateFlashcardsResponse struct {
	Flashcards []FlashcardSuggestion `json:"flashcards"`
}

func (r CreateFlashcardRequest) ToModel() *models.Flashcard {
	return &models.Flashcard{
		Title: r.Titulo,
		Front: r.Frente,
		Back:  r.Verso,
	}
}

func (r UpdateFlashcardRequest) ApplyTo(card *models.Flashcard) {
	if r.Titulo != nil {
		card.Title = *r.Titulo
	}
	if r.Frente != nil {
		card.Front = *r.Frente
	}
	if r.Verso != nil {
		card.Back = *r.Verso
	}
}

func ToFlashcardResponse(card models.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:         card.ID,
		Titulo:     card.Title,
		Frente:     card.Front,
		Verso:      card.Back,
		AuthorUID:  card.AuthorUID,
		AuthorName: card.AuthorName,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
}

func ToFlashcardResponses(cards []models.Flashcard) []FlashcardResponse {
	items := make([]FlashcardResponse, len(cards))
	for i, card := range cards {
		items[i] = ToFlashcardResponse(card)
	}
	return items
}
