package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/dto"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/services"
	"go.uber.org/zap"
)

type FlashcardHandler struct {
	*OwnedHandler[models.Flashcard, *models.Flashcard, dto.CreateFlashcardRequest, dto.UpdateFlashcardRequest, dto.FlashcardResponse]
	suggester *services.FlashcardSuggester
}

func NewFlashcardHandler(flashcards *services.FlashcardService, suggester *services.FlashcardSuggester, log *zap.Logger) *FlashcardHandler {
	return &FlashcardHandler{
		OwnedHandler: newOwnedHandler[models.Flashcard, *models.Flashcard, dto.CreateFlashcardRequest, dto.UpdateFlashcardRequest](
			flashcards, dto.ToFlashcardResponse, "/api/flashcard", log),
		suggester: suggester,
	}
}

func (h *FlashcardHandler) Register(group *gin.RouterGroup) {
	group.POST("/generate", h.Generate)
	h.OwnedHandler.Register(group)
}

// Generate suggests flashcards from free text. Nothing is stored.
func (h *FlashcardHandler) Generate(c *gin.Context) {
	if _, ok := requireIdentity(c); !ok {
		return
	}

	var req dto.GenerateFlashcardsRequest
	if !bindJSON(c, &req) {
		return
	}

	cards, err := h.suggester.Suggest(c.Request.Context(), req.Text)
	if err != nil && !errors.Is(err, services.ErrAINoFlashcards) {
		respondServiceError(c, h.log, err)
		return
	}

	resp := dto.GenerateFlashcardsResponse{Flashcards: make([]dto.FlashcardSuggestion, len(cards))}
	for i, card := range cards {
		resp.Flashcards[i] = dto.FlashcardSuggestion{Titulo: card.Title, Frente: card.Front, Verso: card.Back}
	}

	c.JSON(http.StatusOK, resp)
}
