package handlers

import (
	"github.com/sabidos/sabidos-api/internal/dto"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/services"
	"go.uber.org/zap"
)

type SummaryHandler = OwnedHandler[models.Summary, *models.Summary, dto.CreateSummaryRequest, dto.UpdateSummaryRequest, dto.SummaryResponse]

func NewSummaryHandler(summaries *services.SummaryService, log *zap.Logger) *SummaryHandler {
	return newOwnedHandler[models.Summary, *models.Summary, dto.CreateSummaryRequest, dto.UpdateSummaryRequest](
		summaries, dto.ToSummaryResponse, "/api/resumos", log)
}
