package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sabidos/sabidos-api/internal/constants"
	"github.com/sashabaranov/go-openai"
)

// GeneratedFlashcard is a flashcard suggested from free text
type GeneratedFlashcard struct {
	Title string `json:"titulo"`
	Front string `json:"frente"`
	Back  string `json:"verso"`
}

// FlashcardGenerator turns study text into flashcard suggestions
type FlashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, text string) ([]GeneratedFlashcard, error)
}

type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey, model string) *AIService {
	if model == "" {
		model = openai.GPT4o
	}
	return &AIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateFlashcards asks the chat model for question/answer pairs covering text
func (s *AIService) GenerateFlashcards(ctx context.Context, text string) ([]GeneratedFlashcard, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`Você é um assistente de estudos. Crie flashcards a partir do texto abaixo.

Texto:
%s

Responda com um objeto JSON neste formato:
{
  "flashcards": [
    {
      "titulo": "tema curto do cartão",
      "frente": "pergunta objetiva",
      "verso": "resposta completa"
    }
  ]
}

Regras:
- No máximo %d flashcards
- Se o texto não tiver conteúdo estudável, retorne {"flashcards": []}
- Retorne apenas o JSON, sem explicações`, text, constants.MaxAIGeneratedFlashcards)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseFlashcards(resp.Choices[0].Message.Content)
}

func parseFlashcards(content string) ([]GeneratedFlashcard, error) {
	var payload struct {
		Flashcards []GeneratedFlashcard `json:"flashcards"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}
	return payload.Flashcards, nil
}

// FlashcardSuggester validates generated flashcards before they reach the client
type FlashcardSuggester struct {
	generator FlashcardGenerator
}

// NewFlashcardSuggester creates a FlashcardSuggester. A nil generator
// makes every call fail with ErrAIServiceNotConfigured.
func NewFlashcardSuggester(generator FlashcardGenerator) *FlashcardSuggester {
	return &FlashcardSuggester{generator: generator}
}

// Enabled reports whether a generator is configured
func (s *FlashcardSuggester) Enabled() bool {
	return s != nil && s.generator != nil
}

// Suggest generates flashcards from text, dropping incomplete ones and
// clamping fields to the sizes a flashcard accepts
func (s *FlashcardSuggester) Suggest(ctx context.Context, text string) ([]GeneratedFlashcard, error) {
	if !s.Enabled() {
		return nil, ErrAIServiceNotConfigured
	}

	generated, err := s.generator.GenerateFlashcards(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate flashcards: %w", err)
	}

	valid := make([]GeneratedFlashcard, 0, len(generated))
	for _, card := range generated {
		card.Front = strings.TrimSpace(card.Front)
		card.Back = strings.TrimSpace(card.Back)
		if card.Front == "" || card.Back == "" {
			continue
		}

		card.Title = strings.TrimSpace(card.Title)
		if card.Title == "" {
			card.Title = truncate(card.Front, 160)
		}
		card.Title = truncate(card.Title, 160)
		card.Front = truncate(card.Front, 8000)
		card.Back = truncate(card.Back, 8000)

		valid = append(valid, card)
		if len(valid) == constants.MaxAIGeneratedFlashcards {
			break
		}
	}

	if len(valid) == 0 {
		return nil, ErrAINoFlashcards
	}

	return valid, nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
