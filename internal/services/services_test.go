package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sabidos/sabidos-api/internal/auth"
	"github.com/sabidos/sabidos-api/internal/constants"
	"github.com/sabidos/sabidos-api/internal/database"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ServiceTestSuite runs the services against an in-memory store
type ServiceTestSuite struct {
	suite.Suite
	db         *gorm.DB
	ctx        context.Context
	clock      time.Time
	users      *UserService
	events     *EventService
	flashcards *FlashcardService
	pomodoros  *PomodoroService
	summaries  *SummaryService
}

func (suite *ServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.MigrateDatabase(suite.db))

	suite.ctx = context.Background()
	suite.clock = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	now := func() time.Time { return suite.clock }

	log := zap.NewNop()
	suite.users = NewUserService(repository.NewUserRepository(suite.db), log)
	suite.users.now = now

	suite.events = NewEventService(repository.NewEventRepository(suite.db), suite.users, log)
	suite.events.now = now

	suite.flashcards = NewFlashcardService(repository.NewFlashcardRepository(suite.db), suite.users, log)
	suite.flashcards.now = now

	suite.pomodoros = NewPomodoroService(repository.NewPomodoroRepository(suite.db), suite.users, log)
	suite.pomodoros.now = now

	suite.summaries = NewSummaryService(repository.NewSummaryRepository(suite.db), suite.users, log)
	suite.summaries.now = now
}

func (suite *ServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ServiceTestSuite) createFlashcard(identity auth.Identity) *models.Flashcard {
	card, err := suite.flashcards.Create(suite.ctx, &models.Flashcard{
		Title: "Mitose",
		Front: "O que é mitose?",
		Back:  "Divisão celular",
	}, identity)
	suite.Require().NoError(err)
	return card
}

func (suite *ServiceTestSuite) TestCreate_StampsOwnerAndCreatesUser() {
	card, err := suite.flashcards.Create(suite.ctx, &models.Flashcard{
		Title:      "Mitose",
		Front:      "f",
		Back:       "b",
		AuthorUID:  "spoofed",
		AuthorName: "spoofed",
	}, auth.Identity{UID: "u1", Name: "Ana", Email: "ana@example.com"})
	suite.Require().NoError(err)

	suite.Equal("u1", card.AuthorUID)
	suite.Equal("Ana", card.AuthorName)
	suite.Equal(suite.clock, card.CreatedAt.UTC())
	suite.Equal(suite.clock, card.UpdatedAt.UTC())
	suite.Require().NotNil(card.User)
	suite.Equal("ana@example.com", *card.User.Email)

	user, err := suite.users.GetByUID(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal("Ana", *user.Name)
}

func (suite *ServiceTestSuite) TestCreate_RequiresOwner() {
	_, err := suite.summaries.Create(suite.ctx, &models.Summary{Title: "t", Content: "c"}, auth.Identity{})

	suite.ErrorIs(err, ErrOwnerRequired)
}

func (suite *ServiceTestSuite) TestCreate_AuthorNameFallsBackToStoredName() {
	_, err := suite.users.CreateOrUpdate(suite.ctx, "u1", "", &ProfileInput{Name: strPtr("Bia")})
	suite.Require().NoError(err)

	note, err := suite.summaries.Create(suite.ctx, &models.Summary{Title: "t", Content: "c"}, auth.Identity{UID: "u1"})
	suite.Require().NoError(err)

	suite.Equal("Bia", note.AuthorName)
}

func (suite *ServiceTestSuite) TestCreate_PomodoroGetsUserID() {
	session, err := suite.pomodoros.Create(suite.ctx, &models.Pomodoro{Cycles: 4, Duration: 25, WorkTime: 25, BreakTime: 5}, auth.Identity{UID: "u1"})
	suite.Require().NoError(err)

	user, err := suite.users.GetByUID(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal(user.ID, session.UserID)
	suite.Equal("u1", session.AuthorUID)
}

func (suite *ServiceTestSuite) TestCreate_NamelessCallerNeverStampsUID() {
	card := suite.createFlashcard(auth.Identity{UID: "u-anon"})
	suite.Equal("u-anon", card.AuthorUID)
	suite.Equal(constants.DefaultUserName, card.AuthorName)

	_, err := suite.users.CreateOrUpdate(suite.ctx, "u-anon", "", &ProfileInput{Name: strPtr("")})
	suite.Require().NoError(err)

	card = suite.createFlashcard(auth.Identity{UID: "u-anon"})
	suite.Equal(constants.DefaultAuthorName, card.AuthorName)
}

func (suite *ServiceTestSuite) TestGet_Idempotent() {
	card := suite.createFlashcard(auth.Identity{UID: "u1", Name: "Ana"})

	first, err := suite.flashcards.Get(suite.ctx, card.ID)
	suite.Require().NoError(err)

	suite.clock = suite.clock.Add(time.Hour)
	second, err := suite.flashcards.Get(suite.ctx, card.ID)
	suite.Require().NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal(first.Title, second.Title)
	suite.Equal(first.Front, second.Front)
	suite.Equal(first.Back, second.Back)
	suite.Equal(first.AuthorUID, second.AuthorUID)
	suite.Equal(first.AuthorName, second.AuthorName)
	suite.True(first.CreatedAt.Equal(second.CreatedAt))
	suite.True(first.UpdatedAt.Equal(second.UpdatedAt))
	suite.True(second.UpdatedAt.Equal(card.UpdatedAt), "reads must not restamp updated_at")
}

func (suite *ServiceTestSuite) TestGet_NotFound() {
	_, err := suite.events.Get(suite.ctx, 42)

	suite.ErrorIs(err, ErrResourceNotFound)
}

func (suite *ServiceTestSuite) TestUpdate_ByOwnerRefreshesUpdatedAt() {
	card := suite.createFlashcard(auth.Identity{UID: "u1"})
	created := card.CreatedAt

	suite.clock = suite.clock.Add(time.Hour)
	updated, err := suite.flashcards.Update(suite.ctx, card.ID, "u1", func(f *models.Flashcard) {
		f.Back = "Divisão em duas células idênticas"
	})
	suite.Require().NoError(err)

	suite.Equal("Divisão em duas células idênticas", updated.Back)
	suite.Equal("Mitose", updated.Title)
	suite.True(created.Equal(updated.CreatedAt))
	suite.Equal(suite.clock, updated.UpdatedAt.UTC())
}

func (suite *ServiceTestSuite) TestUpdate_ByOtherUserIsRejected() {
	card := suite.createFlashcard(auth.Identity{UID: "u2"})

	applied := false
	_, err := suite.flashcards.Update(suite.ctx, card.ID, "u1", func(f *models.Flashcard) {
		applied = true
		f.Front = "hacked"
	})

	suite.ErrorIs(err, ErrNotResourceOwner)
	suite.False(applied)

	stored, err := suite.flashcards.Get(suite.ctx, card.ID)
	suite.Require().NoError(err)
	suite.Equal("O que é mitose?", stored.Front)
}

func (suite *ServiceTestSuite) TestUpdate_Missing() {
	_, err := suite.events.Update(suite.ctx, 7, "u1", func(*models.Event) {})

	suite.ErrorIs(err, ErrResourceNotFound)
}

func (suite *ServiceTestSuite) TestDelete() {
	note, err := suite.summaries.Create(suite.ctx, &models.Summary{Title: "t", Content: "c"}, auth.Identity{UID: "u1"})
	suite.Require().NoError(err)

	suite.ErrorIs(suite.summaries.Delete(suite.ctx, note.ID, "u2"), ErrNotResourceOwner)
	suite.ErrorIs(suite.summaries.Delete(suite.ctx, 9999, "u1"), ErrResourceNotFound)

	suite.Require().NoError(suite.summaries.Delete(suite.ctx, note.ID, "u1"))
	_, err = suite.summaries.Get(suite.ctx, note.ID)
	suite.ErrorIs(err, ErrResourceNotFound)
}

func (suite *ServiceTestSuite) TestListAndCount() {
	suite.createFlashcard(auth.Identity{UID: "u1"})
	suite.createFlashcard(auth.Identity{UID: "u1"})
	suite.createFlashcard(auth.Identity{UID: "u2"})

	mine, err := suite.flashcards.List(suite.ctx, ListInput{AuthorUID: "u1"})
	suite.Require().NoError(err)
	suite.Len(mine, 2)

	all, err := suite.flashcards.List(suite.ctx, ListInput{})
	suite.Require().NoError(err)
	suite.Len(all, 3)

	count, err := suite.flashcards.CountByOwner(suite.ctx, "u2")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.flashcards.CountByOwner(suite.ctx, "nobody")
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *ServiceTestSuite) TestBelongsTo() {
	card := suite.createFlashcard(auth.Identity{UID: "u1"})

	ok, err := suite.flashcards.BelongsTo(suite.ctx, card.ID, "u1")
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.flashcards.BelongsTo(suite.ctx, card.ID, "u2")
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.flashcards.BelongsTo(suite.ctx, card.ID, "")
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *ServiceTestSuite) TestEvents_RangeAndUpcoming() {
	identity := auth.Identity{UID: "u1"}
	for _, offset := range []time.Duration{-24 * time.Hour, 2 * time.Hour, 72 * time.Hour, 30 * 24 * time.Hour} {
		_, err := suite.events.Create(suite.ctx, &models.Event{
			Title: "evento",
			Date:  suite.clock.Add(offset),
		}, identity)
		suite.Require().NoError(err)
	}

	upcoming, err := suite.events.Upcoming(suite.ctx, 0, "u1")
	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 2)
	suite.True(upcoming[0].Date.Before(upcoming[1].Date))

	ranged, err := suite.events.Range(suite.ctx, suite.clock.Add(40*24*time.Hour), suite.clock.Add(-48*time.Hour), "")
	suite.Require().NoError(err)
	suite.Len(ranged, 4)
}

func (suite *ServiceTestSuite) TestPomodoro_TotalDuration() {
	for _, d := range []int{25, 50} {
		_, err := suite.pomodoros.Create(suite.ctx, &models.Pomodoro{Cycles: 1, Duration: d}, auth.Identity{UID: "u1"})
		suite.Require().NoError(err)
	}
	_, err := suite.pomodoros.Create(suite.ctx, &models.Pomodoro{Cycles: 1, Duration: 100}, auth.Identity{UID: "u2"})
	suite.Require().NoError(err)

	total, err := suite.pomodoros.TotalDuration(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal(int64(75), total)
}

func (suite *ServiceTestSuite) TestUser_CreateOrUpdate() {
	user, err := suite.users.CreateOrUpdate(suite.ctx, "u1", "a@example.com", nil)
	suite.Require().NoError(err)
	suite.Equal(constants.DefaultUserName, *user.Name)
	suite.Equal("a@example.com", *user.Email)
	suite.Nil(user.UpdatedAt)

	suite.clock = suite.clock.Add(time.Minute)
	user, err = suite.users.CreateOrUpdate(suite.ctx, "u1", "", &ProfileInput{Name: strPtr("Carla")})
	suite.Require().NoError(err)
	suite.Equal("Carla", *user.Name)
	suite.Equal("a@example.com", *user.Email)
	suite.Require().NotNil(user.UpdatedAt)
	suite.Equal(suite.clock, user.UpdatedAt.UTC())

	user, err = suite.users.Sync(suite.ctx, "u1", "b@example.com", nil)
	suite.Require().NoError(err)
	suite.Equal("Carla", *user.Name)
	suite.Equal("b@example.com", *user.Email)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.User{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ServiceTestSuite) TestUser_GetMissing() {
	_, err := suite.users.GetByUID(suite.ctx, "ghost")

	suite.ErrorIs(err, ErrUserNotFound)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

type fakeGenerator struct {
	cards []GeneratedFlashcard
	err   error
}

func (f *fakeGenerator) GenerateFlashcards(context.Context, string) ([]GeneratedFlashcard, error) {
	return f.cards, f.err
}

func TestFlashcardSuggester(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		_, err := NewFlashcardSuggester(nil).Suggest(context.Background(), "texto")
		assert.ErrorIs(t, err, ErrAIServiceNotConfigured)
	})

	t.Run("drops incomplete cards and fills titles", func(t *testing.T) {
		suggester := NewFlashcardSuggester(&fakeGenerator{cards: []GeneratedFlashcard{
			{Title: " DNA ", Front: "O que é DNA?", Back: "Ácido desoxirribonucleico"},
			{Title: "vazio", Front: "  ", Back: "x"},
			{Front: "Quem descobriu a penicilina?", Back: "Fleming"},
		}})

		cards, err := suggester.Suggest(context.Background(), "texto")
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "DNA", cards[0].Title)
		assert.Equal(t, "Quem descobriu a penicilina?", cards[1].Title)
	})

	t.Run("caps the number of cards", func(t *testing.T) {
		many := make([]GeneratedFlashcard, constants.MaxAIGeneratedFlashcards+5)
		for i := range many {
			many[i] = GeneratedFlashcard{Title: "t", Front: "f", Back: "b"}
		}

		cards, err := NewFlashcardSuggester(&fakeGenerator{cards: many}).Suggest(context.Background(), "x")
		require.NoError(t, err)
		assert.Len(t, cards, constants.MaxAIGeneratedFlashcards)
	})

	t.Run("nothing usable", func(t *testing.T) {
		_, err := NewFlashcardSuggester(&fakeGenerator{}).Suggest(context.Background(), "x")
		assert.ErrorIs(t, err, ErrAINoFlashcards)
	})

	t.Run("generator failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := NewFlashcardSuggester(&fakeGenerator{err: boom}).Suggest(context.Background(), "x")
		assert.ErrorIs(t, err, boom)
	})
}

func TestParseFlashcards(t *testing.T) {
	cards, err := parseFlashcards(`{"flashcards":[{"titulo":"a","frente":"b","verso":"c"}]}`)
	require.NoError(t, err)
	assert.Equal(t, []GeneratedFlashcard{{Title: "a", Front: "b", Back: "c"}}, cards)

	_, err = parseFlashcards("not json")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "ação", truncate("ação", 4))
	assert.Equal(t, "aç", truncate("ação", 2))
}

func strPtr(s string) *string { return &s }
