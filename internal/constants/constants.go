package constants

// Context keys
const (
	ContextKeyClaims    = "claims"
	ContextKeyRequestID = "request_id"
)

// Display defaults
const (
	// DefaultAuthorName is shown when a resource's author has no profile row.
	DefaultAuthorName = "Usuário"
	// DefaultUserName is given to users created without a name.
	DefaultUserName = "Novo usuário"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Events
const (
	DefaultUpcomingDays = 7
	MaxUpcomingDays     = 366
)

// AI
const (
	MaxAIGeneratedFlashcards = 20
)
