package dto

import (
	"time"

	"github.com/sabidos/sabidos-api/internal/models"
)

// UpdateProfileRequest is the body for changing the caller's profile
type UpdateProfileRequest struct {
	Name *string `json:"name" binding:"omitnil,max=160"`
}

// SyncUserRequest is pushed by the client after a sign-in
type SyncUserRequest struct {
	FirebaseUID string  `json:"firebaseUid" binding:"required,max=160"`
	Email       string  `json:"email" binding:"required,email,max=256"`
	Name        *string `json:"name" binding:"omitnil,max=160"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uint64     `json:"id"`
	FirebaseUID string     `json:"firebaseUid"`
	Email       *string    `json:"email"`
	Name        *string    `json:"name"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// ToUserResponse converts a User model to UserResponse
func ToUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FirebaseUID: user.FirebaseUID,
		Email:       user.Email,
		Name:        user.Name,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
