package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/dto"
	"github.com/sabidos/sabidos-api/internal/services"
	"go.uber.org/zap"
)

type UserHandler struct {
	users *services.UserService
	log   *zap.Logger
}

func NewUserHandler(users *services.UserService, log *zap.Logger) *UserHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserHandler{users: users, log: log}
}

// Me returns the caller's profile, creating it on first contact
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	user, err := h.users.CreateOrUpdate(c.Request.Context(), identity.UID, identity.Email, nil)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile changes the caller's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.CreateOrUpdate(c.Request.Context(), identity.UID, identity.Email, &services.ProfileInput{Name: req.Name})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// Sync creates or refreshes a user from the client after sign-in
func (h *UserHandler) Sync(c *gin.Context) {
	var req dto.SyncUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Sync(c.Request.Context(), req.FirebaseUID, req.Email, req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}
