package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/middleware"
	"github.com/volunteerhub-dev/volunteerhub/internal/services"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

type LoginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) setTokenCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Domain:   h.domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) CreateUser(ctx *gin.Context) {
	var body services.RegisterInput

	if !h.bindJSON(ctx, &body) {
		return
	}

	user, err := h.users.Register(ctx.Request.Context(), body)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

func (h *Handler) LoginUser(ctx *gin.Context) {
	var body LoginUserRequest

	if !h.bindJSON(ctx, &body) {
		return
	}

	user, token, err := h.users.Login(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.setTokenCookie(ctx, token, int(h.tokenTTL.Seconds()))

	ctx.JSON(http.StatusOK, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	})
}

func (h *Handler) LogoutUser(ctx *gin.Context) {
	h.setTokenCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) Me(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h *Handler) UpdateUser(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	var body services.ProfileUpdate

	if !h.bindJSON(ctx, &body) {
		return
	}

	updated, err := h.users.UpdateProfile(ctx.Request.Context(), user, body)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    toUserResponse(updated),
	})
}

func (h *Handler) ListUsers(ctx *gin.Context) {
	users, err := h.users.ListUsers(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toUserResponses(users))
}
