package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

// UploadImage stores the multipart "file" field and returns its URL.
func (h *Handler) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.images.Save(file)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.UploadResponse{URL: url})
}
