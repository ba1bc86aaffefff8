package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
)

type addItemBody struct {
	Description string `json:"description"`
}

// AddItem stores a garment from JSON or a multipart upload.
func (h *Handler) AddItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req wardrobe.AddItemRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		req.Description = c.PostForm("description")
		if fileHeader, err := c.FormFile("file"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "failed to read upload", err))
				return
			}
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", "failed to read file", err))
				return
			}
			req.Image = data
			req.Filename = fileHeader.Filename
			req.MimeType = fileHeader.Header.Get("Content-Type")
		} else if !errors.Is(err, http.ErrMissingFile) {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
	} else {
		var body addItemBody
		if err := c.ShouldBindJSON(&body); err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
		req.Description = body.Description
	}

	resp, err := h.wardrobeSvc.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "add_item_failed"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListItems returns the caller's wardrobe, oldest first.
func (h *Handler) ListItems(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	items, err := h.wardrobeSvc.ListItems(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, fromDomainError(err, "list_items_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DeleteItem removes a garment and its photo.
func (h *Handler) DeleteItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	if err := h.wardrobeSvc.DeleteItem(c.Request.Context(), userID, id); err != nil {
		abortWithError(c, fromDomainError(err, "delete_item_failed"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ItemImage streams the stored photo of a garment.
func (h *Handler) ItemImage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	body, mimeType, err := h.wardrobeSvc.ItemImage(c.Request.Context(), userID, id)
	if err != nil {
		abortWithError(c, fromDomainError(err, "image_failed"))
		return
	}
	defer body.Close()
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.DataFromReader(http.StatusOK, -1, mimeType, body, nil)
}

// SuggestOutfit builds an outfit from the caller's wardrobe.
func (h *Handler) SuggestOutfit(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req wardrobe.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.wardrobeSvc.Suggest(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "suggest_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// maxPreviewBodyBytes caps the unauthenticated preview payload.
const maxPreviewBodyBytes = 1 << 20

// PreviewOutfit runs the engine over descriptions in the request body.
func (h *Handler) PreviewOutfit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPreviewBodyBytes)

	var req wardrobe.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.wardrobeSvc.Preview(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "preview_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseItemID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid item id", err))
		return uuid.UUID{}, false
	}
	return id, true
}
