package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/middleware"
	"marketdz/internal/usecase"
	"marketdz/pkg/errors"
	"marketdz/pkg/response"
)

type PhotoHandler struct {
	photoUseCase *usecase.PhotoUseCase
}

func NewPhotoHandler(photoUseCase *usecase.PhotoUseCase) *PhotoHandler {
	return &PhotoHandler{photoUseCase: photoUseCase}
}

// Upload accepts a multipart form with a "photo" file field.
func (h *PhotoHandler) Upload(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.Error(c, errors.BadRequest("Photo file is required", err))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	photo, err := h.photoUseCase.AddPhoto(c.Request().Context(), middleware.UserID(c), id, file, contentType)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, photo)
}

func (h *PhotoHandler) List(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	photos, err := h.photoUseCase.ListPhotos(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, photos)
}

func (h *PhotoHandler) Delete(c echo.Context) error {
	photoID, err := strconv.Atoi(c.Param("photoId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid photo id", err))
	}
	if err := h.photoUseCase.DeletePhoto(c.Request().Context(), middleware.UserID(c), photoID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *PhotoHandler) SetPrimary(c echo.Context) error {
	photoID, err := strconv.Atoi(c.Param("photoId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid photo id", err))
	}
	photo, err := h.photoUseCase.SetPrimaryPhoto(c.Request().Context(), middleware.UserID(c), photoID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, photo)
}

func (h *PhotoHandler) Reorder(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	var req struct {
		PhotoIDs []int `json:"photoIds" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	photos, err := h.photoUseCase.ReorderPhotos(c.Request().Context(), middleware.UserID(c), id, req.PhotoIDs)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, photos)
}
