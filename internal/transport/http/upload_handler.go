package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyadritrails/trails-api/internal/service"
	"github.com/sahyadritrails/trails-api/internal/util"
)

type UploadHandler struct {
	uploads *service.UploadService
}

// RegisterUpload wires the image relay. The booking form posts payment
// screenshots here before it has any credentials, so the route is public.
func RegisterUpload(e *echo.Echo, uploads *service.UploadService) {
	handler := &UploadHandler{uploads: uploads}
	e.POST("/api/upload", handler.upload)
}

func (h *UploadHandler) upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("no file provided"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read file"))
	}
	defer src.Close()

	url, err := h.uploads.Upload(c.Request().Context(), service.FileUpload{
		Reader:      src,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"url": url})
}

func (h *UploadHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUploadMissing),
		errors.Is(err, service.ErrUploadTooLarge),
		errors.Is(err, service.ErrUploadUnsupportedType):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	default:
		c.Logger().Errorf("upload handler: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("upload failed"))
	}
}
