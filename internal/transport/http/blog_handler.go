package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/service"
	"github.com/sahyadritrails/trails-api/internal/util"
)

type BlogHandler struct {
	blogs *service.BlogService
}

func RegisterBlogs(e *echo.Echo, auth *service.AuthService, blogs *service.BlogService) {
	handler := &BlogHandler{blogs: blogs}

	e.GET("/api/blogs", handler.list)
	e.GET("/api/blogs/:id", handler.get)

	admin := RequireAdmin(auth)
	e.POST("/api/blogs", handler.create, admin)
	e.PUT("/api/blogs/:id", handler.update, admin)
	e.DELETE("/api/blogs/:id", handler.remove, admin)
}

func (h *BlogHandler) list(c echo.Context) error {
	includeInactive, _ := strconv.ParseBool(c.QueryParam("include_inactive"))
	blogs, err := h.blogs.List(c.Request().Context(), includeInactive)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid blog id"))
	}
	blog, err := h.blogs.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) create(c echo.Context) error {
	var fields domain.BlogFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	blog, err := h.blogs.Create(c.Request().Context(), fields)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid blog id"))
	}
	var fields domain.BlogFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	blog, err := h.blogs.Update(c.Request().Context(), id, fields)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid blog id"))
	}
	if err := h.blogs.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("blog deleted"))
}

func (h *BlogHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrBlogValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	default:
		c.Logger().Errorf("blog handler: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
