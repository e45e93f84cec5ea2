package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
)

var (
	ErrBlogNotFound   = errors.New("blog not found")
	ErrBlogValidation = errors.New("blog validation failed")
)

type BlogService struct {
	blogs ports.BlogRepository
}

func NewBlogService(blogs ports.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

func (s *BlogService) List(ctx context.Context, includeInactive bool) ([]domain.Blog, error) {
	return s.blogs.List(ctx, includeInactive)
}

func (s *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Create(ctx context.Context, fields domain.BlogFields) (*domain.Blog, error) {
	for field, value := range map[string]*string{
		"title":    fields.Title,
		"image":    fields.Image,
		"category": fields.Category,
	} {
		if value == nil || strings.TrimSpace(*value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrBlogValidation, field)
		}
	}
	return s.blogs.Create(ctx, fields)
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, fields domain.BlogFields) (*domain.Blog, error) {
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be blank", ErrBlogValidation)
	}
	blog, err := s.blogs.Update(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.blogs.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrBlogNotFound
		}
		return err
	}
	return nil
}
