package ourwork

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sahayognepal/charity-backend/internal/storage"
)

var ErrNotFound = errors.New("work item not found")

type CreateInput struct {
	Title       string
	Description string
	Location    string
	IsPublished *bool
	DisplayDate *time.Time
	Image       *multipart.FileHeader
}

type UpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	IsPublished *bool
	DisplayDate *time.Time
	Image       *multipart.FileHeader
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*WorkItem, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*WorkItem, error)
	Delete(ctx context.Context, id uint) error
	ListPublished(ctx context.Context) ([]WorkItem, error)
	ListAll(ctx context.Context) ([]WorkItem, error)
}

type service struct {
	repo  Repository
	store storage.Service
}

func NewService(repo Repository, store storage.Service) Service {
	return &service{repo: repo, store: store}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*WorkItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	item := &WorkItem{
		Title:       title,
		Description: description,
		Location:    strings.TrimSpace(input.Location),
		IsPublished: true,
		DisplayDate: time.Now(),
	}
	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
	}
	if input.DisplayDate != nil {
		item.DisplayDate = *input.DisplayDate
	}

	if input.Image != nil {
		url, err := s.store.Upload(ctx, "our-work", input.Image)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		item.ImageURL = url
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*WorkItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("title must not be empty")
		}
		item.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, fmt.Errorf("description must not be empty")
		}
		item.Description = description
	}
	if input.Location != nil {
		item.Location = strings.TrimSpace(*input.Location)
	}
	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
	}
	if input.DisplayDate != nil {
		item.DisplayDate = *input.DisplayDate
	}

	if input.Image != nil {
		url, err := s.store.Upload(ctx, "our-work", input.Image)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		item.ImageURL = url
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ListPublished(ctx context.Context) ([]WorkItem, error) {
	return s.repo.ListPublished(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]WorkItem, error) {
	return s.repo.ListAll(ctx)
}
