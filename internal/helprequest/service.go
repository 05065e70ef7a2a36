package helprequest

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("help request not found")

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

type Service interface {
	Submit(ctx context.Context, name, email, phone, subject, message string) (*HelpRequest, error)
	List(ctx context.Context, status string) ([]HelpRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*HelpRequest, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, name, email, phone, subject, message string) (*HelpRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("email is not a valid email address")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	req := &HelpRequest{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Subject: strings.TrimSpace(subject),
		Message: message,
		Status:  StatusPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) List(ctx context.Context, status string) ([]HelpRequest, error) {
	if status != "" && !validStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.repo.List(ctx, status)
}

func (s *service) UpdateStatus(ctx context.Context, id uint, status string) (*HelpRequest, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	req.Status = status
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
