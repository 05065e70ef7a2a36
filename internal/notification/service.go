package notification

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("notification not found")

type Service interface {
	Notify(ctx context.Context, userID uint, notifType, title, message string) error
	NotifyDonationVerified(ctx context.Context, userID uint, amount float64, currency string) error
	NotifyDonationRejected(ctx context.Context, userID uint, amount float64, currency string) error
	ListForUser(ctx context.Context, userID uint, unreadOnly bool) ([]Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID uint, notifType, title, message string) error {
	return s.repo.Create(ctx, &Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	})
}

func (s *service) NotifyDonationVerified(ctx context.Context, userID uint, amount float64, currency string) error {
	return s.Notify(ctx, userID, TypeDonationVerified,
		"Donation verified",
		fmt.Sprintf("Your donation of %s %.2f has been verified. Thank you for your support!", currency, amount))
}

func (s *service) NotifyDonationRejected(ctx context.Context, userID uint, amount float64, currency string) error {
	return s.Notify(ctx, userID, TypeDonationRejected,
		"Donation could not be verified",
		fmt.Sprintf("Your donation of %s %.2f could not be verified. Please contact us if you believe this is a mistake.", currency, amount))
}

func (s *service) ListForUser(ctx context.Context, userID uint, unreadOnly bool) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

func (s *service) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID uint) error {
	affected, err := s.repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, userID uint) error {
	return s.repo.MarkAllRead(ctx, userID)
}
