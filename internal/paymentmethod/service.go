package paymentmethod

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahayognepal/charity-backend/internal/storage"
)

var ErrNotFound = errors.New("payment method not found")

type CreateInput struct {
	MethodName     string
	MethodType     string
	AccountDetails []byte
	IsActive       *bool
	DisplayOrder   int
	QRImage        *multipart.FileHeader
}

type UpdateInput struct {
	MethodName     *string
	MethodType     *string
	AccountDetails []byte
	DisplayOrder   *int
	QRImage        *multipart.FileHeader
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*PaymentMethod, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*PaymentMethod, error)
	SetActive(ctx context.Context, id uint, active bool) (*PaymentMethod, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*PaymentMethod, error)
	ListAll(ctx context.Context) ([]PaymentMethod, error)
	ListPublic(ctx context.Context) ([]PublicPaymentMethod, error)
	ActiveMethodExists(ctx context.Context, name string) (bool, error)
}

type service struct {
	repo  Repository
	store storage.Service
}

func NewService(repo Repository, store storage.Service) Service {
	return &service{repo: repo, store: store}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*PaymentMethod, error) {
	name := strings.TrimSpace(input.MethodName)
	if name == "" {
		return nil, fmt.Errorf("method_name is required")
	}
	methodType := strings.ToLower(strings.TrimSpace(input.MethodType))
	if methodType == "" {
		return nil, fmt.Errorf("method_type is required")
	}
	if err := ValidateAccountDetails(methodType, input.AccountDetails); err != nil {
		return nil, err
	}

	method := &PaymentMethod{
		MethodName:     name,
		MethodType:     methodType,
		AccountDetails: datatypes.JSON(input.AccountDetails),
		IsActive:       true,
		DisplayOrder:   input.DisplayOrder,
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	// QR upload happens before the insert so a storage failure leaves
	// no method row behind.
	if input.QRImage != nil {
		url, err := s.store.Upload(ctx, "qr-codes", input.QRImage)
		if err != nil {
			return nil, fmt.Errorf("qr code upload failed: %w", err)
		}
		method.QRCodeURL = url
	}

	if err := s.repo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*PaymentMethod, error) {
	method, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.MethodName != nil {
		name := strings.TrimSpace(*input.MethodName)
		if name == "" {
			return nil, fmt.Errorf("method_name must not be empty")
		}
		method.MethodName = name
	}
	if input.MethodType != nil {
		methodType := strings.ToLower(strings.TrimSpace(*input.MethodType))
		if methodType == "" {
			return nil, fmt.Errorf("method_type must not be empty")
		}
		method.MethodType = methodType
	}
	if input.AccountDetails != nil {
		if err := ValidateAccountDetails(method.MethodType, input.AccountDetails); err != nil {
			return nil, err
		}
		method.AccountDetails = datatypes.JSON(input.AccountDetails)
	} else if input.MethodType != nil {
		// The type changed but the payload did not; the existing payload
		// must still satisfy the new type's shape.
		if err := ValidateAccountDetails(method.MethodType, method.AccountDetails); err != nil {
			return nil, err
		}
	}
	if input.DisplayOrder != nil {
		method.DisplayOrder = *input.DisplayOrder
	}

	if input.QRImage != nil {
		url, err := s.store.Upload(ctx, "qr-codes", input.QRImage)
		if err != nil {
			return nil, fmt.Errorf("qr code upload failed: %w", err)
		}
		method.QRCodeURL = url
	}

	if err := s.repo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *service) SetActive(ctx context.Context, id uint, active bool) (*PaymentMethod, error) {
	method, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	method.IsActive = active
	if err := s.repo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
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

func (s *service) GetByID(ctx context.Context, id uint) (*PaymentMethod, error) {
	method, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return method, nil
}

func (s *service) ListAll(ctx context.Context) ([]PaymentMethod, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListPublic(ctx context.Context) ([]PublicPaymentMethod, error) {
	methods, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]PublicPaymentMethod, 0, len(methods))
	for _, m := range methods {
		public = append(public, PublicPaymentMethod{
			ID:             m.ID,
			MethodName:     m.MethodName,
			MethodType:     m.MethodType,
			AccountDetails: m.AccountDetails,
			QRCodeURL:      m.QRCodeURL,
			DisplayOrder:   m.DisplayOrder,
			Instructions:   Instructions(m.MethodType),
		})
	}
	return public, nil
}

func (s *service) ActiveMethodExists(ctx context.Context, name string) (bool, error) {
	_, err := s.repo.FindActiveByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
