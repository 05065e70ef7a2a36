package donation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"mime/multipart"
	"net/mail"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/sahayognepal/charity-backend/internal/auth"
	"github.com/sahayognepal/charity-backend/internal/notification"
	"github.com/sahayognepal/charity-backend/internal/paymentmethod"
	"github.com/sahayognepal/charity-backend/internal/storage"
	"github.com/sahayognepal/charity-backend/utils"
)

var (
	ErrNotFound         = errors.New("donation not found")
	ErrAlreadyProcessed = errors.New("donation has already been processed")
	ErrUpload           = errors.New("receipt upload failed")
)

type SubmitInput struct {
	Amount        string
	Currency      string
	DonorName     string
	DonorEmail    string
	DonorCountry  string
	PaymentMethod string
	Notes         string
	Receipt       *multipart.FileHeader
	UserID        *uint
}

type PaginatedDonations struct {
	Data       []Donation `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}

type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*Donation, error)
	Verify(ctx context.Context, id uint, admin *auth.User) (*Donation, error)
	Reject(ctx context.Context, id uint, admin *auth.User) (*Donation, error)
	GetByID(ctx context.Context, id uint) (*Donation, error)
	List(ctx context.Context, filter ListFilter) (*PaginatedDonations, error)
	ListPending(ctx context.Context) ([]Donation, error)
	MyDonations(ctx context.Context, userID uint) ([]Donation, *UserDonationStats, error)
	TopDonors(ctx context.Context) ([]DonorTotal, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	ReceiptPDF(ctx context.Context, id uint) ([]byte, error)
}

type service struct {
	repo     Repository
	methods  paymentmethod.Service
	notifier notification.Service
	store    storage.Service
}

func NewService(repo Repository, methods paymentmethod.Service, notifier notification.Service, store storage.Service) Service {
	return &service{repo: repo, methods: methods, notifier: notifier, store: store}
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*Donation, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.DonorName)
	if name == "" {
		return nil, fmt.Errorf("donor_name is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.DonorEmail))
	if email == "" {
		return nil, fmt.Errorf("donor_email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("donor_email is not a valid email address")
	}
	country := strings.TrimSpace(input.DonorCountry)
	if country == "" {
		return nil, fmt.Errorf("donor_country is required")
	}

	method := strings.TrimSpace(input.PaymentMethod)
	if method == "" {
		return nil, fmt.Errorf("payment_method is required")
	}
	active, err := s.methods.ActiveMethodExists(ctx, method)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("payment_method %q is not an active payment method", method)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	d := &Donation{
		Amount:        amount,
		Currency:      currency,
		DonorName:     name,
		DonorEmail:    email,
		DonorCountry:  country,
		PaymentMethod: method,
		Notes:         strings.TrimSpace(input.Notes),
		Status:        StatusPending,
		UserID:        input.UserID,
	}

	// The receipt goes to object storage before the row exists; if the
	// upload fails there must be no donation row at all.
	if input.Receipt != nil {
		url, err := s.store.Upload(ctx, "receipts", input.Receipt)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		d.ReceiptURL = url
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a number")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("amount must be a positive number")
	}
	return amount, nil
}

func (s *service) Verify(ctx context.Context, id uint, admin *auth.User) (*Donation, error) {
	return s.transition(ctx, id, StatusVerified, admin)
}

func (s *service) Reject(ctx context.Context, id uint, admin *auth.User) (*Donation, error) {
	return s.transition(ctx, id, StatusRejected, admin)
}

func (s *service) transition(ctx context.Context, id uint, newStatus string, admin *auth.User) (*Donation, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	transitioned, err := s.repo.Transition(ctx, id, newStatus, admin.ID)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return nil, ErrAlreadyProcessed
	}

	d, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.UserID != nil {
		var notifyErr error
		if newStatus == StatusVerified {
			notifyErr = s.notifier.NotifyDonationVerified(ctx, *d.UserID, d.Amount, d.Currency)
		} else {
			notifyErr = s.notifier.NotifyDonationRejected(ctx, *d.UserID, d.Amount, d.Currency)
		}
		if notifyErr != nil {
			log.Printf("⚠️ Failed to create notification for donation %d: %v", d.ID, notifyErr)
		}
	}

	if newStatus == StatusVerified {
		utils.SendDonationVerifiedEmail(d.DonorEmail, d.DonorName, d.Amount, d.Currency)
	} else {
		utils.SendDonationRejectedEmail(d.DonorEmail, d.DonorName)
	}

	return d, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Donation, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (*PaginatedDonations, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	donations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &PaginatedDonations{
		Data:       donations,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *service) ListPending(ctx context.Context) ([]Donation, error) {
	return s.repo.ListPending(ctx)
}

func (s *service) MyDonations(ctx context.Context, userID uint) ([]Donation, *UserDonationStats, error) {
	donations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		stats = &UserDonationStats{UserID: userID}
	}
	return donations, stats, nil
}

func (s *service) TopDonors(ctx context.Context) ([]DonorTotal, error) {
	verified, err := s.repo.ListVerified(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateDonors(verified, TopDonorCount), nil
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}
