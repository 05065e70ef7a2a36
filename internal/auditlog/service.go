package auditlog

import (
	"context"
	"encoding/json"
	"log"
	"math"

	"gorm.io/datatypes"
)

type Service interface {
	// LogAction records an action without failing the caller; audit write
	// errors are logged and swallowed.
	LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ipAddress, status string)
	GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
	GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ipAddress, status string) {
	detailsJSON := datatypes.JSON([]byte("{}"))
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			detailsJSON = datatypes.JSON(b)
		}
	}

	entry := &AuditLog{
		UserID:    userID,
		Action:    action,
		Details:   detailsJSON,
		IPAddress: ipAddress,
		Status:    status,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("⚠️ Failed to write audit log for %s: %v", action, err)
	}
}

func (s *service) GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &PaginatedAuditLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *service) GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error) {
	return s.repo.GetByID(ctx, id)
}
