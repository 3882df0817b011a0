package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/factory"
	"github.com/vibast-solutions/ms-go-website/app/metrics"
	"github.com/vibast-solutions/ms-go-website/app/ratelimit"
	"github.com/vibast-solutions/ms-go-website/app/types"
	"github.com/vibast-solutions/ms-go-website/config"
)

// ContactMessageStore persists contact submissions.
type ContactMessageStore interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	ListRecent(ctx context.Context, limit int) ([]*entity.ContactMessage, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type subjectCatalog interface {
	HasSubject(value string) bool
}

type ContactReceipt struct {
	ReferenceID string
	ReceivedAt  time.Time
	Stored      bool
}

type ContactService struct {
	store     ContactMessageStore
	subjects  subjectCatalog
	limiter   ratelimit.Limiter
	retention time.Duration
	metrics   *metrics.SiteMetrics
	logger    logrus.FieldLogger
	now       func() time.Time
}

// NewContactService builds the service. store may be nil, in which case
// submissions are only logged.
func NewContactService(store ContactMessageStore, subjects subjectCatalog, limiter ratelimit.Limiter, cfg config.ContactConfig, siteMetrics *metrics.SiteMetrics) *ContactService {
	if limiter == nil {
		limiter = ratelimit.Noop{}
	}
	return &ContactService{
		store:     store,
		subjects:  subjects,
		limiter:   limiter,
		retention: cfg.Retention,
		metrics:   siteMetrics,
		logger:    factory.NewModuleLogger("contact-service"),
		now:       time.Now,
	}
}

func (s *ContactService) Submit(ctx context.Context, req *types.ContactRequest, clientIP string) (*ContactReceipt, error) {
	req.Normalize()

	verr := types.NewValidationError()
	if err := req.Validate(); err != nil {
		if !errors.As(err, &verr) {
			return nil, err
		}
	}
	if req.Subject != "" && !s.subjects.HasSubject(req.Subject) {
		verr.Add("subject", "must be one of the listed subjects")
	}
	if verr.HasErrors() {
		s.metrics.IncContact(metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, verr)
	}

	allowed, count, err := s.limiter.Allow(ctx, "contact:"+clientIP)
	if err != nil {
		s.logger.WithError(err).WithField("client_ip", clientIP).Warn("Rate limiter unavailable, accepting submission")
	} else if !allowed {
		s.metrics.IncContact(metrics.OutcomeRateLimited)
		s.logger.WithField("client_ip", clientIP).WithField("count", count).Info("Contact submission rate limited")
		return nil, ErrRateLimited
	}

	now := s.now().UTC()
	message := &entity.ContactMessage{
		ReferenceID: uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		RemoteIP:    clientIP,
		CreatedAt:   now,
	}
	if req.Company != "" {
		company := req.Company
		message.Company = &company
	}

	receipt := &ContactReceipt{ReferenceID: message.ReferenceID, ReceivedAt: now}
	if s.store != nil {
		if err := s.store.Create(ctx, message); err != nil {
			s.metrics.IncContact(metrics.OutcomeFailed)
			return nil, fmt.Errorf("store contact message: %w", err)
		}
		receipt.Stored = true
	}

	s.metrics.IncContact(metrics.OutcomeAccepted)
	s.logger.WithFields(logrus.Fields{
		"reference_id": message.ReferenceID,
		"subject":      message.Subject,
		"email":        message.Email,
		"stored":       receipt.Stored,
	}).Info("contact_submitted")

	return receipt, nil
}

func (s *ContactService) ListMessages(ctx context.Context, req *types.ListContactMessagesRequest) ([]*entity.ContactMessage, error) {
	if s.store == nil {
		return nil, ErrContactStorageUnavailable
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return s.store.ListRecent(ctx, req.Limit)
}

// PurgeExpired deletes stored messages older than the retention period and
// returns how many were removed.
func (s *ContactService) PurgeExpired(ctx context.Context) (int64, error) {
	if s.store == nil {
		return 0, ErrContactStorageUnavailable
	}
	if s.retention <= 0 {
		return 0, nil
	}

	cutoff := s.now().UTC().Add(-s.retention)
	deleted, err := s.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge contact messages: %w", err)
	}
	return deleted, nil
}
