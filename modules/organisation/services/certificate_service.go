package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/certificate"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/configuration"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// CertificateService manages compliance certificates attached to users.
type CertificateService struct {
	repo      certificate.Repository
	publisher eventbus.EventBus
}

func NewCertificateService(repo certificate.Repository, publisher eventbus.EventBus) *CertificateService {
	return &CertificateService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *CertificateService) GetByUser(ctx context.Context, userID uuid.UUID) ([]certificate.Certificate, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *CertificateService) GetByID(ctx context.Context, id uuid.UUID) (certificate.Certificate, error) {
	return s.repo.GetByID(ctx, id)
}

// GetExpiringSoon returns certificates expiring inside the configured
// warning window that are still valid right now.
func (s *CertificateService) GetExpiringSoon(ctx context.Context) ([]certificate.Certificate, error) {
	now := time.Now()
	window := configuration.Use().Certificates.ExpiryWarning
	return s.repo.GetExpiringBefore(ctx, now, now.Add(window))
}

func (s *CertificateService) Create(ctx context.Context, userID uuid.UUID, name string, issuedAt time.Time, expiresAt *time.Time) (certificate.Certificate, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (certificate.Certificate, error) {
		return s.repo.Create(txCtx, certificate.New(userID, name, issuedAt, expiresAt))
	})
	if err != nil {
		return certificate.Certificate{}, err
	}

	s.publisher.Publish(certificate.CreatedEvent{Result: created})
	return created, nil
}

func (s *CertificateService) Delete(ctx context.Context, id uuid.UUID) (certificate.Certificate, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (certificate.Certificate, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return certificate.Certificate{}, err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return certificate.Certificate{}, err
		}
		return existing, nil
	})
	if err != nil {
		return certificate.Certificate{}, err
	}

	s.publisher.Publish(certificate.DeletedEvent{Result: deleted})
	return deleted, nil
}
