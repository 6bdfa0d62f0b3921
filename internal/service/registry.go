package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/models"
)

// applicationRegistry is the full-snapshot implementation of
// [ApplicationRegistry]. A refresh reads applicationCount and then every
// record sequentially; the snapshot is replaced only when the whole walk
// succeeded.
type applicationRegistry struct {
	resolver ContractResolver
	checker  ExistenceChecker
	ledger   adapter.LedgerAdapter
	log      *logger.Logger
	chainID  uint64

	mu       sync.RWMutex
	apps     []models.Application
	protocol uint64
}

// NewApplicationRegistry constructs an [ApplicationRegistry] for the given
// network.
func NewApplicationRegistry(
	resolver ContractResolver,
	checker ExistenceChecker,
	ledger adapter.LedgerAdapter,
	chainID uint64,
	log *logger.Logger,
) ApplicationRegistry {
	return &applicationRegistry{
		resolver: resolver,
		checker:  checker,
		ledger:   ledger,
		log:      log,
		chainID:  chainID,
	}
}

// Refresh implements [ApplicationRegistry].
func (r *applicationRegistry) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	meta := r.resolver.Resolve(r.chainID)
	if !meta.Configured() {
		r.replace(nil, 0)
		return ErrNotConfigured
	}

	deployed, err := r.checker.Check(ctx, meta.Address)
	if err != nil {
		r.replace(nil, 0)
		return fmt.Errorf("existence check: %w", err)
	}
	if !deployed {
		r.replace(nil, 0)
		return adapter.ErrNotDeployed
	}

	count, err := r.ledger.ApplicationCount(ctx, meta.Address)
	if err != nil {
		// снапшот не трогаем — остаётся предыдущий
		log.Err(err).
			Str("func", "applicationRegistry.Refresh").
			Msg("failed to read application count")
		return fmt.Errorf("application count: %w", err)
	}

	apps := make([]models.Application, 0, count)
	for id := uint64(0); id < count; id++ {
		app, infoErr := r.ledger.GetApplicationInfo(ctx, meta.Address, id)
		if infoErr != nil {
			log.Err(infoErr).
				Str("func", "applicationRegistry.Refresh").
				Uint64("app_id", id).
				Msg("failed to read application info")
			return fmt.Errorf("application %d: %w", id, infoErr)
		}
		apps = append(apps, app)
	}

	pid, err := r.ledger.ProtocolID(ctx, meta.Address)
	if err != nil {
		log.Err(err).
			Str("func", "applicationRegistry.Refresh").
			Msg("failed to read protocol id")
		return fmt.Errorf("protocol id: %w", err)
	}

	r.replace(apps, pid)

	log.Debug().
		Str("func", "applicationRegistry.Refresh").
		Int("applications", len(apps)).
		Msg("snapshot replaced")

	return nil
}

// Applications implements [ApplicationRegistry].
func (r *applicationRegistry) Applications() []models.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Application(nil), r.apps...)
}

// ApplicantApplications implements [ApplicationRegistry]. The id list comes
// from the ledger's per-applicant index; records are served from the current
// snapshot, so an id the snapshot has not caught up to yet is skipped.
func (r *applicationRegistry) ApplicantApplications(ctx context.Context, applicant common.Address) ([]models.Application, error) {
	log := logger.FromContext(ctx)

	meta := r.resolver.Resolve(r.chainID)
	if !meta.Configured() {
		return nil, ErrNotConfigured
	}

	deployed, err := r.checker.Check(ctx, meta.Address)
	if err != nil {
		return nil, fmt.Errorf("existence check: %w", err)
	}
	if !deployed {
		return nil, adapter.ErrNotDeployed
	}

	ids, err := r.ledger.GetApplicantApplications(ctx, meta.Address, applicant)
	if err != nil {
		log.Err(err).
			Str("func", "applicationRegistry.ApplicantApplications").
			Str("applicant", applicant.Hex()).
			Msg("failed to read applicant index")
		return nil, fmt.Errorf("applicant applications: %w", err)
	}

	r.mu.RLock()
	byID := make(map[uint64]models.Application, len(r.apps))
	for _, app := range r.apps {
		byID[app.ID] = app
	}
	r.mu.RUnlock()

	out := make([]models.Application, 0, len(ids))
	for _, id := range ids {
		if app, ok := byID[id]; ok {
			out = append(out, app)
		}
	}
	return out, nil
}

// Protocol implements [ApplicationRegistry].
func (r *applicationRegistry) Protocol() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.protocol
}

func (r *applicationRegistry) replace(apps []models.Application, protocol uint64) {
	r.mu.Lock()
	r.apps = apps
	r.protocol = protocol
	r.mu.Unlock()
}
