package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"salesdash/internal/domain"
	"salesdash/internal/sales/service"
)

var ErrDatasetNotLoaded = errors.New("dataset not loaded")

type DatasetSource interface {
	Load(ctx context.Context) ([]domain.OrderFact, []domain.StatusFact, error)
}

type ReloadMetrics interface {
	RecordReload(outcome string, records, delivered int)
}

// Snapshot is one consistent view of the dataset and everything derived from
// it. It is never modified after construction.
type Snapshot struct {
	Orders     []domain.CombinedOrder
	Delivered  int
	Prediction domain.Prediction
	Daily      []domain.SeriesPoint
	Regions    []domain.SeriesPoint
	Categories []domain.SeriesPoint
	LoadedAt   time.Time
}

func NewSnapshot(orders []domain.CombinedOrder, loadedAt time.Time) *Snapshot {
	return &Snapshot{
		Orders:     orders,
		Delivered:  len(service.Delivered(orders)),
		Prediction: service.Forecast(orders),
		Daily:      service.DailySales(orders),
		Regions:    service.RegionSales(orders),
		Categories: service.CategorySales(orders),
		LoadedAt:   loadedAt,
	}
}

type DashboardUseCase struct {
	source  DatasetSource
	metrics ReloadMetrics
	logger  *zap.Logger
	now     func() time.Time

	// reloadMu serializes whole reloads so an older load never replaces a
	// newer snapshot; mu only guards the pointer.
	reloadMu sync.Mutex
	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewDashboardUseCase(source DatasetSource, metrics ReloadMetrics, logger *zap.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		source:  source,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Reload reads the source again and replaces the current snapshot. On error
// the previous snapshot stays in place.
func (uc *DashboardUseCase) Reload(ctx context.Context) (*Snapshot, error) {
	uc.reloadMu.Lock()
	defer uc.reloadMu.Unlock()

	start := uc.now()

	orders, statuses, err := uc.source.Load(ctx)
	if err != nil {
		return nil, uc.reloadFailed("loading dataset failed", err)
	}

	if err := service.ValidateDataset(orders, statuses); err != nil {
		return nil, uc.reloadFailed("dataset rejected", err)
	}

	combined, err := service.Join(orders, statuses)
	if err != nil {
		return nil, uc.reloadFailed("joining dataset failed", err)
	}

	snap := NewSnapshot(combined, uc.now())

	uc.mu.Lock()
	uc.snapshot = snap
	uc.mu.Unlock()

	uc.metrics.RecordReload("success", len(snap.Orders), snap.Delivered)
	uc.logger.Info("dataset reloaded",
		zap.Int("records", len(snap.Orders)),
		zap.Int("delivered", snap.Delivered),
		zap.Duration("elapsed", uc.now().Sub(start)),
	)

	return snap, nil
}

func (uc *DashboardUseCase) reloadFailed(msg string, err error) error {
	uc.metrics.RecordReload("failure", 0, 0)
	uc.logger.Error(msg, zap.Error(err))
	return err
}

func (uc *DashboardUseCase) Snapshot() (*Snapshot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.snapshot == nil {
		return nil, ErrDatasetNotLoaded
	}
	return uc.snapshot, nil
}

// Orders returns the combined records, optionally restricted to one status.
func (uc *DashboardUseCase) Orders(status domain.OrderStatus) ([]domain.CombinedOrder, error) {
	snap, err := uc.Snapshot()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return snap.Orders, nil
	}

	filtered := make([]domain.CombinedOrder, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}
