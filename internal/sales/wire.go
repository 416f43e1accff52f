package sales

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"salesdash/internal/config"
	"salesdash/internal/sales/controller"
	"salesdash/internal/sales/repository"
	"salesdash/internal/sales/usecase"
)

// NewDatasetSource picks the repository named by cfg.Source. db is only
// used for the mysql source and may be nil otherwise.
func NewDatasetSource(cfg config.DatasetConfig, db *sql.DB) (usecase.DatasetSource, error) {
	switch cfg.Source {
	case config.DatasetSourceFile:
		return repository.NewFileRepository(cfg.Path), nil
	case config.DatasetSourceMySQL:
		if db == nil {
			return nil, fmt.Errorf("mysql dataset source requires a database connection")
		}
		return repository.NewMySQLRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
	}
}

func NewModule(source usecase.DatasetSource, metrics usecase.ReloadMetrics, logger *zap.Logger) (*usecase.DashboardUseCase, *controller.DashboardController) {
	uc := usecase.NewDashboardUseCase(source, metrics, logger)
	return uc, controller.NewDashboardController(uc, logger)
}
