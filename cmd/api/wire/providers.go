package wire

import (
	"edudb-server/cmd/config"
	"edudb-server/internal/infra/async"
	"edudb-server/internal/infra/cache"
	"edudb-server/internal/infra/sql"
	learningDomain "edudb-server/internal/learning/domain"
	learningHTTPAPI "edudb-server/internal/learning/httpapi"
	learningUsecases "edudb-server/internal/learning/usecases"
	workbenchHTTPAPI "edudb-server/internal/workbench/httpapi"
	"edudb-server/internal/workbench/scripts"
	workbenchUsecases "edudb-server/internal/workbench/usecases"

	"github.com/prometheus/client_golang/prometheus"
)

// Application holds everything the server needs. The pool is shared by every
// controller.
type Application struct {
	Pool                   *sql.Pool
	Broker                 *async.LocalBroker
	DatabaseController     *workbenchHTTPAPI.DatabaseController
	ProgressController     *learningHTTPAPI.ProgressController
	CertificateController  *learningHTTPAPI.CertificateController
	CertificateCacheWorker *learningUsecases.CertificateCacheWorker
}

func providePool(cfg config.AppConfig) (*sql.Pool, func(), error) {
	dialect, err := sql.DialectFor(cfg.Database.Driver)
	if err != nil {
		return nil, nil, err
	}

	pool := sql.NewPool(dialect, cfg.Database.Target(), sql.PoolOptions{
		MaxConns:       cfg.Database.PoolSize,
		ResetOnRelease: cfg.Database.ResetSession,
		AcquireTimeout: cfg.Database.AcquireTimeout,
		QueryTimeout:   cfg.Database.QueryTimeout,
		Registerer:     prometheus.DefaultRegisterer,
	})

	return pool, pool.Close, nil
}

// provideScriptSource looks scripts up by dialect name, so driver aliases such as
// "pgx" or "sqlite3" find the same directory as their canonical driver.
func provideScriptSource(cfg config.AppConfig) (*scripts.Source, error) {
	dialect, err := sql.DialectFor(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	return scripts.NewSource(dialect.Name(), cfg.Database.ScriptsDir)
}

func provideDatabaseServiceOptions(cfg config.AppConfig) (workbenchUsecases.DatabaseServiceOptions, error) {
	policy, err := sql.ParseFailurePolicy(cfg.Bootstrap.FailurePolicy)
	if err != nil {
		return workbenchUsecases.DatabaseServiceOptions{}, err
	}
	return workbenchUsecases.DatabaseServiceOptions{Policy: policy}, nil
}

func provideScoring(cfg config.AppConfig) learningDomain.Scoring {
	return learningDomain.Scoring{
		QuestionsPerLevel: cfg.Learning.QuestionsPerLevel,
		Levels:            cfg.Learning.Levels,
		PassingScore:      cfg.Learning.PassingScore,
	}
}

func provideCache() (*cache.RistrettoCache, error) {
	return cache.New(cache.DefaultConfig())
}

func provideCertificateServiceOptions(cfg config.AppConfig, scoring learningDomain.Scoring) learningUsecases.CertificateServiceOptions {
	return learningUsecases.CertificateServiceOptions{
		Prefix:   cfg.Learning.CertificatePrefix,
		Scoring:  scoring,
		CacheTTL: cfg.Learning.CertificateCacheTTL,
	}
}
