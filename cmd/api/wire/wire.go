//go:build wireinject
// +build wireinject

package wire

import (
	"edudb-server/cmd/config"
	"edudb-server/internal/infra/async"
	"edudb-server/internal/infra/cache"
	"edudb-server/internal/infra/sql"
	learningHTTPAPI "edudb-server/internal/learning/httpapi"
	learningPersistence "edudb-server/internal/learning/persistence"
	learningUsecases "edudb-server/internal/learning/usecases"
	workbenchHTTPAPI "edudb-server/internal/workbench/httpapi"
	"edudb-server/internal/workbench/scripts"
	workbenchUsecases "edudb-server/internal/workbench/usecases"

	"github.com/google/wire"
)

var StoreSet = wire.NewSet(
	providePool,
	sql.NewExecutor,
	sql.NewTableAccessor,
	sql.NewRunner,
)

var DatabaseServiceSet = wire.NewSet(
	StoreSet,
	async.NewLocalBroker,
	wire.Bind(new(async.InternalBroker), new(*async.LocalBroker)),
	provideScriptSource,
	wire.Bind(new(workbenchUsecases.ScriptSource), new(*scripts.Source)),
	provideDatabaseServiceOptions,
	workbenchUsecases.NewDatabaseService,
)

var LearningSet = wire.NewSet(
	wire.Bind(new(sql.ORMSource), new(*sql.Pool)),
	learningPersistence.NewProgressRepository,
	wire.Bind(new(learningUsecases.ProgressRepository), new(*learningPersistence.SimpleProgressRepository)),
	learningPersistence.NewCertificateRepository,
	wire.Bind(new(learningUsecases.CertificateRepository), new(*learningPersistence.SimpleCertificateRepository)),
	provideScoring,
	learningUsecases.NewProgressService,
	wire.Bind(new(learningUsecases.ProgressService), new(*learningUsecases.SimpleProgressService)),
	provideCache,
	wire.Bind(new(cache.Cache), new(*cache.RistrettoCache)),
	provideCertificateServiceOptions,
	learningUsecases.NewCertificateService,
	wire.Bind(new(learningUsecases.CertificateService), new(*learningUsecases.SimpleCertificateService)),
	learningUsecases.NewCertificateCacheWorker,
)

func InitializeApplication(cfg config.AppConfig) (*Application, func(), error) {
	wire.Build(
		DatabaseServiceSet,
		wire.Bind(new(workbenchUsecases.DatabaseService), new(*workbenchUsecases.SimpleDatabaseService)),
		workbenchHTTPAPI.NewDatabaseController,
		LearningSet,
		learningHTTPAPI.NewProgressController,
		learningHTTPAPI.NewCertificateController,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}

func InitializeDatabaseService(cfg config.AppConfig) (*workbenchUsecases.SimpleDatabaseService, func(), error) {
	wire.Build(DatabaseServiceSet)
	return nil, nil, nil
}
