//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"wxledger/internal"
	"wxledger/internal/contract"
	"wxledger/internal/controllers"
	"wxledger/internal/persistence"
	"wxledger/internal/providers"
	"wxledger/internal/services"
	"wxledger/internal/structures"
)

var ledgerSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	services.NewLedger,
	provideLedgerStats,
	providers.NewMetricsProvider,
	contract.NewDispatcher,

	persistence.NewZstdCompressor,
	persistence.NewFileManager,
	persistence.NewScheduler,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		ledgerSet,
		providers.NewInstrumentedCacheProvider,
		providers.NewSenderProvider,
		controllers.NewContractController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitConsole(cfg *structures.CliFlags) (*internal.Console, error) {

	wire.Build(
		ledgerSet,
		internal.NewConsole,
	)

	return nil, nil
}
