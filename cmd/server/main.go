package main

import (
	main_config "github.com/okatiev/banking_api/internal/config"
	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/repositories"
	"github.com/okatiev/banking_api/internal/servers/api"
	"github.com/okatiev/banking_api/internal/servers/api/handlers"
	"github.com/okatiev/banking_api/internal/storage"
	"go.uber.org/fx"
)

func main() {
	fx.New(CreateApp()).Run()
}

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(
			logging.NewZapLogger,
			storage.NewLedger,

			// HTTP API server
			api.NewServer,
			api.NewHandler,
			handlers.NewCreateTransactionHandler,
			fx.Annotate(repositories.NewTransactionsRepository, fx.As(new(handlers.CreateTransactionRepository))),
			handlers.NewListTransactionsHandler,
			fx.Annotate(repositories.NewTransactionsRepository, fx.As(new(handlers.ListTransactionsRepository))),
			handlers.NewExportTransactionsHandler,
			fx.Annotate(repositories.NewTransactionsRepository, fx.As(new(handlers.ExportTransactionsRepository))),
			handlers.NewGetTransactionHandler,
			fx.Annotate(repositories.NewTransactionsRepository, fx.As(new(handlers.GetTransactionRepository))),
			handlers.NewGetBalanceHandler,
			fx.Annotate(repositories.NewAccountsRepository, fx.As(new(handlers.BalanceRepository))),
			handlers.NewGetSummaryHandler,
			fx.Annotate(repositories.NewAccountsRepository, fx.As(new(handlers.SummaryRepository))),
			handlers.NewGetInterestHandler,
			fx.Annotate(repositories.NewAccountsRepository, fx.As(new(handlers.InterestRepository))),
		),
		fx.Supply(
			main_config.MustNewConfig(),
		),
		fx.Invoke(
			startAPIServer,
		),
	)
}

func startAPIServer(*api.Server) {}
