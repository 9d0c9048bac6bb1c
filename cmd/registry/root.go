package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"contract-registry/internal/config"
	domainerrors "contract-registry/internal/domain/errors"
	"contract-registry/internal/infrastructure/database"
	"contract-registry/internal/infrastructure/document"
	"contract-registry/internal/infrastructure/repositories"
	"contract-registry/internal/interfaces/view"
	"contract-registry/internal/usecases"
	"contract-registry/pkg/logger"
)

var newOpener = func() usecases.DocumentOpener { return document.NewOpener() }

// app holds the dependencies shared by every subcommand. It is populated in
// the root PersistentPreRunE, after flags are parsed.
type app struct {
	cfg       *config.Config
	dbPath    string
	provider  *database.Provider
	contracts *usecases.ContractUsecase
	renderer  *view.Renderer
}

// NewRootCommand creates the root command of the contract registry CLI.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Contract registry",
		Long: `Track contracts in a local SQLite file: the parties, the dates, the
amount and a link to the signed document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&a.dbPath, "db", cfg.Database.Path, "path of the contract store file")

	cmd.AddCommand(newListCommand(a))
	cmd.AddCommand(newShowCommand(a))
	cmd.AddCommand(newAddCommand(a))
	cmd.AddCommand(newEditCommand(a))
	cmd.AddCommand(newDeleteCommand(a))
	cmd.AddCommand(newOpenCommand(a))
	cmd.AddCommand(newServeCommand(a))

	return cmd
}

func (a *app) setup(ctx context.Context) error {
	a.provider = database.NewProvider(a.dbPath, database.WithLogLevel(a.cfg.Database.LogLevel))
	if err := a.provider.InitializeSchema(ctx); err != nil {
		return err
	}
	logger.Debug(ctx, "Contract store ready", zap.String("path", a.dbPath))

	repo := repositories.NewContractRepository(a.provider)
	a.contracts = usecases.NewContractUsecase(repo, newOpener())
	a.renderer = view.NewRenderer(a.cfg.Display.Locale, a.cfg.Display.Currency)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.Validation(fmt.Sprintf("invalid contract ID %q", s))
	}
	return id, nil
}

// userMessage returns the text shown for err on the terminal.
func userMessage(err error) string {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && !errors.Is(err, domainerrors.ErrStoreOperation) && !errors.Is(err, domainerrors.ErrStoreUnavailable) {
		return appErr.Message
	}
	return err.Error()
}
