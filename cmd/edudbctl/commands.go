package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"edudb-server/cmd/config"
	"edudb-server/internal/infra/sql"
	"edudb-server/internal/workbench/domain"
	"edudb-server/internal/workbench/usecases"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type serviceFactory func(cfg config.AppConfig) (usecases.DatabaseService, func(), error)

type cli struct {
	factory serviceFactory
	cfg     config.AppConfig
	service usecases.DatabaseService
	cleanup func()
}

func newCLI(factory serviceFactory) *cli {
	return &cli{factory: factory, cleanup: func() {}}
}

// Close releases the database service once the command has run.
func (c *cli) Close() {
	c.cleanup()
	c.cleanup = func() {}
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "edudbctl",
		Short:        "Operate the EduDB sample database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().String("config", "", "path to server.yaml")
	rootCmd.PersistentFlags().Bool("verbose", false, "log to stderr")

	rootCmd.AddCommand(
		c.statusCmd(),
		c.provisionCmd(),
		c.resetCmd(),
		c.tablesCmd(),
		c.readCmd(),
		c.queryCmd(),
	)

	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	v := viper.New()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	service, cleanup, err := c.factory(cfg)
	if err != nil {
		return fmt.Errorf("initializing database service: %w", err)
	}

	c.cfg = cfg
	c.service = service
	c.cleanup = cleanup
	return nil
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the database is reachable and provisioned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.service.CheckStatus(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "connected: %t\n", status.Connected)
			fmt.Fprintf(out, "message: %s\n", status.Message)
			if status.Connected {
				fmt.Fprintf(out, "tables: %d\n", status.TableCount)
			}
			return nil
		},
	}
}

func (c *cli) provisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the database and load the sample schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			credentials := c.credentials(cmd)

			summary, err := c.service.CreateDatabase(cmd.Context(), credentials)
			printSummary(cmd.OutOrStdout(), summary)
			return err
		},
	}
	cmd.Flags().String("host", "", "server host, defaults to database.host")
	cmd.Flags().Int("port", 0, "server port, defaults to database.port")
	cmd.Flags().String("user", "", "user, defaults to database.user")
	cmd.Flags().String("password", "", "password, defaults to database.password")
	return cmd
}

func (c *cli) credentials(cmd *cobra.Command) domain.Credentials {
	credentials := domain.Credentials{
		Host:     c.cfg.Database.Host,
		Port:     c.cfg.Database.Port,
		User:     c.cfg.Database.User,
		Password: c.cfg.Database.Password,
	}
	if cmd.Flags().Changed("host") {
		credentials.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		credentials.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("user") {
		credentials.User, _ = cmd.Flags().GetString("user")
	}
	if cmd.Flags().Changed("password") {
		credentials.Password, _ = cmd.Flags().GetString("password")
	}
	return credentials
}

func printSummary(out io.Writer, summary domain.ProvisionSummary) {
	fmt.Fprintf(out, "applied: %d, failed: %d, skipped: %d\n", summary.Applied, summary.Failed, summary.Skipped)
	for _, outcome := range summary.Outcomes {
		if outcome.Outcome != sql.OutcomeFailed {
			continue
		}
		fmt.Fprintf(out, "  %s #%d: %v\n", outcome.Script, outcome.Index, outcome.Err)
	}
}

func (c *cli) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the original sample rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.service.ResetDatabase(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "database reset to original sample data")
			return nil
		},
	}
}

func (c *cli) tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := c.service.ListTables(cmd.Context())
			if err != nil {
				return err
			}
			for _, table := range tables {
				fmt.Fprintln(cmd.OutOrStdout(), table)
			}
			return nil
		},
	}
}

func (c *cli) readCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <table>",
		Short: "Print one page of a table as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := sql.DefaultPage
			page.Limit, _ = cmd.Flags().GetInt("limit")
			page.Offset, _ = cmd.Flags().GetInt("offset")
			if err := page.Validate(); err != nil {
				return err
			}

			result, err := c.service.ReadTable(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}

			if err := printRecords(cmd.OutOrStdout(), result.Rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d rows\n", len(result.Rows), result.Total)
			return nil
		},
	}
	cmd.Flags().Int("limit", sql.DefaultPage.Limit, "rows per page")
	cmd.Flags().Int("offset", 0, "rows to skip")
	return cmd
}

func (c *cli) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <select> [params...]",
		Short: "Run a read-only SELECT and print the rows as JSON lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				params = append(params, arg)
			}

			rows, err := c.service.RunReadOnlyQuery(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), rows)
		},
	}
}

func printRecords(out io.Writer, records []sql.Record) error {
	encoder := json.NewEncoder(out)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
