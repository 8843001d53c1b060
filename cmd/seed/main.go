package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/smallbiz-dev/business-manager/backend/internal/config"
	"github.com/smallbiz-dev/business-manager/backend/internal/repository"
	"github.com/smallbiz-dev/business-manager/backend/internal/seed"
	"github.com/smallbiz-dev/business-manager/backend/internal/utils"
	"github.com/smallbiz-dev/business-manager/backend/internal/worktime"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	cfg     *config.Config
	dbpool  *sql.DB
	repo    *repository.Repository
	rootCmd = &cobra.Command{
		Use:                "seed",
		Short:              "Fill the business manager database with sample or imported data",
		PersistentPreRunE:  connect,
		PersistentPostRunE: disconnect,
		SilenceUsage:       true,
	}
)

func init() {
	rootCmd.AddCommand(employeesCmd())
	rootCmd.AddCommand(shiftsCmd())
	rootCmd.AddCommand(transactionsCmd())
	rootCmd.AddCommand(importEmployeesCmd())
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbpool, err = sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()
	if err := dbpool.PingContext(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	repo = repository.NewRepository(cfg, dbpool)
	return repo.Migrate()
}

func disconnect(_ *cobra.Command, _ []string) error {
	if dbpool == nil {
		return nil
	}
	return dbpool.Close()
}

func validCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("count must be positive, got %d", n)
	}
	return nil
}

func employeesCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Insert random employees",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validCount(n); err != nil {
				return err
			}

			cnt := 0
			for i := 0; i < n; i++ {
				emp := utils.GenerateRandomEmployee(cfg.Business.EmailDomain)
				if err := repo.CreateEmployee(emp); err != nil {
					slog.Error("failed to insert employee", slog.String("error", err.Error()))
					continue
				}
				cnt++
			}

			slog.Info("employees inserted", slog.Int("count", cnt))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 5, "number of employees to insert")

	return cmd
}

func shiftsCmd() *cobra.Command {
	var n int
	var from string

	cmd := &cobra.Command{
		Use:   "shifts",
		Short: "Insert random unassigned shifts, one per day starting at --from",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validCount(n); err != nil {
				return err
			}

			start := time.Now()
			if from != "" {
				var err error
				if start, err = worktime.ParseDay(from); err != nil {
					return err
				}
			}

			cnt := 0
			for i := 0; i < n; i++ {
				shift := utils.GenerateRandomShift(start.AddDate(0, 0, i))
				if err := repo.CreateShift(shift); err != nil {
					slog.Error("failed to insert shift", slog.String("error", err.Error()))
					continue
				}
				cnt++
			}

			slog.Info("shifts inserted", slog.Int("count", cnt))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 7, "number of shifts to insert")
	cmd.Flags().StringVar(&from, "from", "", "first shift day as YYYY-MM-DD (default today)")

	return cmd
}

func transactionsCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Insert random transactions over the last n days",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validCount(n); err != nil {
				return err
			}

			today := time.Now()
			cnt := 0
			for i := 0; i < n; i++ {
				tx := utils.GenerateRandomTransaction(today.AddDate(0, 0, -i))
				if err := repo.CreateTransaction(tx); err != nil {
					slog.Error("failed to insert transaction", slog.String("error", err.Error()))
					continue
				}
				cnt++
			}

			slog.Info("transactions inserted", slog.Int("count", cnt))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 20, "number of transactions to insert")

	return cmd
}

func importEmployeesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-employees",
		Short: "Import employees from a csv file",
		Long: `Import employees from a csv file with a header row.

Required columns: name, employment_type, hourly_rate
Optional columns: email, tfn, abn, role, max_hours_week, pay_preference`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cnt, err := seed.ImportEmployees(repo, file)
			if err != nil {
				return err
			}

			slog.Info("employees imported", slog.Int("count", cnt), slog.String("file", file))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the csv file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
