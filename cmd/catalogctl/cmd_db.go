// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/platform/migration"
	pgstore "github.com/taibuivan/super3000/internal/platform/postgres"
)

var errNoDatabase = errors.New("DATABASE_URL is not set (or pass --database-url)")

func (a *app) databaseURL(cmd *cobra.Command) (string, error) {
	dsn, _ := cmd.Flags().GetString("database-url")
	if dsn == "" {
		dsn = a.cfg.DatabaseURL
	}
	if dsn == "" {
		return "", errNoDatabase
	}
	return dsn, nil
}

// # import

func newImportCmd(a *app) *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the PostgreSQL catalogue with the file catalogue",
		Long: `Reads the catalogue directory, applies pending migrations, and replaces
every catalogue row in one transaction. Readers never see a partial catalogue.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := a.databaseURL(cmd)
			if err != nil {
				return err
			}

			data, err := catalog.NewFileSource(a.dir).Load(cmd.Context())
			if err != nil {
				return err
			}

			if !skipMigrations {
				if err := migration.RunUp(dsn, a.cfg.MigrationPath, a.logger); err != nil {
					return err
				}
			}

			pool, err := pgstore.NewPool(cmd.Context(), dsn, a.logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := catalog.ReplacePostgres(cmd.Context(), pool, data); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories, %d makes, %d products\n",
				len(data.Categories), len(data.Cars), len(data.Products))
			return err
		},
	}

	cmd.Flags().String("database-url", "", "PostgreSQL DSN (default $DATABASE_URL)")
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations first")

	return cmd
}

// # migrate

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the catalogue schema",
	}
	cmd.PersistentFlags().String("database-url", "", "PostgreSQL DSN (default $DATABASE_URL)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dsn, err := a.databaseURL(cmd)
				if err != nil {
					return err
				}
				return migration.RunUp(dsn, a.cfg.MigrationPath, a.logger)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dsn, err := a.databaseURL(cmd)
				if err != nil {
					return err
				}

				version, dirty, err := migration.Version(dsn, a.cfg.MigrationPath, a.logger)
				if err != nil {
					return err
				}

				state := "clean"
				if dirty {
					state = "dirty"
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d (%s)\n", version, state)
				return err
			},
		},
	)

	return cmd
}
