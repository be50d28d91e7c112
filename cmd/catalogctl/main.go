// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl inspects and publishes the parts catalogue from a shell.
//
// It shares configuration with the API server (CATALOG_DIR, DATABASE_URL,
// MIGRATION_PATH, SITE_URL, WHATSAPP_NUMBER, DEFAULT_LOCALE); flags override
// the environment.
//
// # Commands
//
//   - filter: Evaluate a facet selection and list the matching products.
//   - options: Print the selector contents for a selection.
//   - link: Print the WhatsApp request link of a product.
//   - sitemap: Render sitemap.xml.
//   - import: Copy the file catalogue into PostgreSQL.
//   - migrate status: Show the schema version.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/config"
	"github.com/taibuivan/super3000/internal/platform/constants"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the resolved settings shared by every subcommand.
type app struct {
	cfg      *config.Config
	dir      string
	locale   string
	logLevel string
	logger   *slog.Logger
}

func (a *app) Locale() i18n.Locale {
	return i18n.Resolve(a.locale)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect and publish the Super 3000 parts catalogue",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			if !cmd.Flags().Changed("dir") {
				a.dir = cfg.CatalogDir
			}
			if !cmd.Flags().Changed("locale") {
				a.locale = cfg.DefaultLocale
			}
			if !i18n.IsSupported(a.locale) {
				return fmt.Errorf("unsupported locale %q", a.locale)
			}

			a.logger = newLogger(cmd, a.logLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.dir, "dir", "", "Catalogue directory (default $CATALOG_DIR)")
	cmd.PersistentFlags().StringVar(&a.locale, "locale", "", "Output locale: ar or en (default $DEFAULT_LOCALE)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newFilterCmd(a),
		newOptionsCmd(a),
		newLinkCmd(a),
		newSitemapCmd(a),
		newImportCmd(a),
		newMigrateCmd(a),
	)

	return cmd
}

// newLogger writes text logs to the command's error stream so stdout stays
// machine-readable.
func newLogger(cmd *cobra.Command, level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelWarn
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler).With(slog.String("app", constants.AppName+"-ctl"))
}
