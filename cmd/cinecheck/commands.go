package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/init-pkg/cinecheck/domain/dtos"
	catalog_service "github.com/init-pkg/cinecheck/internal/app/catalog/service"
	insight_service "github.com/init-pkg/cinecheck/internal/app/insight/service"
	search_service "github.com/init-pkg/cinecheck/internal/app/search/service"
	"github.com/init-pkg/cinecheck/internal/bootstrap"
	assets_client "github.com/init-pkg/cinecheck/internal/clients/assets"
	openai_client "github.com/init-pkg/cinecheck/internal/clients/openai"
	"github.com/init-pkg/cinecheck/internal/config"
	"github.com/init-pkg/cinecheck/internal/logger"

	"github.com/spf13/cobra"
)

var envFile string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cinecheck",
		Short: "Search movie titles in column A of a spreadsheet",
		Long: `cinecheck loads a spreadsheet of movie titles and searches column A.
Matches come with a short AI description of the first one; misses come with AI suggestions.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file read before the environment")

	rootCmd.AddCommand(newServeCmd(), newSearchCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			bootstrap.Run(cfg)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	var (
		file   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search one title in a spreadsheet and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.NewWithWriter(cfg, cmd.ErrOrStderr())

			return runSearch(cmd.Context(), cfg, log, file, args[0], pretty, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Spreadsheet to search (.xlsx, .xls, .csv); defaults to the autoload asset")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runSearch(ctx context.Context, cfg *config.Config, log *slog.Logger, file, query string, pretty bool, out io.Writer) error {
	var (
		openaiClient = openai_client.New(cfg)
		insights     = insight_service.New(openai_client.NewGenerator(openaiClient, cfg), log)
		catalog      = catalog_service.New(catalog_service.NewWorkbookReader(cfg, log), assets_client.New(cfg), cfg, log)
		search       = search_service.New(catalog, insights, insights, log)
	)

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := catalog.LoadFile(ctx, filepath.Base(file), data); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	} else if _, err := catalog.LoadURL(ctx, cfg.Catalog.Autoload); err != nil {
		return fmt.Errorf("load %s: %w", cfg.Catalog.Autoload, err)
	}

	result, err := search.Search(ctx, query)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(dtos.NewSearchResponse(result))
}
