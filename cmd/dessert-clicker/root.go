package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dessert-clicker/internal/app"
	"dessert-clicker/internal/catalog"
	"dessert-clicker/internal/config"
	"dessert-clicker/internal/logger"
)

func newRootCommand() *cobra.Command {
	cfg, envErr := config.Load()

	root := &cobra.Command{
		Use:           "dessert-clicker",
		Short:         "Sell desserts, one tap at a time",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&cfg.JSONLogs, "json-logs", cfg.JSONLogs, "write logs as JSON")
	flags.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "dessert catalog YAML (default: built-in)")
	flags.StringVar(&cfg.Language, "lang", cfg.Language, "interface language (en, es)")
	flags.StringVar(&cfg.Currency, "currency", cfg.Currency, "currency symbol shown after revenue")

	root.Flags().StringVar(&cfg.ShareTarget, "share", cfg.ShareTarget, "share target (clipboard, mail)")
	root.Flags().StringVar(&cfg.ShareEmail, "share-email", cfg.ShareEmail, "recipient for mail sharing")
	root.Flags().Float32Var(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width")
	root.Flags().Float32Var(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height")

	root.AddCommand(newCatalogCommand(&cfg))
	return root
}

func runGUI(cfg config.Config) error {
	log, err := logger.New(cfg.LogLevel, cfg.JSONLogs)
	if err != nil {
		return err
	}

	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"catalog": cfg.CatalogPath})
		return err
	}

	application, err := app.NewApplication(cfg, c, log)
	if err != nil {
		log.Error("Main", err, nil)
		return err
	}

	return application.Run()
}

func newCatalogCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Validate and print the dessert catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), c)
		},
	}
}

func printCatalog(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "THRESHOLD\tPRICE\tNAME\tIMAGE")
	for _, tier := range c.Tiers() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", tier.Threshold, tier.Price, tier.Name, tier.Image)
	}
	return tw.Flush()
}

