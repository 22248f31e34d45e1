package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/semschema/config"
	"github.com/c360studio/semschema/metric"
	"github.com/c360studio/semschema/ontology"
	"github.com/c360studio/semschema/shacl"
	"github.com/c360studio/semschema/storage"
)

const (
	// Version is the semschema binary version.
	Version = "0.1.0"
	appName = "semschema"
)

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Domain ontology management for network participants",
		Long: `Semschema manages the domain-specific semantic schema shared by
participants of a network. Every participant must load an identical
ontology and constraint-shape set, identified by a content hash, and
reject transactions that do not conform to it.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		detectCmd(),
		hashCmd(&configPath),
		statsCmd(&configPath),
		queryCmd(&configPath),
		checkCmd(&configPath),
		validateCmd(&configPath),
		watchCmd(&configPath),
		versionCmd(),
	)

	return cmd
}

// configureLogging installs a text slog handler at the requested level.
func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig resolves the schema configuration from an explicit file or
// the layered loader.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(slog.Default()).Load()
}

// buildManager constructs an ontology manager over the reference memory
// store and structural validator.
func buildManager(configPath string) (*ontology.Manager, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return ontology.NewManager(cfg, ontology.Options{
		NewStore:     storage.NewStore,
		NewValidator: shacl.NewValidator,
		Logger:       slog.Default(),
		Metrics:      metric.NewMetrics(),
	})
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Detect the RDF serialization format of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ontology.DetectFormat(string(content), args[0]))
			return nil
		},
	}
}

func hashCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Compute the schema set fingerprint from the configured files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			hash, err := cfg.ComputeOntologyHash()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func statsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print entity counts for the loaded ontology",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := buildManager(*configPath)
			if err != nil {
				return err
			}
			stats := manager.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "domain:      %s\n", manager.DomainName())
			fmt.Fprintf(cmd.OutOrStdout(), "classes:     %d\n", stats.ClassCount)
			fmt.Fprintf(cmd.OutOrStdout(), "properties:  %d\n", stats.PropertyCount)
			fmt.Fprintf(cmd.OutOrStdout(), "individuals: %d\n", stats.IndividualCount)
			fmt.Fprintf(cmd.OutOrStdout(), "total:       %d\n", stats.TotalEntities())
			return nil
		},
	}
}

func queryCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "query <query>",
		Short: "Execute a structured query against the loaded ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := buildManager(*configPath)
			if err != nil {
				return err
			}
			result, err := manager.QueryOntology(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func checkCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <peer-hash>",
		Short: "Check ontology consistency against a peer's hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := buildManager(*configPath)
			if err != nil {
				return err
			}
			if err := manager.CheckOntologyConsistency(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "consistent")
			return nil
		},
	}
}

func validateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rdf-file>",
		Short: "Validate transaction RDF against the loaded shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read transaction: %w", err)
			}
			manager, err := buildManager(*configPath)
			if err != nil {
				return err
			}
			report, err := manager.ValidateTransaction(string(content))
			if err != nil {
				return err
			}
			if report.Conforms {
				fmt.Fprintln(cmd.OutOrStdout(), "conforms")
				return nil
			}
			for _, violation := range report.Violations {
				fmt.Fprintf(cmd.OutOrStdout(), "violation: %s\n", violation)
			}
			return fmt.Errorf("transaction does not conform")
		},
	}
}

func watchCmd(configPath *string) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload the ontology when its files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := buildManager(*configPath)
			if err != nil {
				return err
			}
			watcher, err := ontology.NewWatcher(manager, debounce, slog.Default())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = watcher.Start(ctx)
			_ = watcher.Stop()
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Debounce delay before reloading (default 500ms)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
