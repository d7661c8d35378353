// Package cmd provides the CLI commands for the gitcoach application.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitcoach/internal/adapters/gitexec"
	"github.com/xvierd/gitcoach/internal/adapters/notification"
	"github.com/xvierd/gitcoach/internal/adapters/repoinfo"
	"github.com/xvierd/gitcoach/internal/adapters/storage"
	"github.com/xvierd/gitcoach/internal/config"
	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/ports"
	"github.com/xvierd/gitcoach/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath      string
	jsonOutput  bool
	workDirFlag string
	timeoutFlag time.Duration

	// Global dependencies
	appConfig      *config.Config
	storageAdapter ports.Storage
	runner         ports.CommandRunner
	prober         ports.EnvProber
	inspector      ports.RepoInspector
	notifier       *notification.Notifier
	coachService   *services.CoachService
	historyService *services.HistoryService
	session        *domain.LearnSession
	workingDir     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitcoach",
	Short: "gitcoach - learn Git by using it, one guided step at a time",
	Long: `gitcoach walks you through real Git commands with plain-English
explanations. Before every action it explains what's about to happen;
after every action it shows the exact command that ran and translates
Git's output into something a first-time user can act on.

Run "gitcoach" with no arguments to open the lesson menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runMenu,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the history database (default: ~/.gitcoach/gitcoach.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringVarP(&workDirFlag, "dir", "C", "", "Project directory to coach in (default: current directory)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-command timeout (default: from config, 30s)")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("gitcoach\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	workingDir = workDirFlag
	if workingDir == "" {
		workingDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	timeout := time.Duration(appConfig.Git.CommandTimeout)
	if timeoutFlag > 0 {
		timeout = timeoutFlag
	}

	runner = gitexec.NewRunner(timeout)
	prober = gitexec.NewProber(runner)
	inspector = repoinfo.NewInspector()
	notifier = notification.New(&appConfig.Notifications)

	if dbPath == "" {
		dbPath = config.GetDBPath(appConfig)
	}
	if err := os.MkdirAll(appConfig.Storage.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	storageAdapter, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	coachService = services.NewCoachService(runner, prober, storageAdapter)
	coachService.SetSlowNotifier(notifier, time.Duration(appConfig.Git.SlowThreshold))
	historyService = services.NewHistoryService(storageAdapter)

	session = domain.NewLearnSession()

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if storageAdapter != nil {
		return storageAdapter.Close()
	}
	return nil
}
