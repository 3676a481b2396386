// Package main provides the cinder CLI application entry point.
// cinder is a thin command-line/REPL framework: commands registered by the
// host program are exposed through positional arguments (batch mode) or an
// interactive loop with completion and highlighting.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cinder/internal/app"
	"cinder/internal/logger"
	"cinder/internal/version"
)

var (
	logLevel    string
	logFile     string
	prompt      string
	historyFile string
	quiet       bool
)

// rootCmd runs batch mode when positional arguments are supplied and the
// interactive shell otherwise.
var rootCmd = &cobra.Command{
	Use:   "cinder [command [args...]] [and command [args...]]...",
	Short: "cinder - a command-line/REPL application shell",
	Long: `cinder exposes registered commands two ways: pass them as positional
arguments for one-shot execution (chain several with the word "and"), or
start it without arguments for an interactive shell with completion,
highlighting and history.`,
	Args: cobra.ArbitraryArgs,
	Run:  runApp,
}

var minVersion string

// versionCmd prints build information. With --at-least it also acts as a
// version gate for scripts: it fails when the binary is older than the
// required version.
var versionCmd = &cobra.Command{
	Use:          "version",
	Short:        "Show version information",
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(version.Get().String())
		if minVersion != "" {
			return checkMinimumVersion(minVersion)
		}
		return nil
	},
}

// checkMinimumVersion fails when the running build is older than required.
func checkMinimumVersion(required string) error {
	cmp, err := version.Compare(required)
	if err != nil {
		return err
	}
	if cmp < 0 {
		return fmt.Errorf("cinder v%s is older than required v%s", version.GetVersion(), required)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.Flags().StringVar(&prompt, "prompt", ">> ", "Interactive prompt string")
	rootCmd.Flags().StringVar(&historyFile, "history-file", "", "Append-only input history file")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Do not print command results")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}

	versionCmd.Flags().StringVar(&minVersion, "at-least", "", "Fail unless the version is at least this semantic version")
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A missing .env file is fine; it is purely optional local config.
	_ = godotenv.Load()

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runApp(_ *cobra.Command, args []string) {
	logger.Info("Starting cinder", "version", version.GetVersion())

	shell := app.Get(app.DefaultName)
	if err := registerDemoCommands(shell); err != nil {
		logger.Fatal("Failed to register commands", "error", err)
	}
	if quiet {
		shell.SetPrintResult(false)
	}

	err := shell.Run(app.RunOptions{
		Args:        args,
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		logger.Fatal("Command failed", "error", err)
	}
}
