// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/config"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/ui"
)

var (
	// Global flags
	bookName     string // Named book from config
	bookPathFlag string // Explicit path to a book file
	configPath   string
	logLevel     string
	noLinks      bool

	// Resolved values
	resolvedConfigPath string
	currentBook        config.Book
	cfg                *config.Config
	logCloser          io.Closer
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nb",
	Short: "Network Book - keep in touch with the people you meet",
	Long: `Network Book keeps contact details, graduation terms, courses and
priorities for the people in your network.

Run without a subcommand to open the interactive shell, or run a single
command directly, e.g. 'nb edit 2 n/Alice Tan'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "completion" ||
			(cmd.Parent() != nil && cmd.Parent().Name() == "completion") {
			return nil
		}

		config.LoadDotEnv()

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return handleErrorMsg(cmd, ErrConfigInvalid, err.Error(), "Fix the file or pass --config with another path")
		}
		cfg.ApplyEnv()

		level := logLevel
		if level == "" {
			level = cfg.Log.Level
		}
		logCloser, err = logger.Configure(level, cfg.Log.File)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureCodeTheme(cfg.UI.CodeTheme)

		currentBook, err = cfg.ResolveBook(bookName, bookPathFlag)
		if err != nil {
			return handleError(cmd, ErrConfigInvalid, err, "Check [storage] backend and data_dir in config.toml")
		}
		logger.Logger.Debug("resolved book", "name", currentBook.Name, "path", currentBook.Path, "backend", currentBook.Backend)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			err := logCloser.Close()
			logCloser = nil
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSilent) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&bookName, "book", "b", "", "Named book from config")
	rootCmd.PersistentFlags().StringVar(&bookPathFlag, "book-path", "", "Explicit path to a book file (.yaml or .db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&noLinks, "no-links", false, "Never print emails and links as terminal hyperlinks")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getConfigPath returns the resolved global config path.
func getConfigPath() string {
	return resolvedConfigPath
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.LoadOrEmpty(resolvedPath)
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}

// displayContext describes stdout for the current run.
func displayContext() *ui.DisplayContext {
	d := ui.NewDisplayContext(isJSONOutput())
	if noLinks {
		d.Hyperlinks = false
	}
	return d
}

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	return ui.IsTerminal(os.Stdin.Fd())
}
