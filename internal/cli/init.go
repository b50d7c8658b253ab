package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/config"
	"github.com/networkbook/networkbook/internal/storage"
	"github.com/networkbook/networkbook/internal/ui"
)

var initBackend string

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Create a config file and an empty book",
	Long: `Creates the config file if it is missing, then an empty book.

Without PATH the book is created where --book resolves to. With PATH the book
is created there and registered in config.toml under the --book name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		cfgPath := getConfigPath()
		created, err := config.CreateDefault(cfgPath)
		if err != nil {
			return handleError(cmd, ErrConfigInvalid, err, "")
		}

		book := currentBook
		if len(args) == 1 || initBackend != "" {
			c := getConfig()
			if initBackend != "" {
				c.Storage.Backend = initBackend
			}
			book, err = c.ResolveBook(book.Name, initPath(args))
			if err != nil {
				return handleError(cmd, ErrConfigInvalid, err, "Use --backend yaml or --backend sqlite")
			}
		}
		if abs, err := filepath.Abs(book.Path); err == nil {
			book.Path = abs
		}

		registered := false
		if len(args) == 1 {
			c := getConfig()
			c.AddBook(book.Name, book.Path)
			if err := config.SaveTo(cfgPath, c); err != nil {
				return handleError(cmd, ErrConfigInvalid, err, "")
			}
			registered = true
		}

		bookCreated := false
		if _, err := os.Stat(book.Path); os.IsNotExist(err) {
			store, err := storage.Open(book.Backend, book.Path)
			if err != nil {
				return handleError(cmd, ErrStorage, err, "")
			}
			if err := store.Save(nil); err != nil {
				return handleError(cmd, ErrStorage, err, "")
			}
			bookCreated = true
		}

		if isJSONOutput() {
			outputSuccess(cmd, map[string]interface{}{
				"config":         cfgPath,
				"config_created": created,
				"book":           book.Name,
				"path":           book.Path,
				"backend":        string(book.Backend),
				"book_created":   bookCreated,
				"registered":     registered,
			}, nil)
			return nil
		}

		if created {
			fmt.Fprintln(w, ui.Successf("Created config %s", cfgPath))
		}
		if bookCreated {
			fmt.Fprintln(w, ui.Successf("Created book %s at %s", book.Name, book.Path))
		} else {
			fmt.Fprintln(w, ui.Infof("Book %s already exists at %s", book.Name, book.Path))
		}
		if registered {
			fmt.Fprintln(w, ui.Hint(fmt.Sprintf("Registered as '%s' in %s", book.Name, cfgPath)))
		}
		return nil
	},
}

// initPath is the PATH argument, else --book-path.
func initPath(args []string) string {
	if len(args) == 0 {
		return bookPathFlag
	}
	return args[0]
}

func init() {
	initCmd.Flags().StringVar(&initBackend, "backend", "", "Storage backend for the new book: yaml or sqlite")
	rootCmd.AddCommand(initCmd)
}
