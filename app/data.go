package app

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/newtab-go/newtab/internal/daemon"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/store"
	"github.com/newtab-go/newtab/internal/transfer"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// offlineNote is appended to the help of commands that write the store.
const offlineNote = `
A running server keeps its own copy of the settings and bookmarks and
overwrites the stored ones on its next change. Stop the server first.`

var (
	// ErrResetNotConfirmed is returned by reset without --yes.
	ErrResetNotConfirmed = errors.New("reset needs --yes")
	// ErrCannotList is returned by keys for storage drivers without key listing.
	ErrCannotList = errors.New("storage driver cannot list keys")
)

func init() { //nolint: gochecknoinits
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", formatJSON, "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to this file instead of stdout")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm restoring the default settings")

	rootCmd.AddCommand(exportCmd, importCmd, importHTMLCmd, resetCmd, keysCmd)
}

var (
	exportFormat string
	exportOut    string
	resetYes     bool

	exportCmd = &cobra.Command{
		Use:     "export",
		Short:   "Write settings and bookmarks as an export document",
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPage(func(page *newtab.Page) error {
				doc, _ := page.Export()

				var (
					data []byte
					err  error
				)

				switch exportFormat {
				case formatJSON:
					data, err = transfer.Export(doc)
				case formatYAML:
					data, err = transfer.ExportYAML(doc)
				default:
					return errors.Errorf("unknown format %q", exportFormat)
				}

				if err != nil {
					return err
				}

				if exportOut == "" {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}

				return errors.Wrap(os.WriteFile(exportOut, data, 0o600), "write export")
			})
		},
	}

	importCmd = &cobra.Command{
		Use:     "import <file>",
		Short:   "Apply an export document",
		Long:    "Merge the settings of an export document and replace the bookmarks it lists.\n" + offlineNote,
		Args:    cobra.ExactArgs(1),
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read import file")
			}

			return withPage(func(page *newtab.Page) error {
				if err := page.Import(data); err != nil {
					return err
				}

				_, err := fmt.Fprintln(cmd.OutOrStdout(), transfer.MsgImported)

				return err
			})
		},
	}

	importHTMLCmd = &cobra.Command{
		Use:     "import-html <file>",
		Short:   "Append the links of a browser bookmark file",
		Long:    "Append the links of a Netscape bookmark file exported by a browser.\n" + offlineNote,
		Args:    cobra.ExactArgs(1),
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open bookmark file")
			}
			defer f.Close()

			return withPage(func(page *newtab.Page) error {
				n, err := page.ImportHTML(f)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d bookmarks\n", n)

				return err
			})
		},
	}

	resetCmd = &cobra.Command{
		Use:     "reset",
		Short:   "Restore the default settings, bookmarks are kept",
		Long:    "Restore the default settings. Bookmarks are kept.\n" + offlineNote,
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !resetYes {
				return ErrResetNotConfirmed
			}

			return withPage(func(page *newtab.Page) error {
				if err := page.Dispatch(newtab.EventResetSettings, ""); err != nil {
					return err
				}

				if err := page.Dispatch(newtab.EventConfirmReset, ""); err != nil {
					return err
				}

				_, err := fmt.Fprintln(cmd.OutOrStdout(), newtab.MsgResetDone)

				return err
			})
		},
	}

	keysCmd = &cobra.Command{
		Use:     "keys",
		Short:   "List the keys held by the configured storage",
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := daemon.Open(&cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			lister, ok := backend.Store.(store.Lister)
			if !ok {
				return errors.Wrap(ErrCannotList, cfg.Storage.Driver)
			}

			keys, err := lister.Keys()
			if err != nil {
				return err
			}

			for _, key := range keys {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
					return err
				}
			}

			return nil
		},
	}
)

// withPage opens the configured storage for the duration of fn.
func withPage(fn func(page *newtab.Page) error) error {
	backend, err := daemon.Open(&cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	return fn(newtab.New(backend.Store, nil))
}
