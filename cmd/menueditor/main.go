package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/talkincode/fudofusion/internal/app"
	"github.com/talkincode/fudofusion/internal/console"
	"github.com/talkincode/fudofusion/internal/domain"
	"github.com/talkincode/fudofusion/internal/editor"
	"github.com/talkincode/fudofusion/internal/menureport"
	"github.com/talkincode/fudofusion/internal/menustore"
	"go.uber.org/zap"
)

var (
	configFile string
	menuFile   string
	exportOut  string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "menueditor",
		Short:         "Edit the restaurant menu from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEditor,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml)")
	root.PersistentFlags().StringVarP(&menuFile, "menu", "m", "", "menu csv file, overrides the config")

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the menu to an xlsx spreadsheet",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	export.Flags().StringVarP(&exportOut, "out", "o", "menu.xlsx", "spreadsheet to write")

	report := &cobra.Command{
		Use:   "report",
		Short: "Print price statistics per category",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}

	root.AddCommand(export, report)
	return root
}

func runEditor(cmd *cobra.Command, _ []string) error {
	a, err := app.Bootstrap(configFile, menuFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return err
	}
	defer a.Release()

	con := console.New(os.Stdin, os.Stdout)
	ed := editor.New(con, a.MenuStore())
	if err := ed.Load(cmd.Context()); err != nil {
		con.Error(fmt.Sprintf("Could not load menu: %v", err))
		zap.L().Error("load menu failed", zap.Error(err))
		return err
	}

	err = ed.Run(cmd.Context())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, console.ErrInputClosed):
		zap.L().Warn("editor stopped without saving", zap.Error(err))
		con.Warn("\nInput closed, unsaved changes discarded.")
		return err
	default:
		zap.L().Error("editor failed", zap.Error(err))
		return err
	}
}

func runExport(cmd *cobra.Command, _ []string) error {
	items, release, err := loadMenu(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	if err := menureport.ExportXLSX(exportOut, items); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d items written to %s\n", len(items), exportOut)
	return nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	items, release, err := loadMenu(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	rows, err := menureport.Summarize(items)
	if err != nil {
		fmt.Fprintln(os.Stderr, "report:", err)
		return err
	}
	return menureport.WriteReport(cmd.OutOrStdout(), rows)
}

// loadMenu reads the configured menu for the non-interactive subcommands.
// A missing file is an error here.
func loadMenu(ctx context.Context) ([]domain.MenuItem, func(), error) {
	a, err := app.Bootstrap(configFile, menuFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return nil, nil, err
	}
	items, err := a.MenuStore().Load(ctx)
	if err != nil {
		if errors.Is(err, menustore.ErrMenuNotFound) {
			fmt.Fprintln(os.Stderr, "menu file not found:", a.MenuStore().Path())
		} else {
			fmt.Fprintln(os.Stderr, "load menu:", err)
		}
		a.Release()
		return nil, nil, err
	}
	return items, a.Release, nil
}
