package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/talkincode/fudofusion/internal/app"
	"github.com/talkincode/fudofusion/internal/console"
	"github.com/talkincode/fudofusion/internal/menustore"
	"github.com/talkincode/fudofusion/internal/orderer"
	"go.uber.org/zap"
)

var (
	configFile string
	menuFile   string
)

func main() {
	cmd := &cobra.Command{
		Use:           "menuorder",
		Short:         "Browse the menu by category and build an order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (yaml)")
	cmd.Flags().StringVarP(&menuFile, "menu", "m", "", "menu csv file, overrides the config")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	a, err := app.Bootstrap(configFile, menuFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return err
	}
	defer a.Release()

	con := console.New(os.Stdin, os.Stdout)
	dialogs := orderer.NewConsoleDialogs(con)

	menu, err := a.MenuStore().LoadByCategory(cmd.Context())
	if errors.Is(err, menustore.ErrMenuNotFound) {
		dialogs.Error("File Error", "CSV file not found.")
	}
	if err == nil && menu.IsEmpty() {
		err = errors.New("menu has no items")
	}
	if err != nil {
		con.Error("Failed to load the menu items.")
		zap.L().Error("load menu failed", zap.String("path", a.MenuStore().Path()), zap.Error(err))
		return err
	}

	o, err := orderer.New(menu, dialogs, a.Config().System.TicketNode)
	if err != nil {
		zap.L().Error("orderer init failed", zap.Error(err))
		return err
	}
	return orderer.NewShell(con, o).Run(cmd.Context())
}
