package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cavanliu/watchlist/internal/infrastructure/sqlite"
)

var initdbDrop bool

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Initialize the database",
	Long:  "Create the user and movie tables; --drop wipes existing tables first",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		return runInitDB(services.DB, initdbDrop, cmd.OutOrStdout())
	},
}

func runInitDB(db *sqlite.DB, drop bool, out io.Writer) error {
	if drop {
		if err := db.DropSchema(); err != nil {
			return err
		}
	}
	if err := db.CreateSchema(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Initialized database.")
	return nil
}

func init() {
	rootCmd.AddCommand(initdbCmd)
	initdbCmd.Flags().BoolVar(&initdbDrop, "drop", false, "Drop existing tables before creating")
}
