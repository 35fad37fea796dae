package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cavanliu/watchlist/internal/core/domain"
	"github.com/cavanliu/watchlist/internal/infrastructure/sqlite"
)

var forgeCmd = &cobra.Command{
	Use:   "forge",
	Short: "Generate sample data",
	Long:  "Wipe the database and fill it with the fixed sample admin and movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		return runForge(cmd.Context(), services.DB, cmd.OutOrStdout())
	},
}

// Fixed sample data. The admin gets no credentials; they are set with the
// admin command.
var (
	forgeUserName = "Grey Li"
	forgeMovies   = []struct {
		Title string
		Year  string
	}{
		{"My Neighbor Totoro", "1988"},
		{"Dead Poets Society", "1989"},
		{"A Perfect World", "1993"},
		{"Leon", "1994"},
		{"Mahjong", "1996"},
		{"Swallowtail Butterfly", "1996"},
		{"King of Comedy", "1999"},
		{"Devils on the Doorstep", "1999"},
		{"WALL-E", "2008"},
		{"The Pork of Music", "2012"},
	}
)

func runForge(ctx context.Context, db *sqlite.DB, out io.Writer) error {
	if err := db.DropSchema(); err != nil {
		return err
	}
	if err := db.CreateSchema(); err != nil {
		return err
	}

	users := sqlite.NewUserRepository(db)
	movies := sqlite.NewMovieRepository(db)

	if err := users.Create(ctx, domain.NewUser(forgeUserName, "", "")); err != nil {
		return err
	}

	for _, m := range forgeMovies {
		if err := movies.Create(ctx, domain.NewMovie(m.Title, m.Year)); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Done.")
	return nil
}

func init() {
	rootCmd.AddCommand(forgeCmd)
}
