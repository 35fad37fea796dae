package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cavanliu/watchlist/internal/core/repository"
	"github.com/cavanliu/watchlist/internal/core/service"
	"github.com/cavanliu/watchlist/internal/infrastructure/sqlite"
	"github.com/cavanliu/watchlist/internal/logger"
	"github.com/cavanliu/watchlist/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Watchlist - a single-admin movie watchlist",
	Long: `Watchlist is a small server-rendered web application for keeping a
personal list of movies.

It provides:
- An HTML frontend with session login for the sole admin account
- Movie create/edit/delete through the browser
- Maintenance commands for schema setup, sample data and the admin account`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Init(cfg.LogLevel)

		// An unconfigured deployment must never run with a known signing
		// key; sessions just won't survive a restart.
		if cfg.SecretKey == "" {
			cfg.SecretKey = uuid.NewString()
			log.Warn().Msg("secret_key not configured, generated a random one; sessions reset on restart")
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional, settings also come from WATCHLIST_* env vars)")
}

// Services holds all initialized dependencies
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	MovieRepo   repository.MovieRepository
	AuthService *service.AuthService
}

// initServices opens the database and wires the repositories and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	movieRepo := sqlite.NewMovieRepository(db)
	authService := service.NewAuthService(userRepo)

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		MovieRepo:   movieRepo,
		AuthService: authService,
	}, nil
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
