package cli

import (
	"context"
	"fmt"
	"io"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cavanliu/watchlist/internal/core/service"
)

var (
	adminUsername string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create or update the admin account",
	Long:  "Create the sole admin account, or update its username and password in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		password := adminPassword
		if password == "" {
			password, err = promptPassword()
			if err != nil {
				return err
			}
		}

		return runAdmin(cmd.Context(), services.AuthService, adminUsername, password, cmd.OutOrStdout())
	},
}

func runAdmin(ctx context.Context, auth *service.AuthService, username, password string, out io.Writer) error {
	created, err := auth.UpsertAdmin(ctx, username, password)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintln(out, "Creating user...")
	} else {
		fmt.Fprintln(out, "Updating user...")
	}

	fmt.Fprintln(out, "Done.")
	return nil
}

// promptPassword reads the password from the terminal with echo disabled.
func promptPassword() (string, error) {
	fmt.Print("Enter password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}

	return string(password), nil
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.Flags().StringVar(&adminUsername, "username", "", "Username for the admin account")
	adminCmd.Flags().StringVar(&adminPassword, "password", "", "Password for the admin account (prompted when omitted)")
	adminCmd.MarkFlagRequired("username")
}
