package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/heal-booking-service/internal/infra/session"
	"github.com/m04kA/heal-booking-service/internal/infra/storage/postgres"
	userRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/user"
	usersService "github.com/m04kA/heal-booking-service/internal/service/users"
	"github.com/m04kA/heal-booking-service/pkg/logger"
	"github.com/m04kA/heal-booking-service/pkg/passhash"
)

var promoteAdminCmd = &cobra.Command{
	Use:   "promote-admin <email>",
	Short: "Grant the admin role to an existing user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer log.Close()

		connector := postgres.NewConnector(cfg.Database)
		defer connector.Close()

		db, err := connector.Get(cmd.Context())
		if err != nil {
			return err
		}

		svc := usersService.NewService(
			userRepo.NewRepository(db),
			passhash.New(hasherParams(cfg.Auth)),
			session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
			log,
		)

		user, err := svc.PromoteAdmin(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("promote %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Email, user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promoteAdminCmd)
}
