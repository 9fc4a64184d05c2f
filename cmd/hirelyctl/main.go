package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/config"
	dbpkg "github.com/BruksfildServices01/hirely-api/internal/db"
	infraRepo "github.com/BruksfildServices01/hirely-api/internal/infra/repository"
	ucAuth "github.com/BruksfildServices01/hirely-api/internal/usecase/auth"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hirelyctl",
		Short:        "Operator commands for the Hirely API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedServicesCmd())
	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(purgeSessionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// open connects without migrating; migrate is its own command.
func open() (*gorm.DB, *config.Config, error) {
	cfg := config.Load()
	db, err := dbpkg.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return db, cfg, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and seed roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := open()
			if err != nil {
				return err
			}

			if err := dbpkg.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := dbpkg.SeedRoles(db); err != nil {
				return fmt.Errorf("seed roles: %w", err)
			}

			fmt.Println("migration complete")
			return nil
		},
	}
}

func seedServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-services",
		Short: "Insert the default service catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := open()
			if err != nil {
				return err
			}

			n, err := dbpkg.SeedServices(cmd.Context(), db)
			if err != nil {
				return err
			}

			fmt.Printf("created %d services\n", n)
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := open()
			if err != nil {
				return err
			}

			dispatcher := audit.NewDispatcher(audit.New(db))
			defer dispatcher.Close()

			uc := ucAuth.NewSeedAdmin(
				infraRepo.NewUserGormRepository(db),
				ucAuth.NewHasher(cfg.BcryptCost),
				dispatcher,
				cfg.AdminSeedSecret,
			)

			u, err := uc.Create(cmd.Context(), ucAuth.SeedAdminInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			fmt.Printf("admin %d created (%s)\n", u.ID, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Administrator", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password (min 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func purgeSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired and revoked sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := open()
			if err != nil {
				return err
			}

			n, err := ucAuth.NewPurgeSessions(infraRepo.NewSessionGormRepository(db)).Execute(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("removed %d sessions\n", n)
			return nil
		},
	}
}

