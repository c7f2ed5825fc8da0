package cli

import (
	"fmt"

	"garage-backend/internal/auth"
	"garage-backend/internal/database/models"
	"garage-backend/internal/repository"
	"garage-backend/internal/service"

	"github.com/spf13/cobra"
)

func userCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Account utilities (create/activate)",
	}

	cmd.AddCommand(userCreateCommand(opts), userSetActiveCommand(opts))
	return cmd
}

func userCreateCommand(opts *rootOptions) *cobra.Command {
	var (
		username string
		password string
		admin    bool
	)

	c := &cobra.Command{
		Use:   "create",
		Short: "Register an account with its own tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := opts.open()
			if err != nil {
				return err
			}
			defer closeDB(db)

			users := repository.NewUserRepository(db)
			logs := service.NewActivityLogService(repository.NewActivityLogRepository(db), service.NewValidator())
			authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), users, logs, service.NewValidator())
			if err != nil {
				return err
			}

			created, err := authService.Register(cmd.Context(), &auth.CredentialsRequest{
				Username: &username,
				Password: &password,
			})
			if err != nil {
				return err
			}

			role := created.Role
			if admin {
				if err := users.Update(created.ID, map[string]interface{}{"role": models.UserRoleAdmin}); err != nil {
					return fmt.Errorf("promote %s: %w", username, err)
				}
				role = models.UserRoleAdmin
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (id %d, tenant %d)\n", role, created.Username, created.ID, created.TenantID)
			return nil
		},
	}
	c.Flags().StringVar(&username, "username", "", "login name")
	c.Flags().StringVar(&password, "password", "", "initial password")
	c.Flags().BoolVar(&admin, "admin", false, "grant the admin role")
	_ = c.MarkFlagRequired("username")
	_ = c.MarkFlagRequired("password")
	return c
}

func userSetActiveCommand(opts *rootOptions) *cobra.Command {
	var active bool

	c := &cobra.Command{
		Use:   "set-active <username>",
		Short: "Enable or disable login for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := opts.open()
			if err != nil {
				return err
			}
			defer closeDB(db)

			users := repository.NewUserRepository(db)
			user, err := users.GetByUsername(args[0])
			if err != nil {
				return fmt.Errorf("find user %s: %w", args[0], err)
			}
			if err := users.Update(user.ID, map[string]interface{}{"is_active": active}); err != nil {
				return fmt.Errorf("update user %s: %w", args[0], err)
			}

			state := "disabled"
			if active {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, user.Username)
			return nil
		},
	}
	c.Flags().BoolVar(&active, "active", true, "whether the account may log in")
	return c
}
