package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Register a user without going through the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		a := newApp(config.Load())
		defer a.close()

		user, err := a.userService.Register(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("create user %q: %w", username, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %s with id %d\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	createUserCmd.Flags().String("username", "", "username of the new user")
	createUserCmd.Flags().String("password", "", "password of the new user")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createUserCmd)
}
