package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/server/config"
	"github.com/dmitrijs2005/foliovault/internal/server/users"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage admin accounts",
	}

	createCmd := &cobra.Command{
		Use:   "create <username> <email>",
		Short: "Create an admin account",
		Long:  "Create an account with the given username and email. The password is prompted without echo.",
		Args:  cobra.ExactArgs(2),
		RunE:  runUsersCreate,
	}
	createCmd.Flags().String("role", common.RoleAdmin, "account role")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE:  runUsersList,
	}

	usersCmd.AddCommand(createCmd, listCmd)
	rootCmd.AddCommand(usersCmd)
}

func promptPassword() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, fmt.Errorf("password must not be empty")
	}
	return pw, nil
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	log := newLogger()

	svc, closer, err := newUserService(cfg, log)
	if err != nil {
		return err
	}
	defer closer()

	pw, err := promptPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	role, _ := cmd.Flags().GetString("role")

	result := svc.CreateUser(context.Background(), users.NewUser{
		Username: args[0],
		Email:    args[1],
		Password: string(pw),
		Role:     role,
	})
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}

	fmt.Printf("created user %s (%s)\n", result.User.Username, result.User.ID)
	return nil
}

func runUsersList(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	log := newLogger()

	svc, closer, err := newUserService(cfg, log)
	if err != nil {
		return err
	}
	defer closer()

	list, err := svc.GetAllUsers(context.Background())
	if err != nil {
		return err
	}

	for _, u := range list {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
