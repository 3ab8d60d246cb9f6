package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const minPasswordLength = 8

var (
	newPgxPool         = database.NewPgxPool
	hashPassword       = service.HashPassword
	getUserByName      = store.GetUserByName
	createUser         = store.CreateUser
	updateUserPassword = store.UpdateUserPassword
	setUserAdmin       = store.SetUserAdmin
	readPassword       = readPasswordFromTerminal
)

// readPasswordFromTerminal 不回顯輸入；stdin 不是終端機時回傳錯誤
func readPasswordFromTerminal(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("cannot read password: stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

func newCreateSuperuserCmd() *cobra.Command {
	var name, email string
	var promote bool

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create an admin account with a local password",
		Long: "Creates an admin account. The password is read from the terminal twice.\n" +
			"With --promote an existing account gets admin rights and the new password.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return errors.New("--name is required")
			}
			url, err := databaseURL()
			if err != nil {
				return err
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			again, err := readPassword("Password (again): ")
			if err != nil {
				return err
			}
			if password != again {
				return errors.New("passwords do not match")
			}
			if len(password) < minPasswordLength {
				return fmt.Errorf("password must be at least %d characters", minPasswordLength)
			}
			hash, err := hashPassword(password)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			db, err := newPgxPool(ctx, url)
			if err != nil {
				return fmt.Errorf("DB 連線失敗: %w", err)
			}
			defer db.Close()

			existing, err := getUserByName(ctx, db, name)
			switch {
			case err == nil && !promote:
				return fmt.Errorf("user %q already exists, use --promote to make it an admin", name)
			case err == nil:
				if err := updateUserPassword(ctx, db, existing.ID, hash); err != nil {
					return err
				}
				if err := setUserAdmin(ctx, db, existing.ID, true); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now an admin\n", color.GreenString("✓"), color.CyanString(name))
				return nil
			case !store.IsNotFound(err):
				return err
			}

			u, err := createUser(ctx, db, &model.User{
				Name:         name,
				Email:        strings.ToLower(strings.TrimSpace(email)),
				PasswordHash: &hash,
				IsAdmin:      true,
			})
			if store.IsUniqueViolation(err) {
				return fmt.Errorf("user %q already exists", name)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s admin %s created (id %d)\n", color.GreenString("✓"), color.CyanString(u.Name), u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().BoolVar(&promote, "promote", false, "grant admin rights to an existing account")
	return cmd
}
