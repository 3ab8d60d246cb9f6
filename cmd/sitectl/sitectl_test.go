package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func restore() {
	runMigrations = database.RunMigrations
	rollbackAll = database.RollbackAll
	newPgxPool = database.NewPgxPool
	hashPassword = service.HashPassword
	getUserByName = store.GetUserByName
	createUser = store.CreateUser
	updateUserPassword = store.UpdateUserPassword
	setUserAdmin = store.SetUserAdmin
	readPassword = readPasswordFromTerminal
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func passwords(pw ...string) func(string) (string, error) {
	i := 0
	return func(string) (string, error) {
		p := pw[i]
		i++
		return p, nil
	}
}

func fakePool(closed *bool) func(context.Context, string) (database.DB, error) {
	return func(_ context.Context, url string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() { *closed = true }}, nil
	}
}

func TestMigrateCommands(t *testing.T) {
	t.Cleanup(restore)

	t.Setenv("DATABASE_URL", "")
	_, err := execute(t, "migrate", "up")
	require.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://x")
	runMigrations = func(url string) error {
		require.Equal(t, "postgres://x", url)
		return nil
	}
	out, err := execute(t, "migrate", "up")
	require.NoError(t, err)
	require.Contains(t, out, "migrations applied")

	runMigrations = func(string) error { return errors.New("dirty") }
	_, err = execute(t, "migrate", "up")
	require.ErrorContains(t, err, "dirty")

	called := false
	rollbackAll = func(string) error { called = true; return nil }
	out, err = execute(t, "migrate", "down")
	require.NoError(t, err)
	require.True(t, called)
	require.Contains(t, out, "rolled back")
}

func TestCreateSuperuser(t *testing.T) {
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "postgres://x")

	t.Run("name required", func(t *testing.T) {
		_, err := execute(t, "createsuperuser")
		require.ErrorContains(t, err, "--name")
	})

	t.Run("passwords do not match", func(t *testing.T) {
		t.Cleanup(restore)
		readPassword = passwords("secret123", "secret124")
		_, err := execute(t, "createsuperuser", "--name", "admin")
		require.ErrorContains(t, err, "do not match")
	})

	t.Run("password too short", func(t *testing.T) {
		t.Cleanup(restore)
		readPassword = passwords("short", "short")
		_, err := execute(t, "createsuperuser", "--name", "admin")
		require.ErrorContains(t, err, "at least")
	})

	t.Run("creates admin", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(pw string) (string, error) { return "hash:" + pw, nil }
		readPassword = passwords("secret123", "secret123")
		closed := false
		newPgxPool = fakePool(&closed)
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) { return nil, pgx.ErrNoRows }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, "admin", u.Name)
			require.Equal(t, "root@example.com", u.Email)
			require.Equal(t, "hash:secret123", *u.PasswordHash)
			require.True(t, u.IsAdmin)
			u.ID = 1
			return u, nil
		}
		out, err := execute(t, "createsuperuser", "--name", " admin ", "--email", "Root@Example.com")
		require.NoError(t, err)
		require.Contains(t, out, "created (id 1)")
		require.True(t, closed)
	})

	t.Run("existing user without promote", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(pw string) (string, error) { return "hash:" + pw, nil }
		readPassword = passwords("secret123", "secret123")
		closed := false
		newPgxPool = fakePool(&closed)
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) { return &model.User{ID: 3}, nil }
		_, err := execute(t, "createsuperuser", "--name", "alice")
		require.ErrorContains(t, err, "--promote")
	})

	t.Run("promote existing user", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(pw string) (string, error) { return "hash:" + pw, nil }
		readPassword = passwords("secret123", "secret123")
		closed := false
		newPgxPool = fakePool(&closed)
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) { return &model.User{ID: 3}, nil }
		var gotHash string
		updateUserPassword = func(_ context.Context, _ database.DB, id int, hash string) error {
			require.Equal(t, 3, id)
			gotHash = hash
			return nil
		}
		promoted := false
		setUserAdmin = func(_ context.Context, _ database.DB, id int, admin bool) error {
			require.Equal(t, 3, id)
			promoted = admin
			return nil
		}
		out, err := execute(t, "createsuperuser", "--name", "alice", "--promote")
		require.NoError(t, err)
		require.Equal(t, "hash:secret123", gotHash)
		require.True(t, promoted)
		require.Contains(t, out, "is now an admin")
	})

	t.Run("race on insert", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(pw string) (string, error) { return "hash:" + pw, nil }
		readPassword = passwords("secret123", "secret123")
		closed := false
		newPgxPool = fakePool(&closed)
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) { return nil, pgx.ErrNoRows }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, &pgconn.PgError{Code: "23505"}
		}
		_, err := execute(t, "createsuperuser", "--name", "admin")
		require.ErrorContains(t, err, "already exists")
	})

}

func TestMainExit(t *testing.T) {
	args := os.Args
	t.Cleanup(func() {
		os.Args = args
		exitFunc = os.Exit
	})
	code := 0
	exitFunc = func(c int) { code = c }
	t.Setenv("DATABASE_URL", "")
	os.Args = []string{"sitectl", "migrate", "up"}
	main()
	require.Equal(t, 1, code)
}
