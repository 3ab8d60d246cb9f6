package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-site/internal/database"
	"personal-site/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestEntryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("ListEntriesByHobby", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
			require.Equal(t, []any{1}, args)
			return &valuesRows{data: [][]any{
				{2, 1, "b", "B.", now, now},
				{1, 1, "a", "A.", now.Add(-time.Hour), now},
			}}, nil
		}}
		list, err := ListEntriesByHobby(ctx, db, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, 2, list[0].ID)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
		_, err = ListEntriesByHobby(ctx, db, 1)
		require.Error(t, err)
	})

	t.Run("GetEntryForHobby", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{5, 1}, args)
			return valuesRow{vals: []any{5, 1, "t", "c", now, now}}
		}}
		e, err := GetEntryForHobby(ctx, db, 1, 5)
		require.NoError(t, err)
		require.Equal(t, 1, e.HobbyID)

		db.QueryRowFn = rowErrFn(pgx.ErrNoRows)
		_, err = GetEntryForHobby(ctx, db, 2, 5)
		require.True(t, IsNotFound(err))
	})

	t.Run("GetEntryNeighbours", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: rowFn(intPtr(4), nil)}
		prev, next, err := GetEntryNeighbours(ctx, db, &model.Entry{ID: 5, HobbyID: 1, CreatedAt: now})
		require.NoError(t, err)
		require.Equal(t, 4, *prev)
		require.Nil(t, next)

		db.QueryRowFn = rowErrFn(errors.New("x"))
		_, _, err = GetEntryNeighbours(ctx, db, &model.Entry{})
		require.Error(t, err)
	})

	t.Run("Create Update Delete", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: rowFn(7, now, now)}
		e, err := CreateEntry(ctx, db, &model.Entry{HobbyID: 1, Title: "t", Content: "c"})
		require.NoError(t, err)
		require.Equal(t, 7, e.ID)

		db.QueryRowFn = rowFn(now, now)
		require.NoError(t, UpdateEntry(ctx, db, e))

		db.QueryRowFn = rowErrFn(pgx.ErrNoRows)
		_, err = CreateEntry(ctx, db, &model.Entry{})
		require.Error(t, err)
		require.True(t, IsNotFound(UpdateEntry(ctx, db, e)))

		db.ExecFn = execFn("DELETE 1", nil)
		require.NoError(t, DeleteEntry(ctx, db, 1, 7))
		db.ExecFn = execFn("DELETE 0", nil)
		require.True(t, IsNotFound(DeleteEntry(ctx, db, 1, 7)))
		db.ExecFn = execFn("", errors.New("x"))
		require.Error(t, DeleteEntry(ctx, db, 1, 7))
	})
}
