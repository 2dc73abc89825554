package migration

import (
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMigrator_LoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"002_create_movies.up.sql":   {Data: []byte("CREATE TABLE movies ();")},
		"002_create_movies.down.sql": {Data: []byte("DROP TABLE movies;")},
		"001_create_users.up.sql":    {Data: []byte("CREATE TABLE users ();")},
		"001_create_users.down.sql":  {Data: []byte("DROP TABLE users;")},
	}

	m := NewMigrator(nil, discardLogger(), fsys)

	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	// Sorted by version regardless of filesystem order
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_users", migrations[0].Name)
	assert.Equal(t, "CREATE TABLE users ();", migrations[0].UpSQL)
	assert.Equal(t, "DROP TABLE users;", migrations[0].DownSQL)

	assert.Equal(t, 2, migrations[1].Version)
	assert.Equal(t, "create_movies", migrations[1].Name)
}

func TestMigrator_LoadMigrations_SkipsInvalidFilenames(t *testing.T) {
	fsys := fstest.MapFS{
		"notes.up.sql":              {Data: []byte("-- not a migration")},
		"abc_bad_version.up.sql":    {Data: []byte("-- not a migration")},
		"abc_bad_version.down.sql":  {Data: []byte("-- not a migration")},
		"001_create_users.up.sql":   {Data: []byte("CREATE TABLE users ();")},
		"001_create_users.down.sql": {Data: []byte("DROP TABLE users;")},
	}

	m := NewMigrator(nil, discardLogger(), fsys)

	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Equal(t, 1, migrations[0].Version)
}

func TestMigrator_LoadMigrations_MissingDownFile(t *testing.T) {
	fsys := fstest.MapFS{
		"001_create_users.up.sql": {Data: []byte("CREATE TABLE users ();")},
	}

	m := NewMigrator(nil, discardLogger(), fsys)

	migrations, err := m.LoadMigrations()
	assert.Error(t, err)
	assert.Nil(t, migrations)
}

func TestMigrator_ChecksumIsStable(t *testing.T) {
	m := NewMigrator(nil, discardLogger(), fstest.MapFS{})

	a := m.calculateChecksum("CREATE TABLE users ();")
	b := m.calculateChecksum("CREATE TABLE users ();")
	c := m.calculateChecksum("CREATE TABLE movies ();")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
