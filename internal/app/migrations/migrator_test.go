package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_create_courses.sql"))
	assert.Equal(t, "002", Version("sql/002_add_index.sql"))
	assert.Equal(t, "init.sql", Version("init.sql"))
}

func TestPending_SortsSQLFiles(t *testing.T) {
	files := fstest.MapFS{
		"002_second.sql": {Data: []byte("SELECT 2;")},
		"001_first.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("notes")},
		"nested/003.sql": {Data: []byte("SELECT 3;")},
	}

	m := NewMigrator(nil, files, zerolog.Nop())
	got, err := m.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.sql", "002_second.sql"}, got)
}

func TestFiles_EmbedsCourseSchema(t *testing.T) {
	m := NewMigrator(nil, Files(), zerolog.Nop())
	got, err := m.Pending()
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "001_create_courses.sql", got[0])
}
