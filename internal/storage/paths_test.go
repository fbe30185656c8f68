package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDataDirCreatesDirectory(t *testing.T) {
	dataDir, err := GetDataDir()
	require.NoError(t, err)
	require.NotEmpty(t, dataDir)

	_, err = os.Stat(dataDir)
	require.NoError(t, err, "data directory should have been created")
}

func TestGetDatabaseDirIsUnderDataDir(t *testing.T) {
	dataDir, err := GetDataDir()
	require.NoError(t, err)

	dbDir, err := GetDatabaseDir()
	require.NoError(t, err)
	require.Contains(t, dbDir, dataDir)

	_, err = os.Stat(dbDir)
	require.NoError(t, err, "db directory should have been created")
}
