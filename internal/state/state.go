// Package state persists the player's small bits of local state in SQLite.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/prodify/internal/debounce"
)

const (
	appName      = "prodify"
	dbFileName   = "prodify.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db             *sql.DB
	volumeSaver    *debounce.Debouncer[float64]
	fallbackVolume float64
}

// Open opens the database at the XDG data path.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the database at dbPath.
func OpenPath(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	m := &Manager{db: db, fallbackVolume: defaultVolume}
	m.volumeSaver = debounce.New(saveDebounce, func(v float64) {
		_ = saveVolume(m.db, v)
	})
	return m, nil
}

// Close flushes pending saves and closes the database.
func (m *Manager) Close() error {
	m.volumeSaver.Flush()
	m.volumeSaver.Stop()
	return m.db.Close()
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
