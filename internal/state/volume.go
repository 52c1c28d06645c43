package state

import (
	"database/sql"
	"errors"
)

const defaultVolume = 1.0

// GetVolume returns the saved volume level, or the default volume when none was saved.
func (m *Manager) GetVolume() (float64, error) {
	return getVolumeOr(m.db, m.fallbackVolume)
}

// SetDefaultVolume sets the level GetVolume returns until one is saved.
func (m *Manager) SetDefaultVolume(v float64) {
	m.fallbackVolume = v
}

// SaveVolume schedules a debounced save of the volume level.
// Rapid changes (holding a key) result in a single write.
func (m *Manager) SaveVolume(volume float64) {
	m.volumeSaver.Push(volume)
}

func getVolume(db *sql.DB) (float64, error) {
	return getVolumeOr(db, defaultVolume)
}

func getVolumeOr(db *sql.DB, fallback float64) (float64, error) {
	var volume float64
	err := db.QueryRow(`SELECT volume FROM player_state WHERE id = 1`).Scan(&volume)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	return volume, nil
}

func saveVolume(db *sql.DB, volume float64) error {
	_, err := db.Exec(`
		INSERT INTO player_state (id, volume)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume
	`, volume)
	return err
}
