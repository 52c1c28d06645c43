package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/prodify/internal/catalog"
)

// maxHistory is the number of previews kept.
const maxHistory = 200

// Preview is one entry of the preview history.
type Preview struct {
	TrackID  uuid.UUID
	Title    string
	Producer string
	AudioURL string
	PlayedAt time.Time
}

// RecordPreview appends t to the preview history, dropping the oldest
// entries beyond the retention limit.
func (m *Manager) RecordPreview(t catalog.Track, at time.Time) error {
	return recordPreview(m.db, t, at)
}

// RecentPreviews returns up to limit previews, most recent first.
func (m *Manager) RecentPreviews(limit int) ([]Preview, error) {
	return recentPreviews(m.db, limit)
}

func recordPreview(db *sql.DB, t catalog.Track, at time.Time) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO preview_history (track_id, title, producer, audio_url, played_at)
		VALUES (?, ?, ?, ?, ?)
	`, t.ID.String(), t.Title, t.Producer.DisplayName, t.AudioURL, at.Unix())
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		DELETE FROM preview_history
		WHERE id NOT IN (
			SELECT id FROM preview_history
			ORDER BY played_at DESC, id DESC
			LIMIT ?
		)
	`, maxHistory)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func recentPreviews(db *sql.DB, limit int) ([]Preview, error) {
	rows, err := db.Query(`
		SELECT track_id, title, COALESCE(producer, ''), audio_url, played_at
		FROM preview_history
		ORDER BY played_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var previews []Preview
	for rows.Next() {
		var (
			p        Preview
			trackID  string
			playedAt int64
		)
		if err := rows.Scan(&trackID, &p.Title, &p.Producer, &p.AudioURL, &playedAt); err != nil {
			return nil, err
		}
		p.TrackID, err = uuid.Parse(trackID)
		if err != nil {
			return nil, fmt.Errorf("preview %q: %w", p.Title, err)
		}
		p.PlayedAt = time.Unix(playedAt, 0)
		previews = append(previews, p)
	}
	return previews, rows.Err()
}
