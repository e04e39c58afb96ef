package repository

import (
	"database/sql"
	"encoding/json"

	"chainbrief/internal/model"
)

type BriefingRepository struct {
	db *sql.DB
}

func NewBriefingRepository(db *sql.DB) *BriefingRepository {
	return &BriefingRepository{db: db}
}

// SaveBriefing merge-writes the briefing under a date: a later run for
// the same date replaces the existing fields.
func (r *BriefingRepository) SaveBriefing(date string, b *model.Briefing) error {
	bullets, err := json.Marshal(b.BulletPoints)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO briefing(date, title, summary, bullets, sentiment, model_used, generated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date) DO UPDATE SET
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			bullets = EXCLUDED.bullets,
			sentiment = EXCLUDED.sentiment,
			model_used = EXCLUDED.model_used,
			generated_at = EXCLUDED.generated_at,
			updated_at = now()
	`, date, b.Title, b.Summary, bullets, b.Sentiment, b.ModelUsed, b.GeneratedAt)
	return err
}

// GetBriefing returns the briefing for a date, or nil when none is
// stored.
func (r *BriefingRepository) GetBriefing(date string) (*model.Briefing, error) {
	return r.scanBriefing(r.db.QueryRow(`
		SELECT title, summary, bullets, sentiment, model_used, generated_at
		FROM briefing
		WHERE date = $1
	`, date))
}

// GetLatestBriefing returns the most recent briefing, or nil when the
// store is empty.
func (r *BriefingRepository) GetLatestBriefing() (*model.Briefing, error) {
	return r.scanBriefing(r.db.QueryRow(`
		SELECT title, summary, bullets, sentiment, model_used, generated_at
		FROM briefing
		ORDER BY date DESC
		LIMIT 1
	`))
}

func (r *BriefingRepository) scanBriefing(row *sql.Row) (*model.Briefing, error) {
	var b model.Briefing
	var bulletsJSON []byte

	err := row.Scan(&b.Title, &b.Summary, &bulletsJSON, &b.Sentiment, &b.ModelUsed, &b.GeneratedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(bulletsJSON, &b.BulletPoints); err != nil {
		return nil, err
	}
	if b.BulletPoints == nil {
		b.BulletPoints = []string{}
	}
	return &b, nil
}
