package repository

import (
	"database/sql"

	"chainbrief/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ReplaceArticles swaps the stored article set for a date with the
// given batch in one transaction, so a reader never observes a mix of
// two runs for the same date.
func (r *ArticleRepository) ReplaceArticles(date string, articles []model.Article) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM article WHERE date = $1`, date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO article(date, id, title, description, url, source, source_icon, category, image_url, author, published_at, fetched_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range articles {
		_, err := stmt.Exec(date, a.ID, a.Title, a.Description, a.URL, a.Source,
			a.SourceIcon, a.Category, a.ImageURL, a.Author, a.PublishedAt, a.FetchedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetArticles returns up to limit articles for a date, most recent
// first.
func (r *ArticleRepository) GetArticles(date string, limit int) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, description, url, source, source_icon, category, image_url, author, published_at, fetched_at
		FROM article
		WHERE date = $1
		ORDER BY published_at DESC
		LIMIT $2
	`, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.URL, &a.Source,
			&a.SourceIcon, &a.Category, &a.ImageURL, &a.Author, &a.PublishedAt, &a.FetchedAt)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

// GetAvailableDates returns up to limit known dates, most recent first.
func (r *ArticleRepository) GetAvailableDates(limit int) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT date FROM article ORDER BY date DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}
