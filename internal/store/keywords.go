package store

import (
	"context"
	"fmt"

	"artgg/internal/model"
)

// KeywordCatalog loads the global keyword catalog ordered by id.
func (s *Store) KeywordCatalog(ctx context.Context) ([]model.Keyword, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, value FROM keywords ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load keyword catalog: %w", err)
	}
	defer rows.Close()

	var out []model.Keyword
	for rows.Next() {
		var k model.Keyword
		if err := rows.Scan(&k.ID, &k.Value); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// AddProfileKeyword associates one catalog keyword with a taste profile.
// Re-adding an existing association is a no-op.
func (s *Store) AddProfileKeyword(ctx context.Context, profileID, keywordID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO taste_profile_keywords (profile_id, keyword_id)
		VALUES (?, ?)`, profileID, keywordID)
	if err != nil {
		return fmt.Errorf("add keyword association: %w", err)
	}
	return nil
}

// RemoveProfileKeyword deletes one association row.
func (s *Store) RemoveProfileKeyword(ctx context.Context, profileID, keywordID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM taste_profile_keywords
		WHERE profile_id = ? AND keyword_id = ?`, profileID, keywordID)
	if err != nil {
		return fmt.Errorf("remove keyword association: %w", err)
	}
	return nil
}

// SeedKeywords inserts catalog values, skipping ones already present, and
// returns how many were actually inserted.
func (s *Store) SeedKeywords(ctx context.Context, values []string) (int, error) {
	inserted := 0
	for _, v := range values {
		res, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO keywords (value) VALUES (?)`, v)
		if err != nil {
			return inserted, fmt.Errorf("seed keyword %q: %w", v, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += int(n)
	}
	return inserted, nil
}
