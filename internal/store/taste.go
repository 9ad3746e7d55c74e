package store

import (
	"context"
	"fmt"

	"artgg/internal/model"
)

// TasteProfiles loads every taste profile ordered by id, each with its
// associated keyword values attached.
func (s *Store) TasteProfiles(ctx context.Context) ([]model.TasteProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, date_start, date_end, is_public_domain
		FROM taste_profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load taste profiles: %w", err)
	}
	defer rows.Close()

	var out []model.TasteProfile
	for rows.Next() {
		var p model.TasteProfile
		var pd int
		if err := rows.Scan(&p.ID, &p.Name, &p.DateStart, &p.DateEnd, &pd); err != nil {
			return nil, err
		}
		p.IsPublicDomain = pd != 0
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		kws, err := s.profileKeywords(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Keywords = kws
	}
	return out, nil
}

func (s *Store) profileKeywords(ctx context.Context, profileID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT k.value
		FROM taste_profile_keywords pk
		JOIN keywords k ON k.id = pk.keyword_id
		WHERE pk.profile_id = ?
		ORDER BY k.id`, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile keywords: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// InsertTasteProfile inserts one row and returns its newly assigned id.
func (s *Store) InsertTasteProfile(ctx context.Context, name string, dateStart, dateEnd *int64, isPublicDomain bool) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO taste_profiles (name, date_start, date_end, is_public_domain)
		VALUES (?, ?, ?, ?)`,
		name, dateStart, dateEnd, boolToInt(isPublicDomain))
	if err != nil {
		return 0, fmt.Errorf("insert taste profile: %w", err)
	}
	return res.LastInsertId()
}

// DeleteTasteProfile removes the profile row and its keyword associations.
func (s *Store) DeleteTasteProfile(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM taste_profile_keywords WHERE profile_id = ?`, id); err != nil {
		return fmt.Errorf("delete profile keywords: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM taste_profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete taste profile: %w", err)
	}
	return nil
}

// UpdateTasteProfile persists the (date_start, date_end, is_public_domain)
// triple as a unit.
func (s *Store) UpdateTasteProfile(ctx context.Context, id int64, dateStart, dateEnd *int64, isPublicDomain bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE taste_profiles
		SET date_start = ?, date_end = ?, is_public_domain = ?
		WHERE id = ?`,
		dateStart, dateEnd, boolToInt(isPublicDomain), id)
	if err != nil {
		return fmt.Errorf("update taste profile: %w", err)
	}
	return nil
}
