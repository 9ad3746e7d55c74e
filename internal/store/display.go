package store

import (
	"context"
	"fmt"

	"artgg/internal/model"
)

// DisplayProfiles loads every display profile ordered by id.
func (s *Store) DisplayProfiles(ctx context.Context) ([]model.DisplayProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, wallpaper_color, frame_style, orientation, aspect_ratio
		FROM display_profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load display profiles: %w", err)
	}
	defer rows.Close()

	var out []model.DisplayProfile
	for rows.Next() {
		var p model.DisplayProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.WallpaperColor, &p.FrameStyle, &p.Orientation, &p.AspectRatio); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// InsertDisplayProfile inserts one row and returns its newly assigned id.
func (s *Store) InsertDisplayProfile(ctx context.Context, name, color, frame, orientation, ratio string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO display_profiles (name, wallpaper_color, frame_style, orientation, aspect_ratio)
		VALUES (?, ?, ?, ?, ?)`,
		name, color, frame, orientation, ratio)
	if err != nil {
		return 0, fmt.Errorf("insert display profile: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) DeleteDisplayProfile(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM display_profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete display profile: %w", err)
	}
	return nil
}

// UpdateDisplayProfile persists all four editable display fields as a unit.
func (s *Store) UpdateDisplayProfile(ctx context.Context, id int64, color, frame, orientation, ratio string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE display_profiles
		SET wallpaper_color = ?, frame_style = ?, orientation = ?, aspect_ratio = ?
		WHERE id = ?`,
		color, frame, orientation, ratio, id)
	if err != nil {
		return fmt.Errorf("update display profile: %w", err)
	}
	return nil
}
