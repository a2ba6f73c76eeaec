package store

import (
	"context"
	"encoding/hex"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string     `json:"db_path"`
	DBSizeBytes   int64      `json:"db_size_bytes"`
	TotalAccounts int        `json:"total_accounts"`
	ReservedBytes int64      `json:"reserved_bytes"`
	Tags          []TagStats `json:"tags"`
}

// TagStats holds per-type counts.
type TagStats struct {
	Tag           string `json:"tag"`
	Count         int    `json:"count"`
	ReservedBytes int64  `json:"reserved_bytes"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(space), 0) FROM accounts`).Scan(&st.TotalAccounts, &st.ReservedBytes)
	if err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT tag, COUNT(*) AS cnt, SUM(space)
		FROM accounts
		GROUP BY tag ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var tag []byte
		var ts TagStats
		if err := rows.Scan(&tag, &ts.Count, &ts.ReservedBytes); err != nil {
			return st, err
		}
		ts.Tag = hex.EncodeToString(tag)
		st.Tags = append(st.Tags, ts)
	}

	return st, rows.Err()
}
