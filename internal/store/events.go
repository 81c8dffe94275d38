package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ScanEventData captures one interpreted scan for the history log. The log
// is display-only: nothing here feeds back into interpretation.
type ScanEventData struct {
	SessionID     string
	Category      string
	Label         string
	Confidence    float64
	Tip           string
	LowConfidence bool
	HelpMessage   bool
	IsError       bool
	ErrorKind     string
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	TotalScans   int
	Errors       int
	DurationSecs int
	TopCategory  string
}

// ScanRecord is a stored scan event read back for display.
type ScanRecord struct {
	SessionID  string
	Category   string
	Label      string
	Confidence float64
	Tip        string
	IsError    bool
	CreatedAt  time.Time
}

// SessionSummaryRecord is a stored session-end event read back for display.
type SessionSummaryRecord struct {
	SessionID    string
	TotalScans   int
	Errors       int
	DurationSecs int
	TopCategory  string
	CreatedAt    time.Time
}

// EventRepo provides append and query access to the scan history.
type EventRepo interface {
	AppendScanEvent(ctx context.Context, data ScanEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentScans returns up to limit scan events, newest first.
	RecentScans(ctx context.Context, limit int) ([]ScanRecord, error)

	// CategoryCounts returns lifetime successful-scan counts per category.
	CategoryCounts(ctx context.Context) (map[string]int, error)

	// SessionSummaries returns up to limit session-end records, newest first.
	SessionSummaries(ctx context.Context, limit int) ([]SessionSummaryRecord, error)
}

type eventRepo struct {
	db *sql.DB
}

var _ EventRepo = (*eventRepo)(nil)

func (r *eventRepo) AppendScanEvent(ctx context.Context, data ScanEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scan_events
			(session_id, category, label, confidence, tip, low_confidence, help_message, is_error, error_kind)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Category, data.Label, data.Confidence, data.Tip,
		boolToInt(data.LowConfidence), boolToInt(data.HelpMessage), boolToInt(data.IsError), data.ErrorKind,
	)
	if err != nil {
		return fmt.Errorf("save scan event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(session_id, action, total_scans, errors, duration_secs, top_category)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Action, data.TotalScans, data.Errors, data.DurationSecs, data.TopCategory,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, category, label, confidence, tip, is_error, created_at
		 FROM scan_events
		 ORDER BY id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent scans: %w", err)
	}
	defer rows.Close()

	var out []ScanRecord
	for rows.Next() {
		var rec ScanRecord
		var isErr int
		if err := rows.Scan(&rec.SessionID, &rec.Category, &rec.Label, &rec.Confidence, &rec.Tip, &isErr, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.IsError = isErr != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) CategoryCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, COUNT(*)
		 FROM scan_events
		 WHERE is_error = 0 AND help_message = 0
		 GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("query category counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		counts[cat] = n
	}
	return counts, rows.Err()
}

func (r *eventRepo) SessionSummaries(ctx context.Context, limit int) ([]SessionSummaryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, total_scans, errors, duration_secs, top_category, created_at
		 FROM session_events
		 WHERE action = 'end'
		 ORDER BY id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var out []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		if err := rows.Scan(&rec.SessionID, &rec.TotalScans, &rec.Errors, &rec.DurationSecs, &rec.TopCategory, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
