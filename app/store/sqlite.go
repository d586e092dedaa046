package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// DefaultList is the list used when a job is saved without a list name
const DefaultList = "Saved"

// DefaultPerPage is the feed page size
const DefaultPerPage = 30

// listSep separates list names in aggregated columns, list names can contain commas
const listSep = "\x1f"

var (
	// ErrNotFound returned when the requested job post does not exist
	ErrNotFound = errors.New("not found")
	// ErrListExists returned on attempt to create a list with a name already taken
	ErrListExists = errors.New("list already exists")
)

// JobPost is a single scraped job listing
type JobPost struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	RoleCategory   string    `json:"role_category"`
	SourcePlatform string    `json:"source_platform"`
	URL            string    `json:"url"`
	Salary         string    `json:"salary"`
	Description    string    `json:"description"`
	Tags           string    `json:"tags"`
	PostedAt       string    `json:"posted_at"`
	ScrapedAt      time.Time `json:"scraped_at"`

	// populated by Feed only
	IsSaved    bool     `json:"is_saved"`
	SavedList  string   `json:"saved_list,omitempty"`
	SavedLists []string `json:"saved_lists,omitempty"`
}

// SavedJob is a job post saved into a list
type SavedJob struct {
	JobPost
	SavedID  int64     `json:"saved_id"`
	ListName string    `json:"list_name"`
	SavedAt  time.Time `json:"saved_at"`
}

// List is a user-defined named collection of saved jobs
type List struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Count     int       `json:"count"`
}

// FeedQuery defines filters and pagination for the job feed
type FeedQuery struct {
	Source  string
	Search  string
	Days    int // only jobs scraped within the last N days, 0 for all
	Page    int // 1-based
	PerPage int
}

// FeedPage is a single page of the job feed
type FeedPage struct {
	Jobs       []JobPost `json:"jobs"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// Stats holds aggregated counters
type Stats struct {
	TotalJobs int            `json:"total_jobs"`
	SavedJobs int            `json:"saved_jobs"`
	BySource  map[string]int `json:"by_source"`
}

// jobRow is the database representation of JobPost
type jobRow struct {
	ID             int64          `db:"id"`
	Title          string         `db:"title"`
	Company        sql.NullString `db:"company"`
	Location       sql.NullString `db:"location"`
	RoleCategory   sql.NullString `db:"role_category"`
	SourcePlatform string         `db:"source_platform"`
	URL            string         `db:"url"`
	Salary         sql.NullString `db:"salary"`
	Description    sql.NullString `db:"description"`
	Tags           sql.NullString `db:"tags"`
	PostedAt       sql.NullString `db:"posted_at"`
	ScrapedAt      sql.NullInt64  `db:"scraped_at"`
}

func (r jobRow) post() JobPost {
	res := JobPost{
		ID:             r.ID,
		Title:          r.Title,
		Company:        r.Company.String,
		Location:       r.Location.String,
		RoleCategory:   r.RoleCategory.String,
		SourcePlatform: r.SourcePlatform,
		URL:            r.URL,
		Salary:         r.Salary.String,
		Description:    r.Description.String,
		Tags:           r.Tags.String,
		PostedAt:       r.PostedAt.String,
	}
	if r.ScrapedAt.Valid && r.ScrapedAt.Int64 > 0 {
		res.ScrapedAt = time.Unix(r.ScrapedAt.Int64, 0).UTC()
	}
	return res
}

const jobColumns = `j.id, j.title, j.company, j.location, j.role_category, j.source_platform,
	j.url, j.salary, j.description, j.tags, j.posted_at, j.scraped_at`

// SQLiteStore implements persistence using SQLite
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and initializes the schema
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// initialize creates the database schema and seeds the default list
func (s *SQLiteStore) initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS job_posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			company TEXT,
			location TEXT,
			role_category TEXT,
			source_platform TEXT NOT NULL,
			url TEXT UNIQUE NOT NULL,
			salary TEXT,
			description TEXT,
			tags TEXT,
			posted_at TEXT,
			scraped_at INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS lists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			created_at INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS saved_jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id INTEGER NOT NULL REFERENCES job_posts(id) ON DELETE CASCADE,
			list_name TEXT NOT NULL DEFAULT 'Saved',
			saved_at INTEGER,
			UNIQUE(job_id, list_name)
		)`,
		`INSERT OR IGNORE INTO lists (name, created_at) VALUES ('Saved', strftime('%s','now'))`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_source ON job_posts(source_platform)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_scraped ON job_posts(scraped_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_saved_list ON saved_jobs(list_name)`,
		`CREATE INDEX IF NOT EXISTS idx_saved_job ON saved_jobs(job_id)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// InsertJobs stores job posts skipping the ones with already known url
func (s *SQLiteStore) InsertJobs(ctx context.Context, jobs []JobPost) (inserted, skipped int, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	now := time.Now().Unix()
	for _, j := range jobs {
		res, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO job_posts
			(title, company, location, role_category, source_platform, url, salary, description, tags, posted_at, scraped_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			j.Title, j.Company, j.Location, j.RoleCategory, j.SourcePlatform, j.URL, j.Salary,
			j.Description, j.Tags, j.PostedAt, now)
		if err != nil {
			log.Printf("[WARN] failed to insert job %q: %v", j.URL, err)
			skipped++
			continue
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			inserted++
			continue
		}
		skipped++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, skipped, nil
}

// Feed returns a page of job posts, newest first, with saved status
func (s *SQLiteStore) Feed(ctx context.Context, q FeedQuery) (FeedPage, error) {
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	where := []string{"1=1"}
	args := []any{}
	if q.Source != "" {
		where = append(where, "j.source_platform = ?")
		args = append(args, q.Source)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + search + "%"
		where = append(where, "(j.title LIKE ? OR j.company LIKE ? OR j.tags LIKE ?)")
		args = append(args, like, like, like)
	}
	if q.Days > 0 {
		where = append(where, "j.scraped_at >= ?")
		args = append(args, time.Now().Add(-time.Duration(q.Days)*24*time.Hour).Unix())
	}
	whereSQL := strings.Join(where, " AND ")

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM job_posts j WHERE "+whereSQL, args...); err != nil {
		return FeedPage{}, fmt.Errorf("failed to count jobs: %w", err)
	}
	totalPages := max(1, (total+q.PerPage-1)/q.PerPage)
	q.Page = min(q.Page, totalPages) // pages past the end show the last one

	var rows []struct {
		jobRow
		SavedLists sql.NullString `db:"saved_lists"`
	}
	query := `SELECT ` + jobColumns + `,
		(SELECT group_concat(s.list_name, char(31)) FROM saved_jobs s WHERE s.job_id = j.id) AS saved_lists
		FROM job_posts j WHERE ` + whereSQL + `
		ORDER BY j.scraped_at DESC, j.id DESC LIMIT ? OFFSET ?`
	pageArgs := append(append([]any{}, args...), q.PerPage, (q.Page-1)*q.PerPage)
	if err := s.db.SelectContext(ctx, &rows, query, pageArgs...); err != nil {
		return FeedPage{}, fmt.Errorf("failed to query feed: %w", err)
	}

	res := FeedPage{Jobs: make([]JobPost, 0, len(rows)), Total: total, Page: q.Page, TotalPages: totalPages}
	for _, r := range rows {
		post := r.post()
		if r.SavedLists.Valid && r.SavedLists.String != "" {
			post.SavedLists = strings.Split(r.SavedLists.String, listSep)
			post.IsSaved = true
			post.SavedList = post.SavedLists[0]
		}
		res.Jobs = append(res.Jobs, post)
	}
	return res, nil
}

// Sources returns distinct source platforms of stored jobs
func (s *SQLiteStore) Sources(ctx context.Context) ([]string, error) {
	res := []string{}
	if err := s.db.SelectContext(ctx, &res,
		"SELECT DISTINCT source_platform FROM job_posts ORDER BY source_platform"); err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	return res, nil
}

// JobExists checks if job post with the given id is stored
func (s *SQLiteStore) JobExists(ctx context.Context, jobID int64) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM job_posts WHERE id = ?", jobID); err != nil {
		return false, fmt.Errorf("failed to check job %d: %w", jobID, err)
	}
	return count > 0, nil
}

// SaveJob puts job into the list, creating the list if needed. Saving twice is a no-op.
func (s *SQLiteStore) SaveJob(ctx context.Context, jobID int64, listName string) error {
	if listName == "" {
		listName = DefaultList
	}
	exists, err := s.JobExists(ctx, jobID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	now := time.Now().Unix()
	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO lists (name, created_at) VALUES (?, ?)", listName, now); err != nil {
		return fmt.Errorf("failed to ensure list %q: %w", listName, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO saved_jobs (job_id, list_name, saved_at) VALUES (?, ?, ?)",
		jobID, listName, now); err != nil {
		return fmt.Errorf("failed to save job %d to %q: %w", jobID, listName, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UnsaveJob removes job from the list, or from all lists if listName is empty.
// Returns the number of removed entries.
func (s *SQLiteStore) UnsaveJob(ctx context.Context, jobID int64, listName string) (int64, error) {
	var res sql.Result
	var err error
	if listName != "" {
		res, err = s.db.ExecContext(ctx, "DELETE FROM saved_jobs WHERE job_id = ? AND list_name = ?", jobID, listName)
	} else {
		res, err = s.db.ExecContext(ctx, "DELETE FROM saved_jobs WHERE job_id = ?", jobID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to unsave job %d: %w", jobID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}

// CreateList makes a new empty list, returns ErrListExists for duplicates
func (s *SQLiteStore) CreateList(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO lists (name, created_at) VALUES (?, ?)", name, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to create list %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("list %q: %w", name, ErrListExists)
	}
	return nil
}

// DeleteList removes the list and everything saved into it
func (s *SQLiteStore) DeleteList(ctx context.Context, name string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM saved_jobs WHERE list_name = ?", name); err != nil {
		return fmt.Errorf("failed to delete saved jobs of %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM lists WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete list %q: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Lists returns all lists ordered by name with the number of saved jobs in each
func (s *SQLiteStore) Lists(ctx context.Context) ([]List, error) {
	var rows []struct {
		ID        int64         `db:"id"`
		Name      string        `db:"name"`
		CreatedAt sql.NullInt64 `db:"created_at"`
		Count     int           `db:"cnt"`
	}
	err := s.db.SelectContext(ctx, &rows, `SELECT l.id, l.name, l.created_at,
		(SELECT COUNT(*) FROM saved_jobs s WHERE s.list_name = l.name) AS cnt
		FROM lists l ORDER BY l.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}

	res := make([]List, 0, len(rows))
	for _, r := range rows {
		l := List{ID: r.ID, Name: r.Name, Count: r.Count}
		if r.CreatedAt.Valid {
			l.CreatedAt = time.Unix(r.CreatedAt.Int64, 0).UTC()
		}
		res = append(res, l)
	}
	return res, nil
}

// Saved returns saved jobs of the list, or of all lists if listName is empty, most recent first
func (s *SQLiteStore) Saved(ctx context.Context, listName string) ([]SavedJob, error) {
	where, args := "1=1", []any{}
	if listName != "" {
		where, args = "s.list_name = ?", []any{listName}
	}

	var rows []struct {
		jobRow
		SavedID  int64         `db:"saved_id"`
		ListName string        `db:"list_name"`
		SavedAt  sql.NullInt64 `db:"saved_at"`
	}
	query := `SELECT ` + jobColumns + `, s.id AS saved_id, s.list_name, s.saved_at
		FROM saved_jobs s JOIN job_posts j ON j.id = s.job_id
		WHERE ` + where + ` ORDER BY s.saved_at DESC, s.id DESC`
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query saved jobs: %w", err)
	}

	res := make([]SavedJob, 0, len(rows))
	for _, r := range rows {
		sj := SavedJob{JobPost: r.post(), SavedID: r.SavedID, ListName: r.ListName}
		sj.IsSaved, sj.SavedList, sj.SavedLists = true, r.ListName, []string{r.ListName}
		if r.SavedAt.Valid {
			sj.SavedAt = time.Unix(r.SavedAt.Int64, 0).UTC()
		}
		res = append(res, sj)
	}
	return res, nil
}

// Stats returns total counters and jobs count per source
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	res := Stats{BySource: map[string]int{}}
	if err := s.db.GetContext(ctx, &res.TotalJobs, "SELECT COUNT(*) FROM job_posts"); err != nil {
		return Stats{}, fmt.Errorf("failed to count jobs: %w", err)
	}
	if err := s.db.GetContext(ctx, &res.SavedJobs, "SELECT COUNT(*) FROM saved_jobs"); err != nil {
		return Stats{}, fmt.Errorf("failed to count saved jobs: %w", err)
	}

	var rows []struct {
		Source string `db:"source_platform"`
		Count  int    `db:"cnt"`
	}
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT source_platform, COUNT(*) AS cnt FROM job_posts GROUP BY source_platform"); err != nil {
		return Stats{}, fmt.Errorf("failed to count jobs by source: %w", err)
	}
	for _, r := range rows {
		res.BySource[r.Source] = r.Count
	}
	return res, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
