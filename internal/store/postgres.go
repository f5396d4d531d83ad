// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	apperrors "parttime-match/internal/common/errors"
	"parttime-match/internal/common/logger"
	"parttime-match/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PostgresStore reads records from PostgreSQL with a Redis cache in front
// of single-record lookups. The cache holds JSON snapshots with a short
// TTL; a miss or a stale decode falls through to the database.
type PostgresStore struct {
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewPostgresStore(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:       db,
		redis:    rdb,
		cacheTTL: cacheTTL,
		logger:   log.WithFields(map[string]interface{}{"component": "store"}),
	}
}

const jobColumns = `id, shop_id, title, description, wage, location, lat, lng, skills, start_date, created_at`

func (s *PostgresStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	cacheKey := "job:record:" + id
	if job := new(models.Job); s.cacheGet(ctx, cacheKey, job) {
		return job, nil
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewJobNotFoundError(id)
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("get job", err)
	}

	s.cacheSet(ctx, cacheKey, job)
	return job, nil
}

func (s *PostgresStore) ListJobs(ctx context.Context) ([]*models.Job, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list jobs", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list jobs", err)
	}
	return jobs, nil
}

const candidateColumns = `email, name, skills, expected_wage, location, lat, lng, available_date`

func (s *PostgresStore) GetCandidate(ctx context.Context, email string) (*models.Candidate, error) {
	cacheKey := "candidate:profile:" + email
	if cand := new(models.Candidate); s.cacheGet(ctx, cacheKey, cand) {
		return cand, nil
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE email = $1`, email)
	cand, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewCandidateNotFoundError(email)
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("get candidate", err)
	}

	s.cacheSet(ctx, cacheKey, cand)
	return cand, nil
}

func (s *PostgresStore) ListCandidates(ctx context.Context) ([]*models.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY email`)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list candidates", err)
	}
	defer rows.Close()

	var cands []*models.Candidate
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan candidate", err)
		}
		cands = append(cands, cand)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list candidates", err)
	}
	return cands, nil
}

func (s *PostgresStore) ListApplications(ctx context.Context) ([]*models.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_id, candidate_email, shop_id, kind, status, created_at
		FROM applications ORDER BY created_at`)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list applications", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		var app models.Application
		var shopID sql.NullString
		if err := rows.Scan(&app.ID, &app.JobID, &app.CandidateEmail, &shopID, &app.Kind, &app.Status, &app.CreatedAt); err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan application", err)
		}
		app.ShopID = shopID.String
		apps = append(apps, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list applications", err)
	}
	return apps, nil
}

func (s *PostgresStore) CreateApplication(ctx context.Context, app *models.Application) error {
	// Duplicate suppression: any non-cancelled record of the same kind
	// for the pair blocks a new one.
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE job_id = $1 AND candidate_email = $2 AND kind = $3 AND status <> 'cancelled'
		)`, app.JobID, app.CandidateEmail, app.Kind).Scan(&exists)
	if err != nil {
		return apperrors.NewQueryExecutionFailedError("duplicate check", err)
	}
	if exists {
		return apperrors.NewDuplicateContactError(app.JobID, app.CandidateEmail)
	}

	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO applications (id, job_id, candidate_email, shop_id, kind, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.JobID, app.CandidateEmail, nullString(app.ShopID), app.Kind, app.Status, app.CreatedAt,
	)
	if err != nil {
		return apperrors.NewDatabaseInsertFailedError("create application", err)
	}
	return nil
}

// cacheGet returns true when the key decoded cleanly into dst.
func (s *PostgresStore) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if s.redis == nil {
		return false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dst) == nil
}

func (s *PostgresStore) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*models.Job, error) {
	var job models.Job
	var shopID, description, location sql.NullString
	var wage sql.NullFloat64
	var lat, lng sql.NullFloat64
	var skillsRaw []byte
	var startDate, createdAt sql.NullTime

	err := row.Scan(&job.ID, &shopID, &job.Title, &description, &wage, &location,
		&lat, &lng, &skillsRaw, &startDate, &createdAt)
	if err != nil {
		return nil, err
	}

	job.ShopID = shopID.String
	job.Description = description.String
	job.Location = location.String
	if wage.Valid {
		job.HourlyWage = models.FlexFloat(wage.Float64)
	}
	job.Pin = pinFrom(lat, lng)
	job.Skills = decodeSkills(skillsRaw)
	if startDate.Valid {
		job.StartDate = &models.FlexDate{Time: startDate.Time}
	}
	if createdAt.Valid {
		t := createdAt.Time
		job.CreatedAt = &t
	}
	return &job, nil
}

func scanCandidate(row rowScanner) (*models.Candidate, error) {
	var cand models.Candidate
	var name, location sql.NullString
	var expectedWage sql.NullFloat64
	var lat, lng sql.NullFloat64
	var skillsRaw []byte
	var availableDate sql.NullTime

	err := row.Scan(&cand.Email, &name, &skillsRaw, &expectedWage, &location,
		&lat, &lng, &availableDate)
	if err != nil {
		return nil, err
	}

	cand.Name = name.String
	cand.Location = location.String
	if expectedWage.Valid {
		w := models.FlexFloat(expectedWage.Float64)
		cand.ExpectedWage = &w
	}
	cand.Pin = pinFrom(lat, lng)
	cand.Skills = decodeSkills(skillsRaw)
	if availableDate.Valid {
		cand.AvailableDate = &models.FlexDate{Time: availableDate.Time}
	}
	return &cand, nil
}

// decodeSkills tolerates every legacy column shape: JSON arrays, JSON
// strings, or a bare delimited string.
func decodeSkills(raw []byte) models.SkillList {
	if len(raw) == 0 {
		return nil
	}
	var skills models.SkillList
	if err := json.Unmarshal(raw, &skills); err == nil {
		return skills
	}
	return models.SkillList{string(raw)}
}

func pinFrom(lat, lng sql.NullFloat64) *models.GeoPoint {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &models.GeoPoint{Lat: lat.Float64, Lng: lng.Float64}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
