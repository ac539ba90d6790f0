package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema mirrors the document layout of the interviews and users collections.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	uid               TEXT PRIMARY KEY,
	role              TEXT NOT NULL DEFAULT 'candidate',
	fullname          TEXT NOT NULL DEFAULT '',
	email             TEXT NOT NULL DEFAULT '',
	phone             TEXT,
	experience        INTEGER NOT NULL DEFAULT 0,
	profile_photo_url TEXT,
	account_status    TEXT NOT NULL DEFAULT 'active',
	created_at        TIMESTAMPTZ,
	updated_at        TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_users_role_created ON users (role, created_at DESC);

CREATE TABLE IF NOT EXISTS interviews (
	id            TEXT PRIMARY KEY,
	candidate_uid TEXT NOT NULL,
	job_title     TEXT NOT NULL DEFAULT '',
	submitted_at  TIMESTAMPTZ,
	status        TEXT,
	score         TEXT,
	resume_score  TEXT,
	qna_score     TEXT,
	strengths     TEXT[],
	weaknesses    TEXT[],
	feedback      TEXT
);
CREATE INDEX IF NOT EXISTS idx_interviews_candidate_submitted ON interviews (candidate_uid, submitted_at DESC);
`

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}
