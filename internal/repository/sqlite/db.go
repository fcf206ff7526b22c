package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS chat_sessions (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	last_message TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id            TEXT PRIMARY KEY,
	session_id    TEXT NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
	role          TEXT NOT NULL,
	text          TEXT NOT NULL,
	attachment_id TEXT,
	created_at    TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, created_at);

CREATE TABLE IF NOT EXISTS attachments (
	id           TEXT PRIMARY KEY,
	session_id   TEXT NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
	file_name    TEXT NOT NULL,
	file_type    TEXT NOT NULL,
	content_type TEXT NOT NULL,
	file_size    INTEGER NOT NULL,
	data         BLOB NOT NULL,
	created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS extracted_records (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
	source_text TEXT NOT NULL,
	data        TEXT NOT NULL,
	usable      BOOLEAN NOT NULL,
	created_at  TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_session ON extracted_records(session_id, created_at);
`

// Open connects to the embedded database at path and bootstraps the
// schema. The store is single-writer; SQLite serializes writes itself,
// but capping open conns avoids SQLITE_BUSY churn under load.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrapping schema: %w", err)
	}
	return db, nil
}
