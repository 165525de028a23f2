package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/surfpat/pkg/surfpat/internalerr"
	"github.com/cognicore/surfpat/pkg/surfpat/store"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db  *sql.DB
	ids *store.IDs
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db, ids: store.NewIDs()}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sentences (
	id TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS tokens (
	sentence_id TEXT NOT NULL,
	idx INTEGER NOT NULL,
	word TEXT NOT NULL,
	lemma TEXT,
	tag TEXT,
	ner TEXT,
	PRIMARY KEY(sentence_id, idx),
	FOREIGN KEY(sentence_id) REFERENCES sentences(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS token_classes (
	sentence_id TEXT NOT NULL,
	idx INTEGER NOT NULL,
	class_key TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY(sentence_id, idx, class_key),
	FOREIGN KEY(sentence_id) REFERENCES sentences(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutSentence inserts or replaces a sentence
func (s *sqliteStore) PutSentence(ctx context.Context, id string, sent token.Sentence) (string, error) {
	if id == "" {
		id = s.ids.Next()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO sentences (id) VALUES (?) ON CONFLICT(id) DO NOTHING`, id); err != nil {
		return "", err
	}
	if err := replaceTokens(ctx, tx, id, sent); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func replaceTokens(ctx context.Context, tx *sql.Tx, id string, sent token.Sentence) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM token_classes WHERE sentence_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tokens WHERE sentence_id=?`, id); err != nil {
		return err
	}
	if len(sent) == 0 {
		return nil
	}

	tokStmt, err := tx.PrepareContext(ctx, `INSERT INTO tokens (sentence_id, idx, word, lemma, tag, ner) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tokStmt.Close()

	clsStmt, err := tx.PrepareContext(ctx, `INSERT INTO token_classes (sentence_id, idx, class_key, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer clsStmt.Close()

	for i, tok := range sent {
		if _, err := tokStmt.ExecContext(ctx, id, i, tok.Word, tok.Lemma, tok.Tag, tok.NER); err != nil {
			return err
		}
		for key, value := range tok.Classes {
			if _, err := clsStmt.ExecContext(ctx, id, i, key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sentence retrieves a sentence by id
func (s *sqliteStore) Sentence(ctx context.Context, id string) (token.Sentence, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM sentences WHERE id = ?`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sentence %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	c, err := s.load(ctx, `WHERE sentence_id = ?`, id)
	if err != nil {
		return nil, err
	}
	if sent, ok := c[id]; ok {
		return sent, nil
	}
	return token.Sentence{}, nil
}

// Corpus loads every stored sentence
func (s *sqliteStore) Corpus(ctx context.Context) (token.Corpus, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM sentences`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c := make(token.Corpus)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		c[id] = token.Sentence{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	loaded, err := s.load(ctx, "")
	if err != nil {
		return nil, err
	}
	for id, sent := range loaded {
		c[id] = sent
	}
	return c, nil
}

// Count returns the number of stored sentences
func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sentences`).Scan(&n)
	return n, err
}

// load reads tokens and their classes, optionally filtered by a WHERE clause
// over sentence_id.
func (s *sqliteStore) load(ctx context.Context, where string, args ...interface{}) (token.Corpus, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sentence_id, idx, word, lemma, tag, ner FROM tokens `+where+` ORDER BY sentence_id, idx`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c := make(token.Corpus)
	for rows.Next() {
		var (
			id              string
			idx             int
			word            string
			lemma, tag, ner sql.NullString
		)
		if err := rows.Scan(&id, &idx, &word, &lemma, &tag, &ner); err != nil {
			return nil, err
		}
		if idx != len(c[id]) {
			return nil, fmt.Errorf("sentence %s: token %d out of order: %w", id, idx, internalerr.ErrInvalidInput)
		}
		c[id] = append(c[id], token.Token{
			Word:  word,
			Lemma: lemma.String,
			Tag:   tag.String,
			NER:   ner.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := s.db.QueryContext(ctx, `SELECT sentence_id, idx, class_key, value FROM token_classes `+where, args...)
	if err != nil {
		return nil, err
	}
	defer crows.Close()

	for crows.Next() {
		var (
			id         string
			idx        int
			key, value string
		)
		if err := crows.Scan(&id, &idx, &key, &value); err != nil {
			return nil, err
		}
		sent := c[id]
		if idx < 0 || idx >= len(sent) {
			continue
		}
		if sent[idx].Classes == nil {
			sent[idx].Classes = make(map[string]string)
		}
		sent[idx].Classes[key] = value
	}
	return c, crows.Err()
}
