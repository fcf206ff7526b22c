package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facturo/internal/domain"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newSession(t *testing.T, db *sqlx.DB) *domain.ChatSession {
	t.Helper()
	session := &domain.ChatSession{ID: uuid.New(), Title: "Nouvelle conversation"}
	require.NoError(t, NewSessionRepo(db).Create(context.Background(), session))
	return session
}

func TestSessionRepo_CreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	session := newSession(t, db)

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "Nouvelle conversation", got.Title)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSessionRepo(testDB(t))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepo_TouchAndList(t *testing.T) {
	db := testDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	a := newSession(t, db)
	b := newSession(t, db)

	require.NoError(t, repo.Touch(ctx, a.ID, "dernier message"))

	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// Most recently touched first.
	assert.Equal(t, a.ID, sessions[0].ID)
	assert.Equal(t, "dernier message", sessions[0].LastMessage)
	assert.Equal(t, b.ID, sessions[1].ID)

	assert.ErrorIs(t, repo.Touch(ctx, uuid.New(), "x"), domain.ErrSessionNotFound)
}

func TestSessionRepo_Messages(t *testing.T) {
	db := testDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	session := newSession(t, db)

	user := &domain.Message{ID: uuid.New(), SessionID: session.ID, Role: domain.RoleUser, Text: "bonjour"}
	bot := &domain.Message{ID: uuid.New(), SessionID: session.ID, Role: domain.RoleBot, Text: "Bonjour !"}
	require.NoError(t, repo.AppendMessage(ctx, user))
	require.NoError(t, repo.AppendMessage(ctx, bot))

	msgs, err := repo.ListMessages(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, "bonjour", msgs[0].Text)
	assert.Nil(t, msgs[0].AttachmentID)
	assert.Equal(t, domain.RoleBot, msgs[1].Role)
}

func TestSessionRepo_DeleteCascades(t *testing.T) {
	db := testDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	session := newSession(t, db)
	require.NoError(t, repo.AppendMessage(ctx, &domain.Message{
		ID: uuid.New(), SessionID: session.ID, Role: domain.RoleUser, Text: "hi",
	}))

	require.NoError(t, repo.Delete(ctx, session.ID))

	_, err := repo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	msgs, err := repo.ListMessages(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	assert.ErrorIs(t, repo.Delete(ctx, session.ID), domain.ErrSessionNotFound)
}

func TestAttachmentRepo_RoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewAttachmentRepo(db)
	ctx := context.Background()

	session := newSession(t, db)

	att := &domain.FileAttachment{
		ID:          uuid.New(),
		SessionID:   session.ID,
		FileName:    "facture.png",
		FileType:    domain.FileTypePNG,
		ContentType: "image/png",
		FileSize:    3,
		Data:        []byte{1, 2, 3},
	}
	require.NoError(t, repo.Create(ctx, att))

	got, err := repo.GetByID(ctx, att.ID)
	require.NoError(t, err)
	assert.Equal(t, att.FileName, got.FileName)
	assert.Equal(t, domain.FileTypePNG, got.FileType)
	assert.Equal(t, []byte{1, 2, 3}, got.Data)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordRepo_RoundTripAndLatest(t *testing.T) {
	db := testDB(t)
	repo := NewRecordRepo(db)
	ctx := context.Background()

	session := newSession(t, db)

	payload, err := json.Marshal(&domain.InvoiceRecord{BuyerName: "Jean Dupont", Total: 99})
	require.NoError(t, err)

	first := &domain.ExtractedRecord{
		ID: uuid.New(), SessionID: session.ID, SourceText: "v1", Data: payload, Usable: false,
	}
	second := &domain.ExtractedRecord{
		ID: uuid.New(), SessionID: session.ID, SourceText: "v2", Data: payload, Usable: true,
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", got.SourceText)

	rec, err := got.Record()
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", rec.BuyerName)

	latest, err := repo.LatestBySession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", latest.SourceText)
	assert.True(t, latest.Usable)

	_, err = repo.LatestBySession(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
