package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facturo/internal/domain"
	"facturo/internal/extract"
)

func newChatFixture() (*memStore, ChatService) {
	store := newMemStore()
	svc := NewChatService(store.sessionRepo(), store.recordRepo(), extract.New(extract.Options{}))
	return store, svc
}

func TestChatService_CreateAndGetSession(t *testing.T) {
	_, svc := newChatFixture()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Nouvelle conversation", session.Title)

	detail, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, detail.Session.ID)
	assert.Empty(t, detail.Messages)
}

func TestChatService_GetSession_NotFound(t *testing.T) {
	_, svc := newChatFixture()

	_, err := svc.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestChatService_SendMessage_StandardReply(t *testing.T) {
	_, svc := newChatFixture()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "test")
	require.NoError(t, err)

	out, err := svc.SendMessage(ctx, session.ID, "bonjour")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, out.UserMessage.Role)
	assert.Equal(t, "bonjour", out.UserMessage.Text)
	assert.Equal(t, domain.RoleBot, out.Bot.Message.Role)
	assert.Contains(t, out.Bot.Message.Text, "donner le facture")
	assert.Contains(t, out.Bot.HTML, "<strong>")
	assert.Nil(t, out.Record)

	detail, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Messages, 2)
}

func TestChatService_SendMessage_IntentExtractsFromText(t *testing.T) {
	_, svc := newChatFixture()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "test")
	require.NoError(t, err)

	msg := "générer la facture\nClient: Jean Dupont\nCommande: 3 Nike chaussures, couleurs: 2 noir, 1 blanc\nPrix unitaire: 45€\nTVA: 9\nTotal TTC: 99"
	out, err := svc.SendMessage(ctx, session.ID, msg)
	require.NoError(t, err)

	require.NotNil(t, out.Record)
	assert.True(t, out.Record.Usable)
	assert.Contains(t, out.Bot.Message.Text, "2 produit(s)")
	assert.Contains(t, out.Bot.Message.Text, "99.00")
	assert.Contains(t, out.Bot.Message.Text, out.Record.ID.String())
}

func TestChatService_SendMessage_IntentWithoutData(t *testing.T) {
	_, svc := newChatFixture()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "test")
	require.NoError(t, err)

	out, err := svc.SendMessage(ctx, session.ID, "donner le facture")
	require.NoError(t, err)

	require.NotNil(t, out.Record)
	assert.False(t, out.Record.Usable)
	assert.Contains(t, out.Bot.Message.Text, "❌")
}

func TestChatService_SendMessage_ReusesLatestUsableRecord(t *testing.T) {
	store, svc := newChatFixture()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "test")
	require.NoError(t, err)

	// A previous upload left a usable record behind.
	rec := extract.New(extract.Options{}).ExtractInvoiceRecord(
		"Commande: 4 iPhone\nTotal TTC: 100")
	stored, err := persistRecord(ctx, store.recordRepo(), session.ID, "source", rec)
	require.NoError(t, err)

	out, err := svc.SendMessage(ctx, session.ID, "donner le facture")
	require.NoError(t, err)

	require.NotNil(t, out.Record)
	assert.Equal(t, stored.ID, out.Record.ID)
	assert.Len(t, store.records, 1)
}

func TestChatService_SendMessage_SessionNotFound(t *testing.T) {
	_, svc := newChatFixture()

	_, err := svc.SendMessage(context.Background(), uuid.New(), "hi")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestChatService_DeleteSession(t *testing.T) {
	_, svc := newChatFixture()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "test")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSession(ctx, session.ID))

	assert.ErrorIs(t, svc.DeleteSession(ctx, session.ID), domain.ErrSessionNotFound)
}
