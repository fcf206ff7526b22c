package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"facturo/internal/domain"
	"facturo/internal/port"
)

// memStore backs the per-port fakes with shared in-memory state.
type memStore struct {
	sessions    map[uuid.UUID]*domain.ChatSession
	messages    map[uuid.UUID][]domain.Message
	attachments map[uuid.UUID]*domain.FileAttachment
	records     []*domain.ExtractedRecord
}

func newMemStore() *memStore {
	return &memStore{
		sessions:    make(map[uuid.UUID]*domain.ChatSession),
		messages:    make(map[uuid.UUID][]domain.Message),
		attachments: make(map[uuid.UUID]*domain.FileAttachment),
	}
}

func (m *memStore) sessionRepo() port.SessionRepository       { return &fakeSessions{m} }
func (m *memStore) attachmentRepo() port.AttachmentRepository { return &fakeAttachments{m} }
func (m *memStore) recordRepo() port.RecordRepository         { return &fakeRecords{m} }

type fakeSessions struct{ s *memStore }

func (f *fakeSessions) Create(_ context.Context, session *domain.ChatSession) error {
	cp := *session
	f.s.sessions[session.ID] = &cp
	return nil
}

func (f *fakeSessions) GetByID(_ context.Context, id uuid.UUID) (*domain.ChatSession, error) {
	s, ok := f.s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessions) List(_ context.Context) ([]domain.ChatSession, error) {
	var out []domain.ChatSession
	for _, s := range f.s.sessions {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakeSessions) Touch(_ context.Context, id uuid.UUID, lastMessage string) error {
	s, ok := f.s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.LastMessage = lastMessage
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(f.s.sessions, id)
	delete(f.s.messages, id)
	return nil
}

func (f *fakeSessions) AppendMessage(_ context.Context, msg *domain.Message) error {
	f.s.messages[msg.SessionID] = append(f.s.messages[msg.SessionID], *msg)
	return nil
}

func (f *fakeSessions) ListMessages(_ context.Context, sessionID uuid.UUID) ([]domain.Message, error) {
	return append([]domain.Message(nil), f.s.messages[sessionID]...), nil
}

type fakeAttachments struct{ s *memStore }

func (f *fakeAttachments) Create(_ context.Context, att *domain.FileAttachment) error {
	cp := *att
	f.s.attachments[att.ID] = &cp
	return nil
}

func (f *fakeAttachments) GetByID(_ context.Context, id uuid.UUID) (*domain.FileAttachment, error) {
	att, ok := f.s.attachments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *att
	return &cp, nil
}

type fakeRecords struct{ s *memStore }

func (f *fakeRecords) Create(_ context.Context, rec *domain.ExtractedRecord) error {
	cp := *rec
	f.s.records = append(f.s.records, &cp)
	return nil
}

func (f *fakeRecords) GetByID(_ context.Context, id uuid.UUID) (*domain.ExtractedRecord, error) {
	for _, r := range f.s.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (f *fakeRecords) LatestBySession(_ context.Context, sessionID uuid.UUID) (*domain.ExtractedRecord, error) {
	for i := len(f.s.records) - 1; i >= 0; i-- {
		if f.s.records[i].SessionID == sessionID {
			cp := *f.s.records[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}
