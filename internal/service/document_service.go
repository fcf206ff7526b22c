package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"facturo/internal/config"
	"facturo/internal/domain"
	"facturo/internal/extract"
	"facturo/internal/ocr"
	"facturo/internal/port"
	"facturo/internal/textextract"
)

// Content types http.DetectContentType may report for allowed uploads.
// DOCX is a zip container and plain text sniffs with a charset suffix.
var allowedSniffedTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"application/zip": true,
	"text/plain":      true,
}

// UploadInput is the DTO for document upload requests.
type UploadInput struct {
	SessionID uuid.UUID
	FileName  string
	Data      []byte
}

// UploadOutput is everything one upload produced.
type UploadOutput struct {
	Attachment *domain.FileAttachment  `json:"attachment"`
	Record     *domain.ExtractedRecord `json:"record"`
	Text       string                  `json:"text"`
	Brands     []extract.BrandMention  `json:"brands,omitempty"`
	Bot        BotReply                `json:"bot"`
}

// DocumentService turns uploaded files into extracted records.
type DocumentService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	GetAttachment(ctx context.Context, id uuid.UUID) (*domain.FileAttachment, error)
}

type documentService struct {
	sessions    port.SessionRepository
	attachments port.AttachmentRepository
	records     port.RecordRepository
	ocr         *ocr.Service
	extractor   *extract.Extractor
	cfg         *config.UploadConfig
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	sessions port.SessionRepository,
	attachments port.AttachmentRepository,
	records port.RecordRepository,
	ocrService *ocr.Service,
	extractor *extract.Extractor,
	cfg *config.UploadConfig,
) DocumentService {
	return &documentService{
		sessions:    sessions,
		attachments: attachments,
		records:     records,
		ocr:         ocrService,
		extractor:   extractor,
		cfg:         cfg,
	}
}

var multiNewline = regexp.MustCompile(`\n{3,}`)

// Upload validates the file, recognizes or extracts its text, runs the
// extraction pipeline and records the whole exchange in the session.
func (s *documentService) Upload(ctx context.Context, input UploadInput) (*UploadOutput, error) {
	if _, err := s.sessions.GetByID(ctx, input.SessionID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(input.Data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte check: the extension alone is easy to get wrong.
	sniffed := input.Data
	if len(sniffed) > 512 {
		sniffed = sniffed[:512]
	}
	detected := http.DetectContentType(sniffed)
	if base, _, found := strings.Cut(detected, ";"); found {
		detected = base
	}
	if !allowedSniffedTypes[strings.TrimSpace(detected)] {
		return nil, domain.ErrUnsupportedFileType
	}

	att := &domain.FileAttachment{
		ID:          uuid.New(),
		SessionID:   input.SessionID,
		FileName:    input.FileName,
		FileType:    fileType,
		ContentType: domain.AllowedFileTypes[fileType],
		FileSize:    int64(len(input.Data)),
		Data:        input.Data,
	}
	if err := s.attachments.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("storing attachment: %w", err)
	}

	uploadMsg := domain.Message{
		ID:           uuid.New(),
		SessionID:    input.SessionID,
		Role:         domain.RoleUser,
		Text:         fmt.Sprintf("📎 Fichier téléchargé : %s", input.FileName),
		AttachmentID: &att.ID,
	}
	if err := s.sessions.AppendMessage(ctx, &uploadMsg); err != nil {
		return nil, fmt.Errorf("appending upload message: %w", err)
	}

	text, err := s.documentText(ctx, fileType, input.Data)
	if err != nil {
		botMsg := domain.Message{
			ID:        uuid.New(),
			SessionID: input.SessionID,
			Role:      domain.RoleBot,
			Text:      fmt.Sprintf("❌ Erreur d'analyse : %v", err),
		}
		if appendErr := s.sessions.AppendMessage(ctx, &botMsg); appendErr != nil {
			log.Printf("service.documentService: appending error message: %v", appendErr)
		}
		return nil, err
	}
	text = strings.TrimSpace(multiNewline.ReplaceAllString(text, "\n\n"))

	rec := s.extractor.ExtractInvoiceRecord(text)
	stored, err := persistRecord(ctx, s.records, input.SessionID, text, rec)
	if err != nil {
		return nil, err
	}

	brands := s.extractor.SpotBrands(text)

	replyText := fmt.Sprintf(
		"✅ Analyse terminée ! **Facture Réf :** %s. 💰 **Total trouvé :** %.2f €\n\n"+
			"Tapez \"**donner le facture**\" pour générer le document.\n\n"+
			"***Texte extrait :***\n\n%s",
		rec.InvoiceRef, rec.Total, text)
	if !rec.Usable() {
		replyText = "⚠️ Analyse terminée, mais les données sont incomplètes : aucun produit " +
			"exploitable ou total nul. Vérifiez que le document contient une ligne " +
			"**Commande :** et un total.\n\n***Texte extrait :***\n\n" + text
	}
	botMsg := domain.Message{
		ID:        uuid.New(),
		SessionID: input.SessionID,
		Role:      domain.RoleBot,
		Text:      replyText,
	}
	if err := s.sessions.AppendMessage(ctx, &botMsg); err != nil {
		return nil, fmt.Errorf("appending bot message: %w", err)
	}
	if err := s.sessions.Touch(ctx, input.SessionID, botMsg.Text); err != nil {
		log.Printf("service.documentService: touching session %s: %v", input.SessionID, err)
	}

	return &UploadOutput{
		Attachment: att,
		Record:     stored,
		Text:       text,
		Brands:     brands,
		Bot:        BotReply{Message: botMsg, HTML: RenderMarkdown(botMsg.Text)},
	}, nil
}

func (s *documentService) GetAttachment(ctx context.Context, id uuid.UUID) (*domain.FileAttachment, error) {
	return s.attachments.GetByID(ctx, id)
}

// documentText routes images through OCR and documents through direct
// text extraction.
func (s *documentService) documentText(ctx context.Context, t domain.FileType, data []byte) (string, error) {
	if t.IsImage() {
		return s.ocr.RecognizeBest(ctx, data)
	}
	if textextract.IsSupported(t) {
		return textextract.ForFile(t, data)
	}
	return "", domain.ErrUnsupportedFileType
}
