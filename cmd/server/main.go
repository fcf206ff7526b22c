package main

import (
	"fmt"
	"log"

	"facturo/internal/catalog"
	"facturo/internal/config"
	"facturo/internal/extract"
	"facturo/internal/handler"
	"facturo/internal/ocr"
	"facturo/internal/repository/sqlite"
	"facturo/internal/router"
	"facturo/internal/service"
	"facturo/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := sqlite.NewSessionRepo(db)
	attachmentRepo := sqlite.NewAttachmentRepo(db)
	recordRepo := sqlite.NewRecordRepo(db)

	// Initialize the extraction pipeline
	cat := catalog.Default()
	extractor := extract.New(extract.Options{Catalog: cat})
	ocrService := ocr.NewService(ocr.NewClient(&cfg.OCR), cfg.OCR.LanguageAttempts())

	// Initialize services
	chatSvc := service.NewChatService(sessionRepo, recordRepo, extractor)
	docSvc := service.NewDocumentService(sessionRepo, attachmentRepo, recordRepo, ocrService, extractor, &cfg.Upload)
	exportSvc := service.NewExportService(recordRepo)

	// Initialize handlers
	sessionH := handler.NewSessionHandler(chatSvc)
	documentH := handler.NewDocumentHandler(docSvc)
	recordH := handler.NewRecordHandler(exportSvc, validator.NewEngine())
	catalogH := handler.NewCatalogHandler(cat, cfg.Extract.MatchThreshold)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, sessionH, documentH, recordH, catalogH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
