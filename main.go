package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/mwestra/zzpcheck/internal/config"
	"github.com/mwestra/zzpcheck/internal/gelf"
	"github.com/mwestra/zzpcheck/internal/handler"
	"github.com/mwestra/zzpcheck/internal/i18n"
	"github.com/mwestra/zzpcheck/internal/pdf"
	"github.com/mwestra/zzpcheck/internal/repository"
	"github.com/mwestra/zzpcheck/internal/router"
	"github.com/mwestra/zzpcheck/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Language catalogs
	bundle, err := i18n.NewBundle(cfg.DefaultLang)
	if err != nil {
		log.Fatalf("Invalid language config: %v", err)
	}
	if !bundle.IsSupported(cfg.FallbackLang) {
		log.Fatalf("Invalid language config: unsupported fallback language %q", cfg.FallbackLang)
	}

	// Storage
	renderer := pdf.NewRenderer()
	subRepo := repository.NewSubmissionRepo(cfg.SubmissionDir, bundle, renderer, cfg.FallbackLang)
	if err := subRepo.EnsureDir(); err != nil {
		log.Fatalf("Failed to create submission dir %s: %v", cfg.SubmissionDir, err)
	}

	// Service and handlers
	checklistSvc := service.NewChecklistService(bundle, subRepo)
	checklistH := handler.NewChecklistHandler(checklistSvc, bundle, cfg.SessionSecret)

	// Router
	r := router.New(checklistH)

	log.Printf("zzpcheck server starting on %s (submissions: %s, default: %s, fallback: %s)",
		cfg.HTTPAddr, cfg.SubmissionDir, bundle.Default(), cfg.FallbackLang)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
