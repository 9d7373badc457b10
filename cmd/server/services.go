package main

import (
	"fmt"

	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/extract"
	"codeberg.org/quickai/server/internal/imaging"
	"codeberg.org/quickai/server/internal/llm"
)

// creates all provider clients from the immutable startup configuration
func InitializeServices(cfg *config.Config) (*Services, error) {
	text, err := llm.NewTextGenerator(&llm.Config{
		Provider: llm.ProviderGemini,
		APIKey:   cfg.GeminiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	editor := imaging.NewCloudinaryClient(imaging.CloudinaryConfig{
		CloudName: cfg.CloudinaryCloud,
		APIKey:    cfg.CloudinaryKey,
		APISecret: cfg.CloudinarySecret,
	})

	return &Services{
		Text:      text,
		Images:    imaging.NewClipDropClient(cfg.ClipDropKey),
		Editor:    editor,
		Extractor: extract.NewPDFExtractor(),
	}, nil
}
