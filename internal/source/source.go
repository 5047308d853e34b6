// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source fetches candidate paper records from a metadata backend.
// Each backend (Papers with Code, arXiv, a saved snapshot) implements Source
// per the Strategy pattern, and resolves field defaults once at decode time
// so downstream stages never see null values.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pdiddy/paper-spotlight/internal/httputil"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// Source returns the current candidate set, in the backend's own order.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]types.PaperRecord, error)
}

// Options carries the collaborators shared by the HTTP backends.
type Options struct {
	Client *http.Client
	Logger *slog.Logger

	// Token authenticates against the Papers with Code API. Optional.
	Token string
}

// New builds the source selected by cfg.Kind.
func New(cfg types.SourceConfig, opts Options) (Source, error) {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	switch cfg.Kind {
	case types.SourcePapersWithCode, "":
		return &PapersWithCode{Client: client, Config: cfg, Token: opts.Token, Logger: opts.Logger}, nil
	case types.SourceArxiv:
		return &Arxiv{Client: client, Config: cfg, Logger: opts.Logger}, nil
	case types.SourceFile:
		if cfg.File == "" {
			return nil, fmt.Errorf("file source: no snapshot path configured (set source.file or --input)")
		}
		return &File{Path: cfg.File}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q (want pwc, arxiv, or file)", cfg.Kind)
	}
}

func maxResultsOr(cfg types.SourceConfig, def int) int {
	if cfg.MaxResults > 0 {
		return cfg.MaxResults
	}
	return def
}

func retryPolicy(logger *slog.Logger) httputil.Policy {
	return httputil.Policy{Logger: logger}
}
