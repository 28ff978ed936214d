package handlers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mri-dashboard/internal/pipeline"
)

// URLSigner resolves a stored object key to a time-limited read URL.
type URLSigner interface {
	SignedURL(ctx context.Context, key string) (string, error)
}

// Server holds the handlers' dependencies. Each view reads and mutates
// state only through these, never through package globals.
type Server struct {
	db            *gorm.DB
	pipeline      *pipeline.Pipeline
	signer        URLSigner
	sessionMaxAge time.Duration
}

func NewServer(db *gorm.DB, pl *pipeline.Pipeline, signer URLSigner, sessionMaxAge time.Duration) *Server {
	return &Server{
		db:            db,
		pipeline:      pl,
		signer:        signer,
		sessionMaxAge: sessionMaxAge,
	}
}
