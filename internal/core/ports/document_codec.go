package ports

import "go.trai.ch/locksmith/internal/core/domain"

// DocumentCodec converts between lockfile text and the domain document.
//
//go:generate mockgen -source=document_codec.go -destination=mocks/mock_document_codec.go -package=mocks
type DocumentCodec interface {
	// Parse decodes a lockfile. It fails on malformed syntax.
	Parse(data []byte) (*domain.Document, error)

	// Encode serializes a document in the canonical schema.
	Encode(doc *domain.Document) ([]byte, error)
}
