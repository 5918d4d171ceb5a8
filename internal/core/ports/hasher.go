package ports

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// Hash returns a stable hex digest of data.
	Hash(data []byte) string
}
