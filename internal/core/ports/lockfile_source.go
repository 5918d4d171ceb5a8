package ports

// LockfileSource reads raw lockfile bytes from storage.
//
//go:generate mockgen -source=lockfile_source.go -destination=mocks/mock_lockfile_source.go -package=mocks
type LockfileSource interface {
	// Load returns the content of the file at path with any leading byte-order mark removed.
	// A missing file is reported as found == false with a nil error.
	Load(path string) (content []byte, found bool, err error)
}
