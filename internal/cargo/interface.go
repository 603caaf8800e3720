package cargo

// Executor defines the interface for cargo operations.
// This interface allows for mocking cargo invocations in tests.
type Executor interface {
	// Update refreshes the dependency lockfile
	Update() error

	// Search queries the registry for a crate and returns the raw listing
	Search(pkg string) (string, error)

	// WorkDir returns the working directory commands run in
	WorkDir() string
}
