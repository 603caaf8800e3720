package rustup

// Executor defines the interface for toolchain operations.
// This interface allows for mocking rustup invocations in tests.
type Executor interface {
	// Update updates the installed toolchains
	Update() error

	// Binary returns the rustup binary the executor invokes
	Binary() string
}
