package rustup

// MockRunner implements Executor for testing.
// Each method can be configured with a custom function to control behavior.
type MockRunner struct {
	UpdateFunc func() error
	binary     string
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		binary: "rustup",
	}
}

// Update updates the installed toolchains
func (m *MockRunner) Update() error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc()
	}
	return nil
}

// Binary returns the rustup binary the executor invokes
func (m *MockRunner) Binary() string {
	return m.binary
}
