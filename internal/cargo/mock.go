package cargo

// MockRunner implements Executor for testing.
// Each method can be configured with a custom function to control behavior.
type MockRunner struct {
	UpdateFunc func() error
	SearchFunc func(pkg string) (string, error)
	workDir    string
}

// NewMockRunner creates a new MockRunner with the specified working directory
func NewMockRunner(workDir string) *MockRunner {
	return &MockRunner{
		workDir: workDir,
	}
}

// Update refreshes the dependency lockfile
func (m *MockRunner) Update() error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc()
	}
	return nil
}

// Search queries the registry for a crate and returns the raw listing
func (m *MockRunner) Search(pkg string) (string, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(pkg)
	}
	return "", nil
}

// WorkDir returns the working directory commands run in
func (m *MockRunner) WorkDir() string {
	return m.workDir
}
