package testutil

import (
	"context"

	"github.com/arthur-debert/garnix/pkg/executor"
	"github.com/stretchr/testify/mock"
)

// MockRunner is a mock implementation of executor.Runner. Expectations take
// the program name and the full argument slice:
//
//	r.On("Output", mock.Anything, "nix", []string{"flake", "show", "--json", "/repo"}).
//		Return([]byte(`{}`), nil)
type MockRunner struct {
	mock.Mock
}

var _ executor.Runner = (*MockRunner)(nil)

// Output records the call and returns the configured output
func (m *MockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	ret := m.Called(ctx, name, args)
	var out []byte
	if v := ret.Get(0); v != nil {
		out = v.([]byte)
	}
	return out, ret.Error(1)
}

// Run records the call and returns the configured error
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) error {
	ret := m.Called(ctx, name, args)
	return ret.Error(0)
}

// Available records the call and returns the configured answer
func (m *MockRunner) Available(name string) bool {
	ret := m.Called(name)
	return ret.Bool(0)
}
