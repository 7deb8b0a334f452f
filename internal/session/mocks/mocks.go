package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/sokinpui/blocnote/model"
)

// MockPrompter is a mock session.Prompter.
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) ConfirmSave() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockPrompter) OpenPath() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) SavePath() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockFileStore is a mock session.FileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) ReadText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) WriteText(path, content string) error {
	args := m.Called(path, content)
	return args.Error(0)
}

// MockConfigStore is a mock session.ConfigStore.
type MockConfigStore struct {
	mock.Mock
}

func (m *MockConfigStore) Store(settings model.Settings) error {
	args := m.Called(settings)
	return args.Error(0)
}

// MockWindow is a mock session.Window.
type MockWindow struct {
	mock.Mock
}

func (m *MockWindow) Size() (int, int) {
	args := m.Called()
	return args.Int(0), args.Int(1)
}
