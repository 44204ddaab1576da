package webfile_test

import (
	"github.com/stretchr/testify/mock"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

// mockFileReader is a host.FileReader whose callbacks are captured instead of fired.
type mockFileReader struct {
	mock.Mock
	onLoad, onError, onAbort func()
}

func newMockFileReader() *mockFileReader {
	m := new(mockFileReader)
	m.On("OnLoad", mock.Anything).Run(func(args mock.Arguments) { m.onLoad = args.Get(0).(func()) })
	m.On("OnError", mock.Anything).Run(func(args mock.Arguments) { m.onError = args.Get(0).(func()) })
	m.On("OnAbort", mock.Anything).Run(func(args mock.Arguments) { m.onAbort = args.Get(0).(func()) })
	return m
}

func (m *mockFileReader) ReadAsText(blob host.Blob) error {
	return m.Called(blob).Error(0)
}

func (m *mockFileReader) OnLoad(fn func())  { m.Called(fn) }
func (m *mockFileReader) OnError(fn func()) { m.Called(fn) }
func (m *mockFileReader) OnAbort(fn func()) { m.Called(fn) }

func (m *mockFileReader) Result() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *mockFileReader) Error() error {
	return m.Called().Error(0)
}

func (m *mockFileReader) Abort() {
	m.Called()
}

// mockEnvironment is a host.Environment with programmable constructors.
type mockEnvironment struct {
	mock.Mock
}

func (m *mockEnvironment) NewBlob(parts []string, mediaType string) (host.Blob, error) {
	args := m.Called(parts, mediaType)
	b, _ := args.Get(0).(host.Blob)
	return b, args.Error(1)
}

func (m *mockEnvironment) NewFileReader() (host.FileReader, error) {
	args := m.Called()
	r, _ := args.Get(0).(host.FileReader)
	return r, args.Error(1)
}

func (m *mockEnvironment) InputByID(id string) (host.InputElement, bool) {
	args := m.Called(id)
	i, _ := args.Get(0).(host.InputElement)
	return i, args.Bool(1)
}
