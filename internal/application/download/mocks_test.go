package download

import (
	"context"

	"github.com/stretchr/testify/mock"

	"repoaccess/internal/shared/logger"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) ManagersOf(ctx context.Context, collectionID string) ([]string, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockDirectory) IsManager(ctx context.Context, email, collectionID string) (bool, error) {
	args := m.Called(ctx, email, collectionID)
	return args.Bool(0), args.Error(1)
}

func (m *mockDirectory) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Info(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Warn(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Error(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}
