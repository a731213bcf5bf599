package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/app"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testProvider(application *app.App, logger *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:      application,
			Logger:   logger,
			Settings: &domain.Settings{},
		}, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(&domain.Settings{}, nil, nil, nil, nil, mockLogger)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, testProvider(application, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_UnknownCommand verifies that run returns 1 for an unknown command.
func TestRun_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any())

	application := app.New(&domain.Settings{}, nil, nil, nil, nil, mockLogger)

	exitCode := run(context.Background(), []string{"frobnicate"}, new(bytes.Buffer), new(bytes.Buffer), testProvider(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}
