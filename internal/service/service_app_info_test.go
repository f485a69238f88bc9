package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/mock"
	"github.com/MKhiriev/visa-assistant/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var noBuildInfo = models.NewAppBuildInfo("N/A", "N/A", "N/A")

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, noBuildInfo, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, noBuildInfo, nil, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_BuildVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("v1.4.0", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(config.App{Version: "dev"}, build, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.4.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_BuildVersionWithoutConfig(t *testing.T) {
	build := models.NewAppBuildInfo("v1.4.0", "", "")

	svc, err := NewAppInfoService(config.App{}, build, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, noBuildInfo, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, noBuildInfo, nil, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	// GetAppVersion does not use ctx, so it must still return the version
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// CheckHealth
// ─────────────────────────────────────────────

func TestCheckHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockPinger(ctrl)
	ctx := context.Background()

	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, noBuildInfo, db, logger.Nop())
	require.NoError(t, err)

	db.EXPECT().Ping(ctx).Return(nil)
	assert.NoError(t, svc.CheckHealth(ctx))

	db.EXPECT().Ping(ctx).Return(errors.New("connection refused"))
	assert.ErrorIs(t, svc.CheckHealth(ctx), ErrServiceUnhealthy)
}

func TestCheckHealth_WithoutDatabase(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, noBuildInfo, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.CheckHealth(context.Background()))
}
