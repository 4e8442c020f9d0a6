package provider

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"recharge-gateway/internal/core/ports/mocks"
	"recharge-gateway/internal/service"
)

func TestRegistry_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mocks.NewMockSettingsResolver(ctrl)
	mock := NewMockProvider(settings, service.NewSignatureCodec(), zerolog.Nop())
	reg := NewRegistry(mock)

	got, ok := reg.Get(ChannelMock)
	assert.True(t, ok)
	assert.Equal(t, mock, got)

	_, ok = reg.Get("nope")
	assert.False(t, ok)
}
