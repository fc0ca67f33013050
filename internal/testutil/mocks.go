package testutil

import (
	"context"

	"inncheck/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockReportProvider is a mock for service.ReportProvider
type MockReportProvider struct {
	mock.Mock
}

func (m *MockReportProvider) GeneralInfo(ctx context.Context, tin int64) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}

func (m *MockReportProvider) LegalEntityInfo(ctx context.Context, tin int64) (*domain.LegalEntityInfo, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LegalEntityInfo), args.Error(1)
}

// MockTelegramClient is a mock for telegram.Client
type MockTelegramClient struct {
	mock.Mock
}

func (m *MockTelegramClient) SendText(ctx context.Context, to domain.Recipient, text string) error {
	args := m.Called(ctx, to, text)
	return args.Error(0)
}

func (m *MockTelegramClient) SendWithButtons(ctx context.Context, to domain.Recipient, text string, buttons []domain.CallbackButton, perRow int) error {
	args := m.Called(ctx, to, text, buttons, perRow)
	return args.Error(0)
}

func (m *MockTelegramClient) RemoveButtons(ctx context.Context, to domain.Recipient, messageID int) error {
	args := m.Called(ctx, to, messageID)
	return args.Error(0)
}
