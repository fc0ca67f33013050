package service

import (
	"context"
	"fmt"
	"testing"

	"inncheck/internal/domain"
	"inncheck/internal/format"
	"inncheck/internal/modestore"
	"inncheck/internal/testutil"
	"inncheck/internal/tin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

const botName = "it_hugin_and_munin_bot"

func newTestRouter(provider ReportProvider) (*Router, *modestore.Store) {
	modes := modestore.New()
	router := NewRouter(modes, provider, tin.NewParser(botName), testutil.NewTestLogger())
	return router, modes
}

func textUpdate(userID, chatID int64, msgID int, text string) tele.Update {
	return tele.Update{
		Message: &tele.Message{
			ID:     msgID,
			Text:   text,
			Sender: &tele.User{ID: userID},
			Chat:   &tele.Chat{ID: chatID},
		},
	}
}

func callbackUpdate(userID, chatID int64, msgID int, data string) tele.Update {
	return tele.Update{
		Callback: &tele.Callback{
			Data:   data,
			Sender: &tele.User{ID: userID},
			Message: &tele.Message{
				ID:     msgID,
				Sender: &tele.User{ID: userID},
				Chat:   &tele.Chat{ID: chatID},
			},
		},
	}
}

func modeSelectionFor(userID int64, to domain.Recipient) domain.SendModeSelection {
	return domain.SendModeSelection{
		To: to,
		Buttons: []domain.CallbackButton{
			{Caption: "ℹ️ Oбщая информация", Payload: fmt.Sprintf("mode-general-%d", userID)},
			{Caption: "⚖️ Юридическая информация", Payload: fmt.Sprintf("mode-legalinfo-%d", userID)},
			{Caption: "🗣️ Отзывы (в разработке)", Payload: fmt.Sprintf("mode-reviews-%d", userID)},
			{Caption: "💰 Зарплаты (в разработке)", Payload: fmt.Sprintf("mode-salaries-%d", userID)},
		},
		PerRow: 1,
	}
}

func TestClassify_Recipients(t *testing.T) {
	tests := []struct {
		name     string
		update   tele.Update
		expected domain.Command
	}{
		{
			name:     "private chat replies to the user",
			update:   textUpdate(333, 333, 555, "/start"),
			expected: domain.SendGreetings{To: domain.User{ID: 333}},
		},
		{
			name:     "group chat replies to the originating message",
			update:   textUpdate(333, 444, 555, "/start"),
			expected: domain.SendGreetings{To: domain.Chat{ID: 444, ReplyTo: 555}},
		},
		{
			name: "chat with topics replies into the topic",
			update: tele.Update{
				Message: &tele.Message{
					ID:       555,
					ThreadID: 666,
					Text:     "/start",
					Sender:   &tele.User{ID: 333},
					Chat:     &tele.Chat{ID: 444},
				},
			},
			expected: domain.SendGreetings{To: domain.Chat{ID: 444, TopicID: 666, ReplyTo: 555}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(new(testutil.MockReportProvider))

			cmd, err := router.Classify(context.Background(), tt.update)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestClassify_BasicCommands(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.Command
	}{
		{"start", "/start", domain.SendGreetings{To: domain.User{ID: 333}}},
		{"help", "/help", domain.SendHelp{To: domain.User{ID: 333}}},
		{"mode", "/mode", modeSelectionFor(333, domain.User{ID: 333})},
		{"unknown command", "/frobnicate", domain.NoAction{}},
		{"plain text", "hello there", domain.NoAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(new(testutil.MockReportProvider))

			cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, tt.text))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestClassify_IgnoresUpdatesWithoutSender(t *testing.T) {
	tests := []struct {
		name   string
		update tele.Update
	}{
		{"empty update", tele.Update{}},
		{"message without sender", tele.Update{Message: &tele.Message{ID: 1, Text: "/start", Chat: &tele.Chat{ID: 1}}}},
		{"callback without message", tele.Update{Callback: &tele.Callback{Data: "mode-general-1", Sender: &tele.User{ID: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(new(testutil.MockReportProvider))

			cmd, err := router.Classify(context.Background(), tt.update)

			require.NoError(t, err)
			assert.Equal(t, domain.NoAction{}, cmd)
		})
	}
}

func TestClassify_MessageWithoutContent(t *testing.T) {
	router, _ := newTestRouter(new(testutil.MockReportProvider))

	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, ""))

	require.NoError(t, err)
	assert.Equal(t, domain.SendNoContent{To: domain.User{ID: 333}}, cmd)
}

func TestClassify_ModeChange(t *testing.T) {
	router, modes := newTestRouter(new(testutil.MockReportProvider))

	cmd, err := router.Classify(context.Background(), callbackUpdate(333, 333, 999, "mode-legalinfo-333"))

	require.NoError(t, err)
	assert.Equal(t, domain.SendModeConfirmed{
		To:                domain.User{ID: 333},
		Mode:              domain.ModeLegalInfo,
		OriginalMessageID: 999,
	}, cmd)

	mode, ok := modes.Get(333)
	assert.True(t, ok)
	assert.Equal(t, domain.ModeLegalInfo, mode)
}

func TestClassify_SpoofedModeChangeIsIgnored(t *testing.T) {
	router, modes := newTestRouter(new(testutil.MockReportProvider))

	// Button was built for user 222, tapped by user 333.
	cmd, err := router.Classify(context.Background(), callbackUpdate(333, 333, 999, "mode-general-222"))

	require.NoError(t, err)
	assert.Equal(t, domain.NoAction{}, cmd)

	_, ok := modes.Get(333)
	assert.False(t, ok, "spoofed callback must not mutate the mode store")
	_, ok = modes.Get(222)
	assert.False(t, ok)
}

func TestClassify_MalformedModePayloadIsAnError(t *testing.T) {
	router, _ := newTestRouter(new(testutil.MockReportProvider))

	_, err := router.Classify(context.Background(), callbackUpdate(333, 333, 999, "mode-unknown-333"))

	assert.Error(t, err)
}

func TestClassify_UnknownCallbackPayload(t *testing.T) {
	router, _ := newTestRouter(new(testutil.MockReportProvider))

	cmd, err := router.Classify(context.Background(), callbackUpdate(333, 333, 999, "page_2"))

	require.NoError(t, err)
	assert.Equal(t, domain.NoAction{}, cmd)
}

func TestClassify_CheckWithoutModeForcesSelection(t *testing.T) {
	router, _ := newTestRouter(new(testutil.MockReportProvider))

	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 7703475603"))

	require.NoError(t, err)
	assert.Equal(t, modeSelectionFor(333, domain.User{ID: 333}), cmd)
}

func TestClassify_CheckWithInvalidTin(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	router, modes := newTestRouter(provider)
	modes.Set(333, domain.ModeGeneral)

	for _, text := range []string{"/check 123", "/check abc", "/check"} {
		cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, text))

		require.NoError(t, err)
		assert.Equal(t, domain.SendTinIsInvalid{To: domain.User{ID: 333}}, cmd)
	}
	provider.AssertExpectations(t)
}

func TestClassify_GeneralReport(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	provider.On("GeneralInfo", mock.Anything, int64(7703475603)).Return(testutil.OzonGeneralInfo(), nil)

	router, modes := newTestRouter(provider)
	modes.Set(333, domain.ModeGeneral)

	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 7703475603"))

	require.NoError(t, err)
	assert.Equal(t, domain.SendGeneralReport{
		To:   domain.User{ID: 333},
		Text: format.GeneralReport(testutil.OzonGeneralInfo()),
	}, cmd)
	provider.AssertExpectations(t)
}

func TestClassify_ModeChangeThenCheckUsesFreshMode(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	provider.On("GeneralInfo", mock.Anything, int64(7703475603)).Return(testutil.OzonGeneralInfo(), nil)

	router, _ := newTestRouter(provider)

	_, err := router.Classify(context.Background(), callbackUpdate(333, 333, 999, "mode-general-333"))
	require.NoError(t, err)

	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 7703475603"))

	require.NoError(t, err)
	assert.IsType(t, domain.SendGeneralReport{}, cmd)
}

func TestClassify_LegalEntityReportWithDrillDownButtons(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	provider.On("LegalEntityInfo", mock.Anything, int64(7703475603)).Return(testutil.OzonLegalEntityInfo(), nil)

	router, modes := newTestRouter(provider)
	modes.Set(333, domain.ModeLegalInfo)

	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 7703475603"))

	require.NoError(t, err)
	assert.Equal(t, domain.SendLegalEntityReport{
		To:   domain.User{ID: 333},
		Text: format.LegalEntityReport(testutil.OzonLegalEntityInfo()),
		Buttons: []domain.CallbackButton{
			{Caption: `ООО "ОЗОН ХОЛДИНГ"`, Payload: "check-333-7743181857"},
			{Caption: `ООО "ИНТЕРНЕТ РЕШЕНИЯ"`, Payload: "check-333-7704217370"},
		},
		PerRow: 1,
	}, cmd)
}

func TestClassify_DrillDownExcludesForeignShareholders(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	provider.On("LegalEntityInfo", mock.Anything, int64(7714617793)).Return(testutil.SvyaznoyLegalEntityInfo(), nil)

	router, modes := newTestRouter(provider)
	modes.Set(333, domain.ModeLegalInfo)

	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 7714617793"))

	require.NoError(t, err)
	report, ok := cmd.(domain.SendLegalEntityReport)
	require.True(t, ok)
	assert.Equal(t, []domain.CallbackButton{
		{Caption: `АО "ГРУППА КОМПАНИЙ "СВЯЗНОЙ"`, Payload: "check-333-7703534714"},
	}, report.Buttons)
}

func TestClassify_CheckFromDrillDownCallback(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	provider.On("LegalEntityInfo", mock.Anything, int64(7703475603)).Return(testutil.OzonLegalEntityInfo(), nil)

	router, modes := newTestRouter(provider)
	modes.Set(333, domain.ModeLegalInfo)

	cmd, err := router.Classify(context.Background(), callbackUpdate(333, 333, 555, "check-333-7703475603"))

	require.NoError(t, err)
	assert.IsType(t, domain.SendLegalEntityReport{}, cmd)
	provider.AssertExpectations(t)
}

func TestClassify_CompanyNotFound(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	provider.On("GeneralInfo", mock.Anything, int64(1234567890)).Return(nil, nil)

	router, modes := newTestRouter(provider)
	modes.Set(333, domain.ModeGeneral)

	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 1234567890"))

	require.NoError(t, err)
	assert.Equal(t, domain.SendCompanyNotFound{To: domain.User{ID: 333}}, cmd)
}

func TestClassify_ProviderErrorPropagates(t *testing.T) {
	provider := new(testutil.MockReportProvider)
	provider.On("GeneralInfo", mock.Anything, int64(1234567890)).Return(nil, fmt.Errorf("rpc failed"))

	router, modes := newTestRouter(provider)
	modes.Set(333, domain.ModeGeneral)

	_, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 1234567890"))

	assert.Error(t, err)
}

func TestClassify_ReviewsAndSalariesArePlaceholders(t *testing.T) {
	router, modes := newTestRouter(new(testutil.MockReportProvider))

	modes.Set(333, domain.ModeReviews)
	cmd, err := router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 7703475603"))
	require.NoError(t, err)
	reviews, ok := cmd.(domain.SendReviewsReport)
	require.True(t, ok)
	assert.Contains(t, reviews.Text, "в разработке")

	modes.Set(333, domain.ModeSalaries)
	cmd, err = router.Classify(context.Background(), textUpdate(333, 333, 555, "/check 7703475603"))
	require.NoError(t, err)
	salaries, ok := cmd.(domain.SendSalariesReport)
	require.True(t, ok)
	assert.Contains(t, salaries.Text, "в разработке")
}
