package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/pkg/config"
)

type fakeAPI struct {
	params []*openapi.CreateMessageParams
	err    error
}

func (f *fakeAPI) CreateMessage(p *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = append(f.params, p)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

func TestNewTwilioSender_RequiresCredentials(t *testing.T) {
	_, err := NewTwilioSender(config.TwilioConfig{AccountSID: "AC1"}, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendSMS(t *testing.T) {
	api := &fakeAPI{}
	s := &TwilioSender{api: api, from: "+15550000000", log: zap.NewNop()}

	require.NoError(t, s.SendSMS(context.Background(), "+12125550100", "hello"))

	require.Len(t, api.params, 1)
	assert.Equal(t, "+12125550100", *api.params[0].To)
	assert.Equal(t, "+15550000000", *api.params[0].From)
	assert.Equal(t, "hello", *api.params[0].Body)
}

func TestSendSMS_Errors(t *testing.T) {
	s := &TwilioSender{api: &fakeAPI{err: errors.New("boom")}, from: "+1", log: zap.NewNop()}
	assert.Error(t, s.SendSMS(context.Background(), "+1", "x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	api := &fakeAPI{}
	s = &TwilioSender{api: api, from: "+1", log: zap.NewNop()}
	assert.ErrorIs(t, s.SendSMS(ctx, "+1", "x"), context.Canceled)
	assert.Empty(t, api.params)
}
