package dialogflow

import (
	"context"
	"errors"
	"fmt"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/google/uuid"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/seu-repo/concierge-bot/pkg/config"
)

// sessionNamespace keeps session ids stable per user without exposing the
// caller-supplied id to the dialog service.
var sessionNamespace = uuid.MustParse("7f1d3c2e-5a0b-4c8e-9d61-2b4f8e0a9c13")

var ErrEmptyReply = errors.New("dialogflow: empty reply")

type detector interface {
	DetectIntent(ctx context.Context, req *dialogflowpb.DetectIntentRequest, opts ...gax.CallOption) (*dialogflowpb.DetectIntentResponse, error)
}

// Client sends text queries to a Dialogflow ES agent.
type Client struct {
	sessions     detector
	closer       func() error
	projectID    string
	languageCode string
	log          *zap.Logger
}

func NewClient(ctx context.Context, cfg config.DialogflowConfig, log *zap.Logger) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("dialogflow: project id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	sessionClient, err := dialogflow.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Dialogflow session client: %w", err)
	}

	log.Info("Dialogflow session client ready", zap.String("project", cfg.ProjectID))
	return newClient(sessionClient, sessionClient.Close, cfg, log), nil
}

func newClient(sessions detector, closer func() error, cfg config.DialogflowConfig, log *zap.Logger) *Client {
	lang := cfg.LanguageCode
	if lang == "" {
		lang = "en-US"
	}
	return &Client{
		sessions:     sessions,
		closer:       closer,
		projectID:    cfg.ProjectID,
		languageCode: lang,
		log:          log,
	}
}

// PostText runs one detect-intent round trip in the user's session.
func (c *Client) PostText(ctx context.Context, userID, text string) (string, error) {
	req := &dialogflowpb.DetectIntentRequest{
		Session: c.sessionPath(userID),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{Text: text, LanguageCode: c.languageCode},
			},
		},
	}

	resp, err := c.sessions.DetectIntent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("dialogflow: detect intent: %w", err)
	}

	result := resp.GetQueryResult()
	c.log.Debug("Intent detected",
		zap.String("intent", result.GetIntent().GetDisplayName()),
		zap.Float32("confidence", result.GetIntentDetectionConfidence()),
	)

	reply := result.GetFulfillmentText()
	if reply == "" {
		for _, m := range result.GetFulfillmentMessages() {
			if texts := m.GetText().GetText(); len(texts) > 0 {
				reply = texts[0]
				break
			}
		}
	}
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

func (c *Client) sessionPath(userID string) string {
	sessionID := uuid.NewSHA1(sessionNamespace, []byte(userID)).String()
	return fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, sessionID)
}

func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}
