package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/dmitrijs2005/finances/internal/server/config"
)

type sesClient interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

var (
	loadSESConfig = awsconfig.LoadDefaultConfig

	newSESClient = func(cfg aws.Config) sesClient {
		return sesv2.NewFromConfig(cfg)
	}
)

type sesSender struct {
	client sesClient
	from   string
}

func newSESSender(ctx context.Context, cfg *config.Config) (*sesSender, error) {
	awsCfg, err := loadSESConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	from := cfg.MailFrom
	if cfg.MailFromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.MailFromName, cfg.MailFrom)
	}

	return &sesSender{client: newSESClient(awsCfg), from: from}, nil
}

func (s *sesSender) send(ctx context.Context, m *message) error {
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{m.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(m.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(m.Text), Charset: aws.String("UTF-8")},
					Html: &types.Content{Data: aws.String(m.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
