package utils

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/defenstration/diet-tracker-app/logger"
)

// Mailer sends the sign-in email. Behind an interface so the auth service
// can be exercised without SES.
type Mailer interface {
	SendMagicLink(to, token, redirectTo string) error
}

type SESMailer struct {
	client *ses.Client
	from   string
	appURL string
}

func NewSESMailer() (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		from:   os.Getenv("SES_EMAIL"),
		appURL: os.Getenv("APP_URL"),
	}, nil
}

func (m *SESMailer) SendMagicLink(to, token, redirectTo string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", m.appURL, url.QueryEscape(token))
	if redirectTo != "" {
		link += "&redirect_to=" + url.QueryEscape(redirectTo)
	}

	subject := "Your sign-in link"
	body := fmt.Sprintf("Click to sign in:\n\n%s\n\nThe link expires in 15 minutes.", link)
	return m.sendEmail(to, subject, body)
}

func (m *SESMailer) sendEmail(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	_, err := m.client.SendEmail(context.TODO(), input)
	if err != nil {
		logger.L().Sugar().Errorf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
