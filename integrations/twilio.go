package integrations

import (
	"context"
	"errors"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageSender delivers a WhatsApp message and returns the provider id.
type MessageSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// TwilioSender sends WhatsApp messages through the Twilio Messages API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsAppAddress(to))
	params.SetFrom(whatsAppAddress(s.from))
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid == nil {
		return "", errors.New("twilio: no message SID returned")
	}
	return *resp.Sid, nil
}

// whatsAppAddress turns "595981..." or "+595981..." into "whatsapp:+595981...".
func whatsAppAddress(phone string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "whatsapp:")
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	return "whatsapp:" + phone
}
