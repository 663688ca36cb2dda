package telegram

import (
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/iteachuz/enrollbot/internal/config"
)

// defaultLongPollSeconds applies when no long-poll timeout is configured.
const defaultLongPollSeconds = 10

// newPoller picks the update source for the configured run mode. Normalize
// guarantees webhook settings are populated when webhook mode is selected.
func newPoller(cfg *config.Config) tele.Poller {
	if strings.EqualFold(strings.TrimSpace(cfg.Telegram.RunMode), config.RunModeWebhook) {
		return &tele.Webhook{
			Listen:   fmt.Sprintf("%s:%d", cfg.Webhook.Listen, cfg.Webhook.Port),
			Endpoint: &tele.WebhookEndpoint{PublicURL: cfg.Webhook.URL},
		}
	}
	return &tele.LongPoller{Timeout: longPollTimeout(cfg)}
}

func longPollTimeout(cfg *config.Config) time.Duration {
	seconds := cfg.Telegram.LongPollTimeoutSeconds
	if seconds <= 0 {
		seconds = defaultLongPollSeconds
	}
	return time.Duration(seconds) * time.Second
}
