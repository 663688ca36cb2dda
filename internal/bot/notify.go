package bot

import (
	"context"
	"fmt"
	"sync/atomic"

	tele "gopkg.in/telebot.v4"
)

// adminNotifier sends admin notifications through the running bot. The bot
// instance is attached at transport start.
type adminNotifier struct {
	adminID int64
	bot     atomic.Pointer[tele.Bot]
}

func newAdminNotifier(adminID int64) *adminNotifier {
	return &adminNotifier{adminID: adminID}
}

// Attach wires the running bot instance.
func (n *adminNotifier) Attach(b *tele.Bot) {
	n.bot.Store(b)
}

// NotifyAdmin delivers a Markdown message to the configured administrator.
func (n *adminNotifier) NotifyAdmin(ctx context.Context, text string) error {
	b := n.bot.Load()
	if b == nil {
		return fmt.Errorf("notify admin: bot not started")
	}
	_, err := b.Send(tele.ChatID(n.adminID), text, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
	if err != nil {
		return fmt.Errorf("notify admin: %w", err)
	}
	return nil
}
