package bot

import (
	"fmt"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/iteachuz/enrollbot/internal/logger"
	"github.com/iteachuz/enrollbot/internal/registration"
	"github.com/iteachuz/enrollbot/internal/telegram/callbacks"
	tghelpers "github.com/iteachuz/enrollbot/internal/telegram/helpers"
)

func senderOf(c tele.Context) registration.User {
	u := c.Sender()
	if u == nil {
		return registration.User{}
	}
	return registration.User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// handleWithSummary wraps a handler invocation with a single summary log line.
func handleWithSummary(c tele.Context, name string, start time.Time, fn func() error, extras ...slog.Attr) error {
	ctx := tghelpers.WithHandler(c, name)
	err := fn()

	attrs := []slog.Attr{
		slog.String("status", logger.Status(err)),
		slog.Int64("duration_ms", logger.Took(start).Milliseconds()),
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", logger.SanitizeLimit(err.Error(), 256)))
	}
	attrs = append(attrs, extras...)
	logger.LogEvent(ctx, logger.Component("tg"), slog.LevelInfo, "handler.handled", attrs...)
	return err
}

func (a *App) startHandler(c tele.Context) error {
	return handleWithSummary(c, "start", time.Now(), func() error {
		view := a.Flow.Start(c.Sender().ID)
		return render(c, []registration.View{view})
	})
}

func (a *App) cancelHandler(c tele.Context) error {
	return handleWithSummary(c, "cancel", time.Now(), func() error {
		view := a.Flow.CancelCommand(c.Sender().ID)
		return render(c, []registration.View{view})
	})
}

func (a *App) statsHandler(c tele.Context) error {
	return handleWithSummary(c, "stats", time.Now(), func() error {
		ctx := tghelpers.BuildContext(c)
		n, err := a.Registrations.Count(ctx)
		if err != nil {
			return err
		}
		return tghelpers.SendMD(c, fmt.Sprintf("📈 Jami ro‘yxatdan o‘tganlar: *%d*", n))
	})
}

// callbackHandler decodes a registration callback into an event and lets the
// flow apply the transition. Unknown payloads are answered inline without
// advancing the state.
func (a *App) callbackHandler(c tele.Context) error {
	if c.Callback() == nil {
		return nil
	}
	key := callbacks.Key(c)
	payload := callbacks.Payload(c)
	_ = c.Respond()

	return handleWithSummary(c, "callback."+key, time.Now(), func() error {
		if key != registration.CallbackUnique {
			return tghelpers.EditOrSendMD(c, "Noma’lum amal.")
		}

		ev, err := registration.ParseEvent(payload)
		if err != nil {
			ctx := tghelpers.BuildContext(c)
			logger.Warn(ctx, "tg", "callback.unknown",
				slog.String("payload", logger.SanitizeLimit(payload, 128)),
			)
			return tghelpers.EditOrSendMD(c, "Noma’lum amal. Qaytadan urinib ko‘ring.")
		}

		ctx := tghelpers.BuildContext(c)
		return render(c, a.Flow.HandleEvent(ctx, senderOf(c), ev))
	}, slog.String("payload", logger.SanitizeLimit(payload, 128)))
}

func (a *App) textHandler(c tele.Context) error {
	return handleWithSummary(c, "text", time.Now(), func() error {
		ctx := tghelpers.BuildContext(c)
		return render(c, a.Flow.HandleText(ctx, senderOf(c), c.Text()))
	})
}

func (a *App) contactHandler(c tele.Context) error {
	return handleWithSummary(c, "contact", time.Now(), func() error {
		msg := c.Message()
		if msg == nil || msg.Contact == nil {
			return nil
		}
		ctx := tghelpers.BuildContext(c)
		return render(c, a.Flow.HandleContact(ctx, senderOf(c), msg.Contact.PhoneNumber))
	})
}
