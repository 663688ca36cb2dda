package registration

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/iteachuz/enrollbot/internal/logger"
	"github.com/iteachuz/enrollbot/internal/telegram/keyboard"
)

// Record is the durable registration handed to the Recorder on confirm.
type Record struct {
	TgUserID  int64
	Username  string
	FirstName string
	LastName  string
	FullName  string
	Age       int
	Phone     string
	Course    string
	Level     string
	Section   string
}

// Recorder persists confirmed registrations.
type Recorder interface {
	Create(ctx context.Context, rec Record) error
}

// Notifier delivers the admin notification. Delivery failure must not affect
// the user-visible outcome.
type Notifier interface {
	NotifyAdmin(ctx context.Context, text string) error
}

// View is one outbound rendering produced by a transition. Button-driven
// transitions edit the triggering message in place; text-driven ones send a
// new message.
type View struct {
	Text   string
	Markup *tele.ReplyMarkup
	Edit   bool
}

func edit(text string, markup *tele.ReplyMarkup) View {
	return View{Text: text, Markup: markup, Edit: true}
}

func send(text string, markup *tele.ReplyMarkup) View {
	return View{Text: text, Markup: markup}
}

// Flow is the conversation state machine. It owns session transitions and
// hands confirmed sessions to the Recorder and Notifier.
type Flow struct {
	sessions Store
	records  Recorder
	notify   Notifier
}

// NewFlow wires the state machine with its collaborators.
func NewFlow(sessions Store, records Recorder, notify Notifier) *Flow {
	return &Flow{sessions: sessions, records: records, notify: notify}
}

// Start resets the user's session and renders the welcome screen.
func (f *Flow) Start(userID int64) View {
	f.sessions.Clear(userID)
	return send(textWelcome, RegisterMenu())
}

// CancelCommand resets the session in response to /cancel.
func (f *Flow) CancelCommand(userID int64) View {
	f.sessions.Clear(userID)
	return send(textCancelledCommand, keyboard.RemoveKeyboard())
}

// InProgress reports whether the user has an active registration session.
func (f *Flow) InProgress(userID int64) bool {
	return f.sessions.Get(userID).Step != StepIdle
}

// HandleEvent drives a transition from a decoded callback event.
func (f *Flow) HandleEvent(ctx context.Context, user User, ev Event) []View {
	sess := f.sessions.Get(user.ID)
	from := sess.Step

	views := f.applyEvent(ctx, user, sess, ev)

	if sess.Step != from {
		logger.LogEvent(ctx, logger.REG, slog.LevelDebug, "flow.transition",
			slog.String("status", "ok"),
			slog.Int64("user_id", user.ID),
			slog.String("from", string(from)),
			slog.String("to", string(sess.Step)),
		)
	}
	return views
}

func (f *Flow) applyEvent(ctx context.Context, user User, sess *Session, ev Event) []View {
	switch ev.Kind {
	case EventCancel:
		f.sessions.Clear(user.ID)
		return []View{edit(textCancelledButton, nil)}

	case EventBegin:
		fresh := &Session{}
		f.sessions.Save(user.ID, fresh)
		return []View{f.gotoCourses(user.ID, fresh)}

	case EventBackCourses:
		sess.ClearLevel()
		sess.ClearSection()
		f.sessions.Save(user.ID, sess)
		return []View{f.gotoCourses(user.ID, sess)}

	case EventBackLevels:
		sess.ClearSection()
		f.sessions.Save(user.ID, sess)
		return []View{f.gotoLevels(user.ID, sess)}

	case EventBackReview:
		return []View{f.gotoReview(user.ID, sess, true)}

	case EventCourse:
		label, ok := CourseLabel(ev.Arg)
		if !ok {
			return []View{edit(textBadCourse, nil)}
		}
		sess.CourseKey, sess.CourseLabel = ev.Arg, label
		sess.ClearLevel()
		sess.ClearSection()
		f.sessions.Save(user.ID, sess)
		if CourseHasLevel(ev.Arg) {
			return []View{f.gotoLevels(user.ID, sess)}
		}
		return []View{f.gotoSections(user.ID, sess)}

	case EventLevel:
		label, ok := LevelLabel(ev.Arg)
		if !ok {
			return []View{edit(textBadLevel, nil)}
		}
		sess.LevelKey, sess.LevelLabel = ev.Arg, label
		f.sessions.Save(user.ID, sess)
		return []View{f.gotoSections(user.ID, sess)}

	case EventSection:
		label, ok := SectionLabel(sess.CourseKey, ev.Arg)
		if !ok {
			return []View{edit(textBadSection, nil)}
		}
		sess.SectionKey, sess.SectionLabel = ev.Arg, label
		sess.Step = StepAskName
		f.sessions.Save(user.ID, sess)
		return []View{send(textAskName, keyboard.RemoveKeyboard())}

	case EventConfirm:
		return f.confirm(ctx, user, sess)

	case EventEdit:
		sess.Step = StepEditMenu
		f.sessions.Save(user.ID, sess)
		return []View{edit(textEditMenu, EditMenu(sess.CourseKey))}

	case EventEditField:
		return f.editField(user.ID, sess, ev.Arg)
	}

	return []View{edit(textBadAction, nil)}
}

// HandleText drives a transition from free-text input on the ask steps.
func (f *Flow) HandleText(ctx context.Context, user User, text string) []View {
	sess := f.sessions.Get(user.ID)
	text = strings.TrimSpace(text)

	switch sess.Step {
	case StepAskName:
		if !ValidFullName(text) {
			return []View{send(textBadName, nil)}
		}
		sess.FullName = text
		sess.Step = StepAskAge
		f.sessions.Save(user.ID, sess)
		return []View{send(textAskAge, nil)}

	case StepAskAge:
		if !ValidAge(text) {
			return []View{send(textBadAge, nil)}
		}
		sess.Age, _ = strconv.Atoi(text)
		sess.Step = StepAskPhone
		f.sessions.Save(user.ID, sess)
		return []View{send(textAskPhone, ContactKeyboard())}

	case StepAskPhone:
		phone, ok := NormalizePhone(text)
		if !ok {
			return []View{send(textBadPhone, nil)}
		}
		sess.Phone = phone
		f.sessions.Save(user.ID, sess)
		return []View{f.gotoReview(user.ID, sess, false)}
	}

	return []View{send(textHint, nil)}
}

// HandleContact accepts a shared contact while the session awaits a phone
// number; contacts in any other step are ignored.
func (f *Flow) HandleContact(ctx context.Context, user User, phone string) []View {
	sess := f.sessions.Get(user.ID)
	if sess.Step != StepAskPhone || phone == "" {
		return nil
	}

	normalized, ok := NormalizePhone(phone)
	if !ok {
		return []View{send(textBadContact, nil)}
	}
	sess.Phone = normalized
	f.sessions.Save(user.ID, sess)
	return []View{
		send(textContactTaken, keyboard.RemoveKeyboard()),
		f.gotoReview(user.ID, sess, false),
	}
}

func (f *Flow) gotoCourses(userID int64, sess *Session) View {
	sess.Step = StepChooseCourse
	f.sessions.Save(userID, sess)
	return edit(textChooseCourse, CourseMenu())
}

func (f *Flow) gotoLevels(userID int64, sess *Session) View {
	sess.Step = StepChooseLevel
	f.sessions.Save(userID, sess)
	return edit(textChooseLevel, LevelMenu())
}

func (f *Flow) gotoSections(userID int64, sess *Session) View {
	sess.Step = StepChooseSection
	f.sessions.Save(userID, sess)
	return edit(textChooseSection, SectionMenu(sess.CourseKey))
}

func (f *Flow) gotoReview(userID int64, sess *Session, asEdit bool) View {
	sess.Step = StepReview
	sess.EditField = ""
	f.sessions.Save(userID, sess)
	v := View{Text: ReviewText(sess), Markup: ReviewMenu(), Edit: asEdit}
	return v
}

func (f *Flow) editField(userID int64, sess *Session, field string) []View {
	sess.EditField = field
	f.sessions.Save(userID, sess)

	switch field {
	case "course":
		return []View{f.gotoCourses(userID, sess)}
	case "level":
		return []View{f.gotoLevels(userID, sess)}
	case "section":
		return []View{f.gotoSections(userID, sess)}
	case "name":
		sess.Step = StepAskName
		f.sessions.Save(userID, sess)
		return []View{edit(textEditName, nil)}
	case "age":
		sess.Step = StepAskAge
		f.sessions.Save(userID, sess)
		return []View{edit(textEditAge, nil)}
	case "phone":
		sess.Step = StepAskPhone
		f.sessions.Save(userID, sess)
		return []View{
			edit(textEditPhone, nil),
			send(textSendContact, ContactKeyboard()),
		}
	}
	return []View{edit(textBadAction, nil)}
}

// confirm validates the session, persists the record, notifies the admin,
// and clears the session. A storage failure keeps the session intact so the
// user can confirm again.
func (f *Flow) confirm(ctx context.Context, user User, sess *Session) []View {
	if !sess.Complete() {
		// Defensive: unreachable under correct transitions.
		f.sessions.Clear(user.ID)
		logger.LogEvent(ctx, logger.REG, slog.LevelWarn, "confirm.incomplete",
			slog.Int64("user_id", user.ID),
			slog.String("step", string(sess.Step)),
		)
		return []View{edit(textIncomplete, nil)}
	}

	rec := Record{
		TgUserID:  user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  sess.FullName,
		Age:       sess.Age,
		Phone:     sess.Phone,
		Course:    sess.CourseLabel,
		Level:     sess.LevelLabel,
		Section:   sess.SectionLabel,
	}
	if err := f.records.Create(ctx, rec); err != nil {
		logger.LogEvent(ctx, logger.REG, slog.LevelError, "confirm.store",
			slog.String("status", "fail"),
			slog.Int64("user_id", user.ID),
			slog.String("err", err.Error()),
		)
		return []View{edit(textStorageErr, nil)}
	}

	adminText := AdminText(sess, user, time.Now())
	if err := f.notify.NotifyAdmin(ctx, adminText); err != nil {
		// Fire and forget: the registration is already stored.
		logger.LogEvent(ctx, logger.REG, slog.LevelWarn, "confirm.notify_admin",
			slog.String("status", "fail"),
			slog.Int64("user_id", user.ID),
			slog.String("err", err.Error()),
		)
	}

	f.sessions.Clear(user.ID)
	logger.LogEvent(ctx, logger.REG, slog.LevelInfo, "confirm.done",
		slog.String("status", "ok"),
		slog.Int64("user_id", user.ID),
		slog.String("course", sess.CourseLabel),
		slog.String("section", sess.SectionLabel),
	)
	return []View{edit(textConfirmed, nil)}
}
