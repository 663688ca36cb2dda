package registration

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRecorder struct {
	records []Record
	err     error
}

func (f *fakeRecorder) Create(_ context.Context, rec Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

type fakeNotifier struct {
	texts []string
	err   error
}

func (f *fakeNotifier) NotifyAdmin(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

type fixture struct {
	flow     *Flow
	store    Store
	recorder *fakeRecorder
	notifier *fakeNotifier
}

func newFixture() *fixture {
	store := NewMemoryStore()
	rec := &fakeRecorder{}
	not := &fakeNotifier{}
	return &fixture{
		flow:     NewFlow(store, rec, not),
		store:    store,
		recorder: rec,
		notifier: not,
	}
}

var alice = User{ID: 100, Username: "alice", FirstName: "Alice"}

func (fx *fixture) event(t *testing.T, payload string) []View {
	t.Helper()
	ev, err := ParseEvent(payload)
	if err != nil {
		t.Fatalf("ParseEvent(%q): %v", payload, err)
	}
	return fx.flow.HandleEvent(context.Background(), alice, ev)
}

func (fx *fixture) text(t *testing.T, text string) []View {
	t.Helper()
	return fx.flow.HandleText(context.Background(), alice, text)
}

func (fx *fixture) step() Step {
	return fx.store.Get(alice.ID).Step
}

// Walks the has-level path end to end and checks the durable record and the
// admin notification.
func TestFlowEnglishEndToEnd(t *testing.T) {
	fx := newFixture()

	if v := fx.flow.Start(alice.ID); v.Text != textWelcome {
		t.Fatalf("welcome text = %q", v.Text)
	}

	fx.event(t, "begin")
	if fx.step() != StepChooseCourse {
		t.Fatalf("step = %q, want choose_course", fx.step())
	}

	fx.event(t, "course:english")
	if fx.step() != StepChooseLevel {
		t.Fatalf("english must route through the level step, got %q", fx.step())
	}

	fx.event(t, "level:B1")
	if fx.step() != StepChooseSection {
		t.Fatalf("step = %q, want choose_section", fx.step())
	}

	views := fx.event(t, "section:ielts")
	if fx.step() != StepAskName {
		t.Fatalf("step = %q, want ask_name", fx.step())
	}
	if len(views) != 1 || views[0].Text != textAskName || views[0].Edit {
		t.Fatalf("ask_name must be sent as a new message: %+v", views)
	}

	fx.text(t, "John Smith")
	if fx.step() != StepAskAge {
		t.Fatalf("step = %q, want ask_age", fx.step())
	}
	fx.text(t, "25")
	if fx.step() != StepAskPhone {
		t.Fatalf("step = %q, want ask_phone", fx.step())
	}

	views = fx.text(t, "+998901112233")
	if fx.step() != StepReview {
		t.Fatalf("step = %q, want review", fx.step())
	}
	review := views[len(views)-1]
	for _, want := range []string{"John Smith", "25", "+998901112233", "B1 • Intermediate"} {
		if !strings.Contains(review.Text, want) {
			t.Errorf("review missing %q:\n%s", want, review.Text)
		}
	}

	views = fx.event(t, "confirm")
	if len(views) != 1 || views[0].Text != textConfirmed {
		t.Fatalf("confirm views = %+v", views)
	}
	if fx.step() != StepIdle {
		t.Errorf("session must be cleared after confirm, step = %q", fx.step())
	}

	if len(fx.recorder.records) != 1 {
		t.Fatalf("records = %d, want 1", len(fx.recorder.records))
	}
	rec := fx.recorder.records[0]
	if rec.TgUserID != alice.ID || rec.FullName != "John Smith" || rec.Age != 25 ||
		rec.Phone != "+998901112233" || rec.Level != "B1 • Intermediate" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(fx.notifier.texts) != 1 {
		t.Fatalf("admin notifications = %d, want 1", len(fx.notifier.texts))
	}
	if !strings.Contains(fx.notifier.texts[0], "@alice") {
		t.Errorf("admin text missing username:\n%s", fx.notifier.texts[0])
	}
}

// Courses without a level vocabulary go straight from course to section, and
// the stored record carries an empty level.
func TestFlowNoLevelCourseSkipsLevelStep(t *testing.T) {
	fx := newFixture()
	fx.event(t, "begin")
	fx.event(t, "course:math")
	if fx.step() != StepChooseSection {
		t.Fatalf("math must skip the level step, got %q", fx.step())
	}
	fx.event(t, "section:certificate")
	fx.text(t, "John Smith")
	fx.text(t, "30")
	views := fx.text(t, "+998901112233")
	if strings.Contains(views[0].Text, "Daraja") {
		t.Errorf("review for math must not show a level line:\n%s", views[0].Text)
	}

	fx.event(t, "confirm")
	if len(fx.recorder.records) != 1 {
		t.Fatalf("records = %d, want 1", len(fx.recorder.records))
	}
	if fx.recorder.records[0].Level != "" {
		t.Errorf("level = %q, want empty", fx.recorder.records[0].Level)
	}
}

// Invalid free-text inputs re-prompt without advancing the step.
func TestFlowRepromptsOnInvalidInput(t *testing.T) {
	fx := newFixture()
	fx.event(t, "begin")
	fx.event(t, "course:history")
	fx.event(t, "section:kids")

	if views := fx.text(t, "Ali"); views[0].Text != textBadName {
		t.Errorf("single-word name must re-prompt, got %q", views[0].Text)
	}
	if fx.step() != StepAskName {
		t.Fatalf("step advanced on invalid name: %q", fx.step())
	}
	fx.text(t, "Ali Valiyev")

	if views := fx.text(t, "101"); views[0].Text != textBadAge {
		t.Errorf("out-of-range age must re-prompt, got %q", views[0].Text)
	}
	if fx.step() != StepAskAge {
		t.Fatalf("step advanced on invalid age: %q", fx.step())
	}
	fx.text(t, "17")

	if views := fx.text(t, "12345"); views[0].Text != textBadPhone {
		t.Errorf("bad phone must re-prompt, got %q", views[0].Text)
	}
	if fx.step() != StepAskPhone {
		t.Fatalf("step advanced on invalid phone: %q", fx.step())
	}
}

// Stale callback keys (section not in the active course's vocabulary, unknown
// course or level) are rejected without advancing.
func TestFlowRejectsStaleKeys(t *testing.T) {
	fx := newFixture()
	fx.event(t, "begin")

	if views := fx.event(t, "course:physics"); views[0].Text != textBadCourse {
		t.Errorf("unknown course: got %q", views[0].Text)
	}
	if fx.step() != StepChooseCourse {
		t.Fatalf("step = %q after unknown course", fx.step())
	}

	fx.event(t, "course:math")
	// ielts belongs to the has-level vocabulary only.
	if views := fx.event(t, "section:ielts"); views[0].Text != textBadSection {
		t.Errorf("foreign section: got %q", views[0].Text)
	}
	if fx.step() != StepChooseSection {
		t.Fatalf("step = %q after foreign section", fx.step())
	}

	fx.event(t, "back:courses")
	fx.event(t, "course:english")
	if views := fx.event(t, "level:Z9"); views[0].Text != textBadLevel {
		t.Errorf("unknown level: got %q", views[0].Text)
	}
	if fx.step() != StepChooseLevel {
		t.Fatalf("step = %q after unknown level", fx.step())
	}
}

// Back navigation clears the selections made after the target step.
func TestFlowBackNavigation(t *testing.T) {
	fx := newFixture()
	fx.event(t, "begin")
	fx.event(t, "course:german")
	fx.event(t, "level:A2")

	fx.event(t, "back:levels")
	sess := fx.store.Get(alice.ID)
	if sess.Step != StepChooseLevel || sess.SectionKey != "" {
		t.Fatalf("back:levels left session %+v", sess)
	}
	if sess.LevelKey != "A2" {
		t.Errorf("back:levels must keep the level selection, got %q", sess.LevelKey)
	}

	fx.event(t, "back:courses")
	sess = fx.store.Get(alice.ID)
	if sess.Step != StepChooseCourse || sess.LevelKey != "" || sess.SectionKey != "" {
		t.Fatalf("back:courses must clear level and section: %+v", sess)
	}
	if sess.CourseKey != "german" {
		t.Errorf("back:courses must keep the course selection, got %q", sess.CourseKey)
	}
}

// From review, editing age re-enters the ask chain at ask_age; the retained
// name and phone survive, and the phone is re-asked before review.
func TestFlowEditAgeReentersAskChain(t *testing.T) {
	fx := completeToReview(t)

	fx.event(t, "edit")
	if fx.step() != StepEditMenu {
		t.Fatalf("step = %q, want edit_menu", fx.step())
	}

	views := fx.event(t, "edit:age")
	if fx.step() != StepAskAge {
		t.Fatalf("step = %q, want ask_age", fx.step())
	}
	if views[0].Text != textEditAge {
		t.Errorf("edit prompt = %q", views[0].Text)
	}

	fx.text(t, "17")
	if fx.step() != StepAskPhone {
		t.Fatalf("editing age must re-ask the phone, step = %q", fx.step())
	}
	views = fx.text(t, "+998909998877")
	if fx.step() != StepReview {
		t.Fatalf("step = %q, want review", fx.step())
	}
	review := views[len(views)-1].Text
	for _, want := range []string{"John Smith", "17", "+998909998877"} {
		if !strings.Contains(review, want) {
			t.Errorf("review missing %q:\n%s", want, review)
		}
	}
}

// Editing the course from review drops level and section and reruns the
// choose chain.
func TestFlowEditCourse(t *testing.T) {
	fx := completeToReview(t)

	fx.event(t, "edit")
	fx.event(t, "edit:course")
	if fx.step() != StepChooseCourse {
		t.Fatalf("step = %q, want choose_course", fx.step())
	}

	fx.event(t, "course:history")
	if fx.step() != StepChooseSection {
		t.Fatalf("history must skip levels, step = %q", fx.step())
	}
	sess := fx.store.Get(alice.ID)
	if sess.LevelKey != "" || sess.SectionKey != "" {
		t.Fatalf("changing course must drop level and section: %+v", sess)
	}
	if sess.FullName != "John Smith" {
		t.Errorf("name must survive a course edit, got %q", sess.FullName)
	}

	views := fx.event(t, "section:general")
	if views[0].Text != textAskName {
		// Text fields survive, but the flow still walks the ask chain.
		t.Errorf("after re-selecting section got %q", views[0].Text)
	}
}

// The edit menu's back button returns to review with everything intact.
func TestFlowBackToReview(t *testing.T) {
	fx := completeToReview(t)
	fx.event(t, "edit")
	views := fx.event(t, "back:review")
	if fx.step() != StepReview {
		t.Fatalf("step = %q, want review", fx.step())
	}
	if !views[0].Edit {
		t.Error("returning to review must edit the message in place")
	}
	if !strings.Contains(views[0].Text, "John Smith") {
		t.Errorf("review lost data:\n%s", views[0].Text)
	}
}

// Cancel resets the session from any step and is idempotent.
func TestFlowCancel(t *testing.T) {
	fx := completeToReview(t)

	views := fx.event(t, "cancel")
	if views[0].Text != textCancelledButton {
		t.Errorf("cancel text = %q", views[0].Text)
	}
	if fx.step() != StepIdle {
		t.Fatalf("cancel must reset the session, step = %q", fx.step())
	}
	// Second cancel on an idle session behaves the same.
	if views := fx.event(t, "cancel"); views[0].Text != textCancelledButton {
		t.Errorf("repeated cancel text = %q", views[0].Text)
	}
	if len(fx.recorder.records) != 0 {
		t.Errorf("cancel must not persist anything, records = %d", len(fx.recorder.records))
	}
}

func TestFlowCancelCommand(t *testing.T) {
	fx := completeToReview(t)
	v := fx.flow.CancelCommand(alice.ID)
	if v.Text != textCancelledCommand {
		t.Errorf("cancel command text = %q", v.Text)
	}
	if fx.flow.InProgress(alice.ID) {
		t.Error("session must be idle after /cancel")
	}
}

// A storage failure keeps the session so the user can confirm again.
func TestFlowConfirmStorageFailure(t *testing.T) {
	fx := completeToReview(t)
	fx.recorder.err = errors.New("db down")

	views := fx.event(t, "confirm")
	if views[0].Text != textStorageErr {
		t.Errorf("storage failure text = %q", views[0].Text)
	}
	if fx.step() != StepReview {
		t.Fatalf("session must survive a storage failure, step = %q", fx.step())
	}
	if len(fx.notifier.texts) != 0 {
		t.Error("admin must not be notified on storage failure")
	}

	// Retry succeeds once storage recovers.
	fx.recorder.err = nil
	views = fx.event(t, "confirm")
	if views[0].Text != textConfirmed {
		t.Fatalf("retry text = %q", views[0].Text)
	}
	if len(fx.recorder.records) != 1 {
		t.Errorf("records = %d, want 1", len(fx.recorder.records))
	}
}

// Notification failure does not affect the user-visible outcome.
func TestFlowConfirmNotifyFailure(t *testing.T) {
	fx := completeToReview(t)
	fx.notifier.err = errors.New("admin unreachable")

	views := fx.event(t, "confirm")
	if views[0].Text != textConfirmed {
		t.Errorf("confirm text = %q", views[0].Text)
	}
	if len(fx.recorder.records) != 1 {
		t.Errorf("records = %d, want 1", len(fx.recorder.records))
	}
	if fx.step() != StepIdle {
		t.Errorf("session must be cleared, step = %q", fx.step())
	}
}

// Confirming an incomplete session resets it instead of persisting garbage.
func TestFlowConfirmIncompleteSession(t *testing.T) {
	fx := newFixture()
	fx.store.Save(alice.ID, &Session{Step: StepReview, CourseKey: "english", CourseLabel: "x"})

	views := fx.event(t, "confirm")
	if views[0].Text != textIncomplete {
		t.Errorf("incomplete confirm text = %q", views[0].Text)
	}
	if fx.step() != StepIdle {
		t.Errorf("incomplete session must be cleared, step = %q", fx.step())
	}
	if len(fx.recorder.records) != 0 {
		t.Error("incomplete session must not be persisted")
	}
}

// A shared contact is accepted only while the phone is being asked.
func TestFlowContact(t *testing.T) {
	fx := newFixture()
	fx.event(t, "begin")

	if views := fx.flow.HandleContact(context.Background(), alice, "998901112233"); views != nil {
		t.Fatalf("contact outside ask_phone must be ignored, got %+v", views)
	}

	fx.event(t, "course:biology")
	fx.event(t, "section:kids")
	fx.text(t, "Ali Valiyev")
	fx.text(t, "12")

	views := fx.flow.HandleContact(context.Background(), alice, "998901112233")
	if len(views) != 2 {
		t.Fatalf("contact views = %d, want ack + review", len(views))
	}
	if views[0].Text != textContactTaken {
		t.Errorf("ack text = %q", views[0].Text)
	}
	if fx.step() != StepReview {
		t.Fatalf("step = %q, want review", fx.step())
	}
	if got := fx.store.Get(alice.ID).Phone; got != "+998901112233" {
		t.Errorf("phone = %q, want normalized +998901112233", got)
	}
}

func TestFlowContactBadNumber(t *testing.T) {
	fx := newFixture()
	fx.store.Save(alice.ID, &Session{Step: StepAskPhone})

	views := fx.flow.HandleContact(context.Background(), alice, "12345")
	if len(views) != 1 || views[0].Text != textBadContact {
		t.Fatalf("bad contact views = %+v", views)
	}
	if fx.step() != StepAskPhone {
		t.Errorf("step = %q, want ask_phone", fx.step())
	}
}

// Free text on an idle or choose step yields the usage hint.
func TestFlowTextHint(t *testing.T) {
	fx := newFixture()
	if views := fx.text(t, "hello"); views[0].Text != textHint {
		t.Errorf("idle text reply = %q", views[0].Text)
	}
	fx.event(t, "begin")
	if views := fx.text(t, "hello"); views[0].Text != textHint {
		t.Errorf("choose_course text reply = %q", views[0].Text)
	}
}

// Start resets any in-flight progress.
func TestFlowStartResets(t *testing.T) {
	fx := completeToReview(t)
	fx.flow.Start(alice.ID)
	if fx.flow.InProgress(alice.ID) {
		t.Error("start must reset the session")
	}
}

// completeToReview drives a fixture through the english path up to review.
func completeToReview(t *testing.T) *fixture {
	t.Helper()
	fx := newFixture()
	fx.event(t, "begin")
	fx.event(t, "course:english")
	fx.event(t, "level:B1")
	fx.event(t, "section:ielts")
	fx.text(t, "John Smith")
	fx.text(t, "25")
	fx.text(t, "+998901112233")
	if fx.step() != StepReview {
		t.Fatalf("setup failed, step = %q", fx.step())
	}
	return fx
}
