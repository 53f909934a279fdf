package shell

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/onboarding"
	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/scrollnav"
	"github.com/ziadkadry99/siteshell/internal/submission"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSender returns err for every call and records payloads.
type fakeSender struct {
	mu  sync.Mutex
	got []relay.MessagePayload
	err error
}

func (f *fakeSender) Send(_ context.Context, p relay.MessagePayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, p)
	return f.err
}

func (f *fakeSender) Payloads() []relay.MessagePayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]relay.MessagePayload(nil), f.got...)
}

func newTestShell(t *testing.T, sender relay.Sender, seen bool) *Shell {
	t.Helper()
	s, err := New(Options{
		Sender:          sender,
		Flags:           onboarding.NewMemoryStore(seen),
		Logger:          zap.NewNop(),
		StartPath:       "/a",
		OnboardingDelay: 20 * time.Millisecond,
		ChatResetDelay:  30 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Mount(context.Background()); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	t.Cleanup(func() {
		s.Unmount()
		s.Wait()
	})
	return s
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}

func fillChat(w *ChatWidget) {
	w.Edit(submission.FieldFirstName, "Jo")
	w.Edit(submission.FieldLastName, "Doe")
	w.Edit(submission.FieldEmail, "jo@x.com")
	w.Edit(submission.FieldMessage, "hi")
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(Options{Flags: onboarding.NewMemoryStore(false)}); err == nil {
		t.Error("expected error without sender")
	}
	if _, err := New(Options{Sender: &fakeSender{}}); err == nil {
		t.Error("expected error without flag store")
	}
}

func TestNavigationResetsOnlyScrollAndMenu(t *testing.T) {
	sender := &fakeSender{err: errors.New("down")}
	s := newTestShell(t, sender, true)

	s.Viewport.ScrollTo(0, 450)
	s.Menu.Open()
	s.Onboarding.OpenModal()
	s.Contact.Edit(submission.FieldFirstName, "Jo")
	s.Contact.Edit(submission.FieldLastName, "Doe")
	s.Contact.Edit(submission.FieldEmail, "jo@x.com")
	s.Contact.Edit(submission.FieldSubject, "Hello")
	s.Contact.Edit(submission.FieldMessage, "hi")
	s.Contact.Submit()
	s.Wait()
	before := s.Contact.Controller().State()

	if !s.Navigate("/b") {
		t.Fatal("navigation should change the path")
	}

	if _, y := s.Viewport.Position(); y != 0 {
		t.Errorf("scroll y = %v, want 0", y)
	}
	if s.Scroll.Mode() != scrollnav.Expanded {
		t.Errorf("mode = %s, want expanded at the top", s.Scroll.Mode())
	}
	if s.Menu.IsOpen() {
		t.Error("mobile menu should close on navigation")
	}
	if !s.Onboarding.IsOpen() {
		t.Error("navigation must not close the onboarding modal")
	}
	if got := s.Contact.Controller().State(); got != before {
		t.Errorf("submission state changed on navigation: %s -> %s", before, got)
	}
}

func TestScrollSwapsLayout(t *testing.T) {
	s := newTestShell(t, &fakeSender{}, true)

	if s.Layout().Mode != scrollnav.Expanded {
		t.Fatal("should start expanded")
	}
	s.Viewport.ScrollBy(101)
	compact := s.Layout()
	if compact.Mode != scrollnav.Compact || !compact.Pill {
		t.Errorf("expected compact pill layout, got %+v", compact)
	}
	if diff := cmp.Diff(s.Routes(), compact.Routes); diff != "" {
		t.Errorf("compact routes differ (-want +got):\n%s", diff)
	}

	compact.Info()
	if !s.Onboarding.IsOpen() {
		t.Error("info action should open the onboarding modal")
	}

	s.Viewport.ScrollBy(-1)
	if s.Layout().Mode != scrollnav.Expanded {
		t.Error("offset 100 should be expanded")
	}
}

func TestViewportClamps(t *testing.T) {
	s := newTestShell(t, &fakeSender{}, true)
	s.Viewport.SetContentHeight(500)

	s.Viewport.ScrollBy(-40)
	if _, y := s.Viewport.Position(); y != 0 {
		t.Errorf("y = %v, want 0", y)
	}
	s.Viewport.ScrollTo(0, 900)
	if _, y := s.Viewport.Position(); y != 500 {
		t.Errorf("y = %v, want 500", y)
	}
}

func TestOnboardingAutoOpensForNewVisitor(t *testing.T) {
	s := newTestShell(t, &fakeSender{}, false)

	eventually(t, s.Onboarding.IsOpen, "onboarding modal did not open")
	s.Onboarding.CloseModal()
	if s.Onboarding.IsOpen() {
		t.Error("modal should close")
	}
}

func TestLearnMoreClosesModalAndNavigates(t *testing.T) {
	s := newTestShell(t, &fakeSender{}, true)
	s.Menu.Open()
	s.Onboarding.OpenModal()

	s.LearnMore()

	if s.Onboarding.IsOpen() {
		t.Error("modal should close on learn more")
	}
	if s.Navigator.Current() != DefaultDetailPath {
		t.Errorf("path = %q, want %q", s.Navigator.Current(), DefaultDetailPath)
	}
	if s.Menu.IsOpen() {
		t.Error("menu should close on navigation")
	}
}

func TestChatScenario(t *testing.T) {
	sender := &fakeSender{}
	s := newTestShell(t, sender, true)

	var states []submission.State
	var mu sync.Mutex
	s.Chat.Controller().Subscribe(func(st submission.State) {
		mu.Lock()
		states = append(states, st)
		mu.Unlock()
	})

	s.Chat.Open()
	fillChat(s.Chat)
	if !s.Chat.Send() {
		t.Fatal("Send should start")
	}
	s.Wait()

	if s.Chat.Controller().State() != submission.Success {
		t.Fatalf("state = %s, want success", s.Chat.Controller().State())
	}
	if !s.Chat.IsOpen() {
		t.Fatal("popover should stay open while showing the acknowledgement")
	}

	eventually(t, func() bool { return !s.Chat.IsOpen() }, "chat widget did not auto-close")
	if s.Chat.Controller().State() != submission.Idle {
		t.Errorf("state = %s, want idle", s.Chat.Controller().State())
	}

	got := sender.Payloads()
	want := []relay.MessagePayload{{
		FirstName: "Jo", LastName: "Doe", Email: "jo@x.com",
		Subject: ChatSubject, Message: "hi",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("relayed payloads (-want +got):\n%s", diff)
	}

	mu.Lock()
	defer mu.Unlock()
	wantStates := []submission.State{submission.Submitting, submission.Success, submission.Idle}
	if diff := cmp.Diff(wantStates, states); diff != "" {
		t.Errorf("transitions (-want +got):\n%s", diff)
	}
}

func TestChatRequiresFields(t *testing.T) {
	sender := &fakeSender{}
	s := newTestShell(t, sender, true)
	s.Chat.Open()
	s.Chat.Edit(submission.FieldFirstName, "Jo")

	if s.Chat.Send() {
		t.Error("Send should refuse incomplete input")
	}
	want := []submission.Field{submission.FieldLastName, submission.FieldEmail, submission.FieldMessage}
	if diff := cmp.Diff(want, s.Chat.Missing()); diff != "" {
		t.Errorf("missing (-want +got):\n%s", diff)
	}
	if len(sender.Payloads()) != 0 {
		t.Error("nothing should be relayed")
	}
}

func TestChatCloseResetsError(t *testing.T) {
	s := newTestShell(t, &fakeSender{err: errors.New("down")}, true)

	s.Chat.Open()
	fillChat(s.Chat)
	s.Chat.Send()
	s.Wait()
	if s.Chat.Controller().State().Kind != submission.KindError {
		t.Fatalf("state = %s, want error", s.Chat.Controller().State())
	}

	s.Chat.Toggle()
	if s.Chat.IsOpen() {
		t.Fatal("toggle should close the popover")
	}
	if s.Chat.Controller().State() != submission.Idle {
		t.Errorf("state = %s, want idle after close", s.Chat.Controller().State())
	}
	if s.Chat.Controller().Payload().Message != "hi" {
		t.Error("fields should survive closing after an error")
	}

	s.Chat.Toggle()
	if s.Chat.Controller().State() != submission.Idle {
		t.Error("reopened popover should not show a stale outcome")
	}
}

func TestChatOutsideClick(t *testing.T) {
	s := newTestShell(t, &fakeSender{}, true)

	s.Chat.OutsideClick()
	if s.Chat.IsOpen() {
		t.Fatal("closed widget should stay closed")
	}

	s.Chat.Open()
	if !s.Chat.Listening() {
		t.Fatal("opening should register the outside-click listener")
	}
	s.Chat.OutsideClick()
	if s.Chat.IsOpen() || s.Chat.Listening() {
		t.Error("outside click should close the widget and drop the listener")
	}
}

func TestNavigationKeepsChatOpen(t *testing.T) {
	s := newTestShell(t, &fakeSender{}, true)
	s.Chat.Open()
	s.Navigate("/b")
	if !s.Chat.IsOpen() {
		t.Error("navigation only closes the mobile menu")
	}
}

func TestContactFormConfirmation(t *testing.T) {
	sender := &fakeSender{}
	s := newTestShell(t, sender, true)
	f := s.Contact

	f.Edit(submission.FieldFirstName, "Jo")
	f.Edit(submission.FieldLastName, "Doe")
	f.Edit(submission.FieldEmail, "jo@x.com")
	f.Edit(submission.FieldSubject, "Quote")
	if f.Submit() {
		t.Fatal("Submit should refuse a missing message")
	}
	f.Edit(submission.FieldMessage, "Need a site")

	if !f.Submit() {
		t.Fatal("Submit should start")
	}
	s.Wait()

	if !f.ConfirmationOpen() {
		t.Error("confirmation overlay should be showing")
	}
	if f.Controller().State() != submission.Idle {
		t.Errorf("state = %s, want idle", f.Controller().State())
	}
	if f.Controller().Payload() != (relay.MessagePayload{}) {
		t.Error("fields should be cleared after success")
	}
	if got := sender.Payloads(); len(got) != 1 || got[0].Phone != "" {
		t.Errorf("relayed %+v", got)
	}

	f.DismissConfirmation()
	if f.ConfirmationOpen() {
		t.Error("confirmation should be dismissed")
	}
}

func TestUnmountCancelsTimers(t *testing.T) {
	s, err := New(Options{
		Sender:          &fakeSender{},
		Flags:           onboarding.NewMemoryStore(false),
		OnboardingDelay: 20 * time.Millisecond,
		ChatResetDelay:  time.Hour,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Mount(context.Background())

	s.Chat.Open()
	fillChat(s.Chat)
	s.Chat.Send()
	s.Wait()

	s.Unmount()
	s.Unmount()

	time.Sleep(60 * time.Millisecond)
	if s.Onboarding.IsOpen() {
		t.Error("auto-open fired after unmount")
	}
	if s.Onboarding.AutoOpenPending() {
		t.Error("auto-open still pending after unmount")
	}
	if s.Chat.Listening() {
		t.Error("outside-click listener still registered after unmount")
	}
}

func TestRemountKeepsFormsUsable(t *testing.T) {
	sender := &fakeSender{}
	s := newTestShell(t, sender, true)

	s.Chat.Open()
	s.Contact.showConfirmation()
	s.Unmount()
	if s.Contact.ConfirmationOpen() {
		t.Error("confirmation overlay should be hidden by unmount")
	}
	if err := s.Mount(context.Background()); err != nil {
		t.Fatalf("remount: %v", err)
	}

	s.Chat.Open()
	fillChat(s.Chat)
	if !s.Chat.Send() {
		t.Fatal("chat should send after remount")
	}

	f := s.Contact
	f.Edit(submission.FieldFirstName, "Jo")
	f.Edit(submission.FieldLastName, "Doe")
	f.Edit(submission.FieldEmail, "jo@x.com")
	f.Edit(submission.FieldSubject, "Quote")
	f.Edit(submission.FieldMessage, "Need a site")
	if !f.Submit() {
		t.Fatal("contact form should submit after remount")
	}
	s.Wait()

	if got := len(sender.Payloads()); got != 2 {
		t.Errorf("relayed %d messages after remount, want 2", got)
	}
	if s.Chat.Controller().Payload() != (relay.MessagePayload{}) {
		t.Error("chat fields should be cleared after the remounted send")
	}
	if !f.ConfirmationOpen() {
		t.Error("contact confirmation should show after remount")
	}
}
