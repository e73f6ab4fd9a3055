package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"piribot/internal/content"
	"piribot/internal/detect"
	"piribot/internal/session"
	"piribot/pkg"
)

// fakeClient records the prompts it receives and plays back scripted
// replies or errors.
type fakeClient struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeClient) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestResponder(t *testing.T, client *fakeClient) (*Responder, *session.Store) {
	t.Helper()
	faq := content.FaqTable{
		content.ES: {{Question: "¿náuseas?", Answer: "es común en el primer trimestre"}},
	}
	alerts := content.AlertTable{
		content.ES: {Keywords: []string{"sangrado", "fiebre"}, Message: "acude de inmediato a un centro de salud"},
	}
	sessions := session.NewStore(content.ES)
	return NewResponder(faq, detect.New(alerts), sessions, client, content.ES), sessions
}

func TestLanguageSelectionTurn(t *testing.T) {
	client := &fakeClient{reply: "respuesta"}
	r, sessions := newTestResponder(t, client)

	replies := r.Respond(context.Background(), "u1", "Quechua")

	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	if replies[0].Text != content.Text(content.QU, content.KeyLanguageSet) {
		t.Errorf("confirmation = %q, want the Quechua confirmation", replies[0].Text)
	}
	if !replies[0].RemoveKeyboard {
		t.Error("language confirmation should remove the keyboard")
	}
	if len(client.prompts) != 0 {
		t.Error("language selection must not invoke the backend")
	}
	if got := sessions.Get("u1").Language(); got != content.QU {
		t.Errorf("session language = %q, want qu", got)
	}
}

func TestAlertGating(t *testing.T) {
	client := &fakeClient{reply: "respuesta del modelo"}
	r, sessions := newTestResponder(t, client)
	ctx := context.Background()

	// First risky message: standalone warning plus generated answer.
	replies := r.Respond(ctx, "u1", "Tengo sangrado fuerte")
	if len(replies) != 2 {
		t.Fatalf("first risky message: got %d replies, want 2", len(replies))
	}
	if replies[0].Text != "acude de inmediato a un centro de salud" {
		t.Errorf("standalone warning = %q", replies[0].Text)
	}
	if !sessions.Get("u1").AlertShown() {
		t.Error("alert flag should be set after the first warning")
	}
	if !strings.Contains(client.prompts[0], "Contexto adicional") {
		t.Error("first prompt should carry the risk reinforcement block")
	}
	if got := len(sessions.Get("u1").History()); got != 2 {
		t.Errorf("history grew by %d entries, want 2", got)
	}

	// Same risky message again: no second standalone warning, riskFlag off.
	replies = r.Respond(ctx, "u1", "Tengo sangrado fuerte")
	if len(replies) != 1 {
		t.Fatalf("second risky message: got %d replies, want 1", len(replies))
	}
	if strings.Contains(client.prompts[1], "Contexto adicional") {
		t.Error("second prompt should not carry the risk block")
	}
}

func TestShortDisclaimerAppendedOnce(t *testing.T) {
	short := content.ShortDisclaimer(content.ES)

	t.Run("appended when absent", func(t *testing.T) {
		client := &fakeClient{reply: "todo se ve bien"}
		r, _ := newTestResponder(t, client)
		replies := r.Respond(context.Background(), "u1", "hola")
		if got, want := replies[0].Text, "todo se ve bien\n\n"+short; got != want {
			t.Errorf("reply = %q, want %q", got, want)
		}
	})

	t.Run("not duplicated when present", func(t *testing.T) {
		client := &fakeClient{reply: "todo se ve bien\n\n" + short}
		r, _ := newTestResponder(t, client)
		replies := r.Respond(context.Background(), "u1", "hola")
		if n := strings.Count(replies[0].Text, short); n != 1 {
			t.Errorf("short disclaimer appears %d times, want 1", n)
		}
	})
}

func TestStoredHistoryCarriesDisclaimer(t *testing.T) {
	client := &fakeClient{reply: "respuesta"}
	r, sessions := newTestResponder(t, client)
	r.Respond(context.Background(), "u1", "hola")

	hist := sessions.Get("u1").History()
	if len(hist) != 2 {
		t.Fatalf("history has %d entries, want 2", len(hist))
	}
	if hist[0].Role != pkg.RoleUser || hist[0].Text != "hola" {
		t.Errorf("user turn = %+v", hist[0])
	}
	if !strings.Contains(hist[1].Text, content.ShortDisclaimer(content.ES)) {
		t.Error("stored assistant turn should be the post-disclaimer text")
	}
}

func TestBackendFailureFallback(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	r, sessions := newTestResponder(t, client)

	replies := r.Respond(context.Background(), "u1", "hola")

	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	want := techDifficultyPreamble + content.Disclaimer(content.ES)
	if replies[0].Text != want {
		t.Errorf("fallback reply = %q, want preamble + full disclaimer", replies[0].Text)
	}
	if got := len(sessions.Get("u1").History()); got != 0 {
		t.Errorf("history must not be updated on failure, has %d entries", got)
	}
}

func TestBackendFailureStillEmitsWarning(t *testing.T) {
	client := &fakeClient{err: errors.New("timeout")}
	r, _ := newTestResponder(t, client)

	replies := r.Respond(context.Background(), "u1", "tengo fiebre")
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want warning + fallback", len(replies))
	}
	if replies[0].Text != "acude de inmediato a un centro de salud" {
		t.Errorf("first reply = %q, want the standalone warning", replies[0].Text)
	}
}

func TestStartFlow(t *testing.T) {
	client := &fakeClient{}
	r, sessions := newTestResponder(t, client)
	sessions.Get("u1").SetLanguage(content.SHP)

	replies := r.Start("u1")

	if len(replies) != 3 {
		t.Fatalf("got %d replies, want welcome + chooser + disclaimer", len(replies))
	}
	for i, reply := range replies {
		if reply.Keyboard == nil {
			t.Errorf("reply %d should carry the language keyboard", i)
			continue
		}
		if len(reply.Keyboard.Rows) != 3 {
			t.Errorf("keyboard has %d rows, want 3", len(reply.Keyboard.Rows))
		}
	}
	if got := sessions.Get("u1").Language(); got != content.ES {
		t.Errorf("start should reset the language to the default, got %q", got)
	}
	if replies[2].Text != content.Disclaimer(content.ES) {
		t.Error("third reply should be the full disclaimer")
	}
}

func TestHelpUsesSessionLanguage(t *testing.T) {
	client := &fakeClient{}
	r, sessions := newTestResponder(t, client)
	sessions.Get("u1").SetLanguage(content.QU)

	replies := r.Help("u1")
	if len(replies) != 1 || replies[0].Text != content.Text(content.QU, content.KeyHelp) {
		t.Errorf("help reply = %+v, want the Quechua help text", replies)
	}
}

func TestFaqExamplesReachPrompt(t *testing.T) {
	client := &fakeClient{reply: "respuesta"}
	r, _ := newTestResponder(t, client)

	r.Respond(context.Background(), "u1", "hola")
	if !strings.Contains(client.prompts[0], "¿náuseas?") {
		t.Error("prompt should embed the FAQ examples")
	}
}
