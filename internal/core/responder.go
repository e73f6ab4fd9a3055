package core

import (
	"context"
	"log"
	"strings"

	"piribot/internal/content"
	"piribot/internal/detect"
	"piribot/internal/llm"
	"piribot/internal/session"
	"piribot/pkg"
)

// ImageFallbackText substitutes for the message text when the user sends an
// image-like attachment with no caption.  The transport layer applies it
// before handing the message to the Responder.
const ImageFallbackText = "He enviado una imagen relacionada con un examen o evaluación médica " +
	"durante el embarazo. Quisiera una orientación general, sin diagnóstico."

// techDifficultyPreamble opens the synthesized reply when the backend call
// fails.  The full localized disclaimer is appended after it.
const techDifficultyPreamble = "En este momento tengo dificultades técnicas para responder con normalidad. " +
	"Aun así, quiero recordarte que tu salud es muy importante.\n\n"

// Responder ties the content tables, the risk detector, the session store
// and the generative backend together.  It owns all session state; nothing
// outside this package mutates a session.
type Responder struct {
	faq         content.FaqTable
	detector    *detect.Detector
	sessions    *session.Store
	llm         llm.Client
	defaultLang content.Language
}

// NewResponder constructs the orchestrator.
func NewResponder(faq content.FaqTable, detector *detect.Detector, sessions *session.Store, client llm.Client, defaultLang content.Language) *Responder {
	return &Responder{
		faq:         faq,
		detector:    detector,
		sessions:    sessions,
		llm:         client,
		defaultLang: defaultLang,
	}
}

// languageKeyboard builds the 3-option single-choice language selector.
func languageKeyboard() *pkg.Keyboard {
	return &pkg.Keyboard{
		Rows:            content.KeyboardLabels(),
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

// Start handles the /start command: the session language is reset to the
// process default and the user receives the welcome message, the language
// chooser and the full disclaimer.
func (r *Responder) Start(userID string) []pkg.Reply {
	sess, release := r.sessions.Acquire(userID)
	defer release()

	sess.SetLanguage(r.defaultLang)
	lang := sess.Language()

	kb := languageKeyboard()
	return []pkg.Reply{
		{Text: content.Text(lang, content.KeyWelcome), Keyboard: kb},
		{Text: content.Text(lang, content.KeyChooseLanguage), Keyboard: kb},
		{Text: content.Disclaimer(lang), Keyboard: kb},
	}
}

// Help handles the /help command with localized usage examples.
func (r *Responder) Help(userID string) []pkg.Reply {
	sess, release := r.sessions.Acquire(userID)
	defer release()

	return []pkg.Reply{{Text: content.Text(sess.Language(), content.KeyHelp)}}
}

// AskLanguage handles the /language command by re-showing the chooser.
func (r *Responder) AskLanguage(userID string) []pkg.Reply {
	sess, release := r.sessions.Acquire(userID)
	defer release()

	return []pkg.Reply{{
		Text:     content.Text(sess.Language(), content.KeyChooseLanguage),
		Keyboard: languageKeyboard(),
	}}
}

// Respond processes one inbound free-text message and returns the replies
// to deliver, in order.  The session's processing lock is held for the
// whole call, so messages from the same user never interleave while other
// users proceed in parallel.
func (r *Responder) Respond(ctx context.Context, userID, text string) []pkg.Reply {
	sess, release := r.sessions.Acquire(userID)
	defer release()

	// Keyboard press: an exact language-selector label sets the language
	// and terminates the turn without a backend call.
	if lang, ok := content.LanguageByLabel(text); ok {
		sess.SetLanguage(lang)
		return []pkg.Reply{{
			Text:           content.Text(lang, content.KeyLanguageSet),
			RemoveKeyboard: true,
		}}
	}

	lang := sess.Language()

	var replies []pkg.Reply
	riskFlag := false
	if warning, matched := r.detector.Detect(text, lang); matched && !sess.AlertShown() {
		// First detected risk in this session: one standalone warning,
		// never repeated afterwards.
		replies = append(replies, pkg.Reply{Text: warning})
		sess.MarkAlertShown()
		riskFlag = true
	}

	prompt := Compose(lang, riskFlag, r.faq.Examples(lang), sess.History(), text)

	answer, err := r.llm.Generate(ctx, prompt)
	if err != nil {
		log.Printf("generate response failed: %v", err)
		// No retry, no history update; the user gets a calm in-language
		// fallback instead of the raw error.
		replies = append(replies, pkg.Reply{Text: techDifficultyPreamble + content.Disclaimer(lang)})
		return replies
	}

	answer = appendShortDisclaimer(answer, lang)
	sess.Append(
		pkg.Turn{Role: pkg.RoleUser, Text: text},
		pkg.Turn{Role: pkg.RoleAssistant, Text: answer},
	)

	return append(replies, pkg.Reply{Text: answer})
}

// appendShortDisclaimer makes sure every generated answer ends with the
// short safety reminder exactly once.
func appendShortDisclaimer(answer string, lang content.Language) string {
	short := content.ShortDisclaimer(lang)
	if strings.Contains(answer, short) {
		return answer
	}
	return answer + "\n\n" + short
}
