// Package session keeps the per-user conversation state: selected language,
// rolling history, and the one-shot alert flag.  Sessions live for the
// process lifetime only; nothing is persisted across restarts.
package session

import (
	"sync"

	"github.com/google/uuid"

	"piribot/internal/content"
	"piribot/pkg"
)

// HistoryCap is the maximum number of turns kept per session (five
// user/assistant pairs).  Older turns are silently dropped.
const HistoryCap = 10

// Session is the mutable record for a single end user.  Field access is
// internally synchronized; additionally the owning Store hands out a
// processing lock so a whole inbound message can be handled without another
// message for the same user interleaving.
type Session struct {
	mu   sync.Mutex // guards the fields below
	proc sync.Mutex // serializes whole-message processing

	language   content.Language
	history    []pkg.Turn
	alertShown bool
}

// Language returns the session's selected language.
func (s *Session) Language() content.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage records an explicit language choice.
func (s *Session) SetLanguage(lang content.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// Append adds turns to the history, enforcing HistoryCap by dropping the
// oldest entries.
func (s *Session) Append(turns ...pkg.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turns...)
	if n := len(s.history); n > HistoryCap {
		s.history = append(s.history[:0:0], s.history[n-HistoryCap:]...)
	}
}

// History returns a copy of the current history, oldest first.
func (s *Session) History() []pkg.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pkg.Turn, len(s.history))
	copy(out, s.history)
	return out
}

// MarkAlertShown sets the one-shot alert flag.  Idempotent; once true it
// stays true for the life of the session.
func (s *Session) MarkAlertShown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertShown = true
}

// AlertShown reports whether the standalone safety alert has already been
// sent in this session.
func (s *Session) AlertShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alertShown
}

// Store owns all sessions, keyed by a canonical UUID derived from the
// transport-provided user identifier.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	defaultLang content.Language
}

// NewStore creates an empty in-memory session store.  New sessions start
// with defaultLang until the user explicitly picks a language.
func NewStore(defaultLang content.Language) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		defaultLang: defaultLang,
	}
}

// canonicalID maps an arbitrary transport user identifier to a stable UUID
// string.  Identifiers that already are UUIDs pass through unchanged.
func canonicalID(userID string) string {
	if parsed, err := uuid.Parse(userID); err == nil {
		return parsed.String()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(userID)).String()
}

// Get returns the session for a user, creating it on first contact.
func (st *Store) Get(userID string) *Session {
	id := canonicalID(userID)

	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		s = &Session{language: st.defaultLang}
		st.sessions[id] = s
	}
	return s
}

// Acquire returns the session for a user with its processing lock held.
// The caller must call release when it is done with the inbound message.
// Messages for different users proceed in parallel; messages for the same
// user are handled strictly one at a time, which keeps the reply to message
// N computed from exactly the history present before N and appended before
// N+1 starts.
func (st *Store) Acquire(userID string) (s *Session, release func()) {
	s = st.Get(userID)
	s.proc.Lock()
	return s, s.proc.Unlock
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
