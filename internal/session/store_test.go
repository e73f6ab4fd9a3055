package session

import (
	"fmt"
	"testing"
	"time"

	"piribot/internal/content"
	"piribot/pkg"
)

func TestDefaultLanguageOnFirstAccess(t *testing.T) {
	st := NewStore(content.QU)
	s := st.Get("user-1")
	if got := s.Language(); got != content.QU {
		t.Errorf("Language() = %q, want the store default %q", got, content.QU)
	}

	s.SetLanguage(content.SHP)
	if got := st.Get("user-1").Language(); got != content.SHP {
		t.Errorf("Language() after SetLanguage = %q, want shp", got)
	}
}

func TestGetIsStablePerUser(t *testing.T) {
	st := NewStore(content.ES)
	if st.Get("abc") != st.Get("abc") {
		t.Error("Get should return the same session for the same user ID")
	}
	if st.Get("abc") == st.Get("def") {
		t.Error("Get should return distinct sessions for distinct user IDs")
	}
	if st.Len() != 2 {
		t.Errorf("Len() = %d, want 2", st.Len())
	}
}

func TestHistoryCap(t *testing.T) {
	st := NewStore(content.ES)
	s := st.Get("u")

	// Six user+assistant pairs, 12 entries in total.
	for i := 0; i < 6; i++ {
		s.Append(
			pkg.Turn{Role: pkg.RoleUser, Text: fmt.Sprintf("q%d", i)},
			pkg.Turn{Role: pkg.RoleAssistant, Text: fmt.Sprintf("a%d", i)},
		)
	}

	hist := s.History()
	if len(hist) != HistoryCap {
		t.Fatalf("len(history) = %d, want %d", len(hist), HistoryCap)
	}
	// Oldest pair (q0/a0) must be gone, the rest in insertion order.
	if hist[0].Text != "q1" {
		t.Errorf("history[0] = %q, want q1", hist[0].Text)
	}
	if hist[len(hist)-1].Text != "a5" {
		t.Errorf("history[last] = %q, want a5", hist[len(hist)-1].Text)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	st := NewStore(content.ES)
	s := st.Get("u")
	s.Append(pkg.Turn{Role: pkg.RoleUser, Text: "hola"})

	hist := s.History()
	hist[0].Text = "mutated"
	if got := s.History()[0].Text; got != "hola" {
		t.Errorf("history was mutated through the returned slice: %q", got)
	}
}

func TestAlertShownIsMonotonic(t *testing.T) {
	st := NewStore(content.ES)
	s := st.Get("u")
	if s.AlertShown() {
		t.Fatal("new session should not have the alert flag set")
	}
	s.MarkAlertShown()
	s.MarkAlertShown()
	if !s.AlertShown() {
		t.Error("alert flag should stay set once marked")
	}
}

func TestAcquireSerializesSameSession(t *testing.T) {
	st := NewStore(content.ES)

	s, release := st.Acquire("u")
	acquired := make(chan struct{})
	go func() {
		s2, release2 := st.Acquire("u")
		if s2 != s {
			t.Error("Acquire returned a different session for the same user")
		}
		close(acquired)
		release2()
	}()

	select {
	case <-acquired:
		t.Fatal("second Acquire should block until the first is released")
	case <-time.After(20 * time.Millisecond):
	}

	release()
	<-acquired
}
