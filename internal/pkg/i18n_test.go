package pkg

import (
	"strings"
	"testing"
	"time"
)

func TestT(t *testing.T) {
	if got := T("es", "community.memberCount", map[string]string{"count": "7"}); got != "7 miembros" {
		t.Errorf("es interpolation = %q", got)
	}
	if got := T("fr", "community.memberCount", map[string]string{"count": "7"}); got != "7 membres" {
		t.Errorf("fr interpolation = %q", got)
	}

	// Unknown languages read the Spanish table.
	if got := T("de", "errors.generic", nil); got != T("es", "errors.generic", nil) {
		t.Errorf("unknown lang = %q, want Spanish fallback", got)
	}

	// Unknown keys come back verbatim so the caller can spot them.
	if got := T("es", "no.such.key", nil); got != "no.such.key" {
		t.Errorf("unknown key = %q", got)
	}
}

func TestEmailCodeHTML(t *testing.T) {
	es := EmailCodeHTML("es", "123456", 5*time.Minute)
	if !strings.Contains(es, "123456") || !strings.Contains(es, "Hola") {
		t.Errorf("es body missing code or greeting: %q", es)
	}
	fr := EmailCodeHTML("fr", "654321", 5*time.Minute)
	if !strings.Contains(fr, "654321") || !strings.Contains(fr, "Bonjour") {
		t.Errorf("fr body missing code or greeting: %q", fr)
	}
}
