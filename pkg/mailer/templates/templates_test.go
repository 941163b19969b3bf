package templates_test

import (
	"strings"
	"testing"

	"github.com/yudhapratama/userhub/pkg/mailer"
	"github.com/yudhapratama/userhub/pkg/mailer/templates"
)

func TestRender_Welcome(t *testing.T) {
	subject, text, html := templates.Render(mailer.EmailJob{
		To:       "a@x.com",
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"username": "alice"},
	})
	if subject == "" {
		t.Fatal("expected a subject")
	}
	if !strings.Contains(text, "alice") || !strings.Contains(html, "alice") {
		t.Fatal("welcome bodies must mention the username")
	}
}

func TestRender_PassthroughWithoutTemplate(t *testing.T) {
	subject, text, html := templates.Render(mailer.EmailJob{
		To:      "a@x.com",
		Subject: "hi",
		Text:    "plain",
		HTML:    "<b>rich</b>",
	})
	if subject != "hi" || text != "plain" || html != "<b>rich</b>" {
		t.Fatalf("explicit fields must pass through, got %q %q %q", subject, text, html)
	}
}
