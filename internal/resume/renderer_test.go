package resume

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, Data{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Education:  "Mathematics\nSelf-taught programming",
		Experience: "Analytical Engine, 1843",
		Skills:     []string{"python", "sql"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Ada Lovelace",
		"ada@example.com",
		"Mathematics<br>Self-taught programming",
		"python, sql",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered resume missing %q", want)
		}
	}
	if strings.Contains(html, "portfolio qr code") {
		t.Error("qr code rendered without a portfolio url")
	}
}

func TestRenderWithPortfolioQR(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, Data{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		PortfolioURL: "https://example.com/ada",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "data:image/png;base64,") {
		t.Error("expected embedded qr code data uri")
	}
}

func TestRenderEscapesUserContent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, Data{
		Name:      "Ada",
		Email:     "ada@example.com",
		Education: "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(buf.String(), "<script>") {
		t.Error("user content not escaped")
	}
}

func TestRenderRequiresNameAndEmail(t *testing.T) {
	t.Parallel()

	if err := Render(&bytes.Buffer{}, Data{Email: "a@b.c"}); err == nil {
		t.Error("expected error without name")
	}
	if err := Render(&bytes.Buffer{}, Data{Name: "Ada"}); err == nil {
		t.Error("expected error without email")
	}
}
