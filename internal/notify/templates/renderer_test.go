package templates

import (
	"strings"
	"testing"
)

func TestRendererRenderText(t *testing.T) {
	r := Renderer{}
	out, err := r.RenderText("greet", "Hello {{.Name}}", map[string]string{"Name": "Asha"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Asha" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := r.RenderText("bad", "Hello {{.Missing}}", map[string]string{"Name": "x"}); err == nil {
		t.Fatalf("expected error for missing key")
	}
}

func TestRendererRenderHTMLEscapes(t *testing.T) {
	r := Renderer{}
	out, err := r.RenderHTML("lead", "<p>{{.Name}}</p>", map[string]string{"Name": "<script>x</script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected escaped output, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected html entities, got %q", out)
	}
}

func TestRendererRejectsEmptyTemplate(t *testing.T) {
	if _, err := (Renderer{}).RenderHTML("empty", "", nil); err == nil {
		t.Fatalf("expected error for empty template")
	}
}
