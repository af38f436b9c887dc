package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"hello.tmpl": &fstest.MapFile{
				Data: []byte("Project {{.Name}} in {{.Dir}}\n"),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("hello.tmpl", map[string]string{"Name": "blog", "Dir": "blog"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(result) != "Project blog in blog\n" {
			t.Errorf("Render result = %q", string(result))
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{Data: []byte("Hello {{.Name}}, db {{.Database}}")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "blog"})
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("unexpanded_token_detected", func(t *testing.T) {
		fs := fstest.MapFS{
			"env.tmpl": &fstest.MapFile{Data: []byte("url: ${DATABASE_URL}\n")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("env.tmpl", nil)
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("{{.Name")},
		}
		_, err := NewRenderer(fs).Render("bad.tmpl", nil)
		if err == nil || !strings.Contains(err.Error(), "template parse") {
			t.Errorf("expected parse error, got: %v", err)
		}
	})
}

func TestActivateCommand(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", `venv\Scripts\activate`},
		{"linux", "source venv/bin/activate"},
		{"darwin", "source venv/bin/activate"},
	}
	for _, tt := range tests {
		if got := ActivateCommand(tt.goos); got != tt.want {
			t.Errorf("ActivateCommand(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestRenderNextSteps(t *testing.T) {
	out, err := RenderNextSteps(NextSteps{
		Name:            "blog",
		Dir:             "blog",
		ActivateCommand: ActivateCommand("windows"),
	})
	if err != nil {
		t.Fatalf("RenderNextSteps error: %v", err)
	}

	wantLines := []string{
		"Flask project 'blog' created successfully!",
		"cd blog",
		"python -m venv venv",
		`venv\Scripts\activate`,
		"pip install -r requirements.txt",
		"flask run",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("next steps missing %q:\n%s", line, out)
		}
	}
	if strings.Index(out, "cd blog") > strings.Index(out, "flask run") {
		t.Error("cd should come before flask run")
	}
}

func TestRendererRender_WithoutTokenCheck(t *testing.T) {
	fs := fstest.MapFS{
		"name.tmpl": &fstest.MapFile{Data: []byte("cd {{.Dir}}\n")},
	}
	data := map[string]string{"Dir": "shop$API/{{.X}}"}

	if _, err := NewRenderer(fs).Render("name.tmpl", data); !errors.Is(err, ErrUnexpandedToken) {
		t.Fatalf("default renderer should flag tokens in output, got: %v", err)
	}

	out, err := NewRenderer(fs, WithoutTokenCheck()).Render("name.tmpl", data)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if string(out) != "cd shop$API/{{.X}}\n" {
		t.Errorf("Render result = %q", string(out))
	}
}

func TestRenderNextSteps_DollarInName(t *testing.T) {
	out, err := RenderNextSteps(NextSteps{
		Name:            "shop$API",
		Dir:             "/srv/${HOME}/shop$API",
		ActivateCommand: ActivateCommand("linux"),
	})
	if err != nil {
		t.Fatalf("RenderNextSteps error: %v", err)
	}
	if !strings.Contains(out, "Flask project 'shop$API' created successfully!") {
		t.Errorf("name not rendered verbatim:\n%s", out)
	}
	if !strings.Contains(out, "cd /srv/${HOME}/shop$API") {
		t.Errorf("dir not rendered verbatim:\n%s", out)
	}
}

// The embedded template itself must not carry leftover tokens.
func TestNextStepsTemplate_NoLeftoverTokens(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatal(err)
	}
	data := NextSteps{Name: "blog", Dir: "blog", ActivateCommand: POSIXActivate}
	if _, err := NewRenderer(fsys).Render(NextStepsTemplate, data); err != nil {
		t.Errorf("strict render of %s: %v", NextStepsTemplate, err)
	}
}
