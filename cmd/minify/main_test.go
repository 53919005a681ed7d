package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSSMinification(t *testing.T) {
	input := `
		body {
			color: #fff;
			margin: 0  ;
		}
	`
	got, err := newMinifier().String("text/css", input)
	if err != nil {
		t.Fatalf("CSS minification failed: %v", err)
	}
	if got != `body{color:#fff;margin:0}` {
		t.Errorf("CSS minification = %q", got)
	}
}

func TestHTMLKeepsTemplateActions(t *testing.T) {
	input := `<p>  {{ if .error }}  <span>{{ .error }}</span>  {{ end }}  </p>`
	got, err := newMinifier().String("text/html", input)
	if err != nil {
		t.Fatalf("HTML minification failed: %v", err)
	}
	for _, action := range []string{"{{ if .error }}", "{{ .error }}", "{{ end }}"} {
		if !strings.Contains(got, action) {
			t.Errorf("minified HTML %q lost %q", got, action)
		}
	}
}

func TestMinifyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "dist")
	if err := os.MkdirAll(filepath.Join(src, "css"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "css", "a.css"), []byte("a {  color : red ; }"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("keep out"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := minifyTree(newMinifier(), src, dst); err != nil {
		t.Fatalf("minifyTree: %v", err)
	}
	out, err := os.ReadFile(filepath.Join(dst, "css", "a.css"))
	if err != nil {
		t.Fatalf("minified file missing: %v", err)
	}
	if string(out) != "a{color:red}" {
		t.Errorf("a.css = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dst, "notes.txt")); !os.IsNotExist(err) {
		t.Errorf("unknown file type was copied, stat err = %v", err)
	}
}
