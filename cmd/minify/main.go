// Command minify writes minified copies of templates/ and static/ into dist/,
// which the server prefers in production.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func main() {
	var (
		srcRoot = flag.String("src", ".", "Directory holding templates/ and static/")
		outRoot = flag.String("out", "dist", "Output directory")
	)
	flag.Parse()

	m := newMinifier()
	for _, dir := range []string{"templates", "static"} {
		src := filepath.Join(*srcRoot, dir)
		if err := minifyTree(m, src, filepath.Join(*outRoot, dir)); err != nil {
			log.Fatalf("Error minifying %s: %v", src, err)
		}
	}
	fmt.Println("Minification complete, output in", *outRoot)
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
		TemplateDelims:   html.GoTemplateDelims,
	})
	return m
}

// minifyTree mirrors srcDir into dstDir, minifying files with a known media
// type and skipping the rest.
func minifyTree(m *minify.M, srcDir, dstDir string) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		mediaType, ok := mediaTypes[filepath.Ext(path)]
		if !ok {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		return minifyFile(m, path, filepath.Join(dstDir, rel), mediaType)
	})
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}

	if len(src) > 0 {
		ratio := float64(len(src)-len(minified)) / float64(len(src)) * 100
		fmt.Printf("%s: %d bytes -> %d bytes (%.1f%% reduction)\n", srcPath, len(src), len(minified), ratio)
	}
	return nil
}
