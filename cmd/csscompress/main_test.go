package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
)

func init() {
	Error = log.New(io.Discard, "", 0)
	Warning = log.New(io.Discard, "", 0)
	Info = log.New(io.Discard, "", 0)
}

func TestRunVersionFlag(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"csscompress", "-q", "--version"}
	defer func() {
		os.Args = oldArgs
		quiet = false
		version = false
	}()
	test.T(t, run(), 0)
}

func TestOutputPath(t *testing.T) {
	test.String(t, outputPath("a/b.css", "", false), "")
	test.String(t, outputPath("a/b.css", "out.css", false), "out.css")
	test.String(t, outputPath("a/b.css", "dist", true), filepath.Join("dist", "b.css"))
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	test.Error(t, os.Mkdir(sub, 0o755))
	test.Error(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("a{}"), 0o644))
	test.Error(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	test.Error(t, os.WriteFile(filepath.Join(sub, "c.css"), []byte("c{}"), 0o644))

	recursive = false
	files, dirDst, err := expandInputs([]string{dir})
	test.Error(t, err)
	test.T(t, dirDst, true)
	test.T(t, len(files), 1)
	test.String(t, filepath.Base(files[0]), "a.css")

	recursive = true
	files, _, err = expandInputs([]string{dir})
	test.Error(t, err)
	test.T(t, len(files), 2)
	recursive = false

	single := filepath.Join(dir, "a.css")
	files, dirDst, err = expandInputs([]string{single})
	test.Error(t, err)
	test.T(t, dirDst, false)
	test.T(t, len(files), 1)

	_, _, err = expandInputs([]string{filepath.Join(dir, "missing.css")})
	test.That(t, err != nil, "missing input must fail")
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.css")
	dst := filepath.Join(dir, "out", "in.css")
	test.Error(t, os.WriteFile(src, []byte("p { color: red; margin: 0px; }"), 0o644))

	tk := &task{grammar: csskit.CSS30}
	test.Error(t, tk.process(src, dst))

	out, err := os.ReadFile(dst)
	test.Error(t, err)
	test.String(t, string(out), "p{color:red;margin:0}")

	pretty := &task{grammar: csskit.CSS30, pretty: true}
	test.Error(t, pretty.process(src, dst))
	out, err = os.ReadFile(dst)
	test.Error(t, err)
	test.String(t, string(out), "p {\n  color:red;\n  margin:0px;\n}\n")
}

func TestProcessStrict(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.css")
	dst := filepath.Join(dir, "out.css")
	test.Error(t, os.WriteFile(src, []byte("p { color red }"), 0o644))

	tk := &task{grammar: csskit.CSS30, strict: true}
	test.That(t, tk.process(src, dst) != nil, "strict mode must fail on malformed input")

	tk = &task{grammar: csskit.CSS30}
	test.Error(t, tk.process(src, dst))
	out, err := os.ReadFile(dst)
	test.Error(t, err)
	test.String(t, string(out), "")
}

func TestProcessHeader(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.css")
	dst := filepath.Join(dir, "out.css")
	test.Error(t, os.WriteFile(src, []byte("p{color:red}"), 0o644))

	tk := &task{grammar: csskit.CSS30, header: "banner"}
	test.Error(t, tk.process(src, dst))
	out, err := os.ReadFile(dst)
	test.Error(t, err)
	test.String(t, string(out), "/* banner */\np{color:red}")
}
