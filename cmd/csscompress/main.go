package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/djherbis/atime"
	"github.com/tdewolff/argp"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/reader"
	"github.com/csskit/csskit/writer"
)

// Version is the current csscompress version.
var Version = "built from source"

var (
	inputs             []string
	output             string
	cssVersion         = "3.0"
	pretty             bool
	strict             bool
	recursive          bool
	watch              bool
	quiet              bool
	verbose            int
	version            bool
	preserveTimestamps bool
	header             string
)

var (
	Error   *log.Logger
	Warning *log.Logger
	Info    *log.Logger
)

func main() {
	os.Exit(run())
}

func run() int {
	f := argp.New("csscompress")
	f.AddRest(&inputs, "inputs", "Input files or directories, leave blank to use stdin")
	f.AddOpt(&output, "o", "output", "Output file or directory, leave blank to use stdout")
	f.AddOpt(&cssVersion, "c", "css", "CSS version to target (2.1 or 3.0)")
	f.AddOpt(&pretty, "", "pretty", "Pretty-print instead of compressing")
	f.AddOpt(&strict, "", "strict", "Strict parsing, fail on the first error instead of recovering like browsers do")
	f.AddOpt(&recursive, "r", "recursive", "Recursively process directories")
	f.AddOpt(&watch, "w", "watch", "Watch files and reprocess upon changes")
	f.AddOpt(&quiet, "q", "quiet", "Quiet mode to suppress all output")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", "Verbose mode, set twice for more verbosity")
	f.AddOpt(&preserveTimestamps, "p", "preserve-timestamps", "Preserve access and modification times of the input")
	f.AddOpt(&header, "", "header", "Comment text emitted at the top of every output file")
	f.AddOpt(&version, "", "version", "Version")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("csscompress %s\n", Version)
		}
		return 0
	}

	Error = log.New(io.Discard, "", 0)
	Warning = log.New(io.Discard, "", 0)
	Info = log.New(io.Discard, "", 0)
	if !quiet {
		Error = log.New(os.Stderr, "ERROR: ", 0)
		if 0 < verbose {
			Warning = log.New(os.Stderr, "WARNING: ", 0)
		}
		if 1 < verbose {
			Info = log.New(os.Stderr, "INFO: ", 0)
		}
	}

	var grammar csskit.Version
	switch cssVersion {
	case "2.1", "2":
		grammar = csskit.CSS21
	case "3.0", "3", "":
		grammar = csskit.CSS30
	default:
		Error.Println("unknown CSS version", cssVersion)
		return 1
	}

	if len(inputs) == 1 && inputs[0] == "-" {
		inputs = inputs[:0] // stdin
	}
	if output == "-" {
		output = "" // stdout
	}
	useStdin := len(inputs) == 0
	if useStdin && watch {
		Error.Println("--watch doesn't work with stdin, specify input files")
		return 1
	}

	files, dirDst, err := expandInputs(inputs)
	if err != nil {
		Error.Println(err)
		return 1
	}
	if 1 < len(files) && output == "" {
		Error.Println("multiple inputs need an output directory")
		return 1
	}
	if dirDst && output == "" {
		Error.Println("directory input needs an output directory")
		return 1
	}

	task := &task{
		grammar: grammar,
		pretty:  pretty,
		strict:  strict,
		header:  header,
	}

	fails := 0
	if useStdin {
		if err := task.process("", output); err != nil {
			Error.Println(err)
			fails++
		}
	}
	for _, file := range files {
		if err := task.process(file, outputPath(file, output, dirDst)); err != nil {
			Error.Println(err)
			fails++
		}
	}

	if watch {
		if n := watchLoop(task, files, output, dirDst); n != 0 {
			fails += n
		}
	}
	if fails != 0 {
		return 1
	}
	return 0
}

// expandInputs resolves directory inputs to the .css files inside. The
// dirDst report tells whether outputs must go into a directory.
func expandInputs(inputs []string) (files []string, dirDst bool, err error) {
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, false, err
		}
		if !info.IsDir() {
			files = append(files, input)
			continue
		}
		dirDst = true
		walk := func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".css") {
				files = append(files, path)
			}
			if d.IsDir() && !recursive && filepath.Clean(path) != filepath.Clean(input) {
				return filepath.SkipDir
			}
			return nil
		}
		if err := filepath.WalkDir(input, walk); err != nil {
			return nil, false, err
		}
	}
	return files, dirDst || 1 < len(files), nil
}

func outputPath(file, output string, dirDst bool) string {
	if output == "" || !dirDst {
		return output
	}
	return filepath.Join(output, filepath.Base(file))
}

// task holds the settings of one processing run.
type task struct {
	grammar csskit.Version
	pretty  bool
	strict  bool
	header  string
}

// process reads src (stdin when empty), rewrites it and writes the
// result to dst (stdout when empty).
func (t *task) process(src, dst string) error {
	r, err := openInputFile(src)
	if err != nil {
		return err
	}
	b, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return err
	}

	settings := reader.NewSettings(t.grammar)
	settings.BrowserCompliant = !t.strict
	collected := errorhandler.NewCollecting()
	if t.strict {
		settings.ErrorHandler = errorhandler.NewThrowing()
	} else {
		settings.ErrorHandler = collected
	}
	sheet, err := reader.FromString(string(b), settings)
	if err != nil {
		return fmt.Errorf("parse %q: %w", name(src), err)
	}
	for _, pe := range collected.ParseErrors() {
		Warning.Printf("%s: %s", name(src), pe)
	}

	ws := csskit.NewOptimizedWriterSettings(t.grammar)
	if t.pretty {
		ws = csskit.NewWriterSettings(t.grammar)
	}
	cw := writer.New(ws)
	cw.Header = t.header
	out, err := cw.CSSAsString(sheet)
	if err != nil {
		return fmt.Errorf("write %q: %w", name(src), err)
	}

	w, err := openOutputFile(dst)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	if w != os.Stdout {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}

	if preserveTimestamps && src != "" && dst != "" {
		if info, serr := os.Stat(src); serr == nil {
			if terr := os.Chtimes(dst, atime.Get(info), info.ModTime()); terr != nil {
				Warning.Println(terr)
			}
		}
	}
	Info.Printf("processed %s", name(src))
	return nil
}

func name(file string) string {
	if file == "" {
		return "stdin"
	}
	return file
}

// watchLoop reprocesses files as they change until interrupted.
func watchLoop(t *task, files []string, output string, dirDst bool) int {
	w, err := NewWatcher(recursive)
	if err != nil {
		Error.Println(err)
		return 1
	}
	defer w.Close()

	for _, input := range inputs {
		if err := w.AddPath(input); err != nil {
			Error.Println(err)
			return 1
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	changes := w.Run()
	fails := 0
	for changes != nil {
		select {
		case <-interrupt:
			return fails
		case file, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			if !strings.EqualFold(filepath.Ext(file), ".css") {
				break
			}
			if err := t.process(file, outputPath(file, output, dirDst)); err != nil {
				Error.Println(err)
				fails++
			}
		}
	}
	return fails
}
