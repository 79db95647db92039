package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
)

var logfile *os.File
var verbose bool

var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

// Until Init opens a log file, messages go to the console only.
func init() { log.SetOutput(io.Discard) }

// DefaultPath is the log location used when the config does not name one.
func DefaultPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "contactbook", "logs", "contactbook.log")
}

// Init mirrors every message into the file at path. Failures leave logging
// on the console only.
func Init(path string) {
	if path == "" {
		path = DefaultPath()
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	logfile = f
	log.SetOutput(f)
}

func Close() {
	if logfile != nil {
		log.SetOutput(io.Discard)
		_ = logfile.Close()
		logfile = nil
	}
}

// SetOutput redirects console messages; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func Info(msg string) {
	_, _ = fmt.Fprintln(stdout, msg)
	log.Println(msg)
}

func Success(msg string) {
	_, _ = fmt.Fprintln(stdout, text.FgGreen.Sprint(msg))
	log.Println(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(stderr, text.FgRed.Sprint(msg))
	log.Println("[ERROR] " + msg)
}

func Gray(msg string) {
	_, _ = fmt.Fprintln(stdout, text.FgHiBlack.Sprint(msg))
	log.Println(msg)
}

// SetVerbose toggles verbose output to stdout.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(stdout, text.FgHiBlack.Sprint(msg))
	log.Println("[DEBUG] " + msg)
}
