package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/egg-launch/internal/core"
)

// ErrInvalidRecord is wrapped when a score line or value cannot be used.
var ErrInvalidRecord = errors.New("storage: invalid record")

// TextLog is an append-only file with one MM:SS.mmm line per round.
type TextLog struct {
	path   string
	retain int
}

// OpenTextLog prepares a text log at path, creating parent directories.
// retain <= 0 keeps every line.
func OpenTextLog(path string, retain int) (*TextLog, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &TextLog{path: path, retain: retain}, nil
}

// Path returns the log file location.
func (l *TextLog) Path() string {
	return l.path
}

// AppendScore appends one record, then trims the file to the newest
// retained lines.
func (l *TextLog) AppendScore(durationMs int64) error {
	if durationMs < 0 {
		return fmt.Errorf("storage: negative duration %d: %w", durationMs, ErrInvalidRecord)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open score log: %w", err)
	}
	if _, err := fmt.Fprintln(f, core.FormatDuration(durationMs)); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot append score: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot close score log: %w", err)
	}

	return l.trim()
}

// trim rewrites the file keeping only the newest retained lines.
func (l *TextLog) trim() error {
	if l.retain <= 0 {
		return nil
	}
	lines, err := l.lines()
	if err != nil {
		return err
	}
	if len(lines) <= l.retain {
		return nil
	}

	keep := lines[len(lines)-l.retain:]
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(keep, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot rewrite score log: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("storage: cannot replace score log: %w", err)
	}
	return nil
}

// ReadLastN returns up to n durations, oldest first. A missing file is an
// empty log.
func (l *TextLog) ReadLastN(n int) ([]int64, error) {
	lines, err := l.lines()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	out := make([]int64, 0, len(lines))
	for _, line := range lines {
		ms, err := ParseDuration(line)
		if err != nil {
			return nil, err
		}
		out = append(out, ms)
	}
	return out, nil
}

// lines reads the non-empty lines of the log.
func (l *TextLog) lines() ([]string, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read score log: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read score log: %w", err)
	}
	return lines, nil
}

// ParseDuration parses a MM:SS.mmm record into milliseconds.
func ParseDuration(s string) (int64, error) {
	minPart, rest, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("storage: %q: missing ':': %w", s, ErrInvalidRecord)
	}
	secPart, msPart, ok := strings.Cut(rest, ".")
	if !ok || len(secPart) != 2 || len(msPart) != 3 || len(minPart) < 2 {
		return 0, fmt.Errorf("storage: %q: expected MM:SS.mmm: %w", s, ErrInvalidRecord)
	}

	var parts [3]int64
	for i, p := range []string{minPart, secPart, msPart} {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("storage: %q: bad number %q: %w", s, p, ErrInvalidRecord)
		}
		parts[i] = v
	}
	if parts[1] >= 60 {
		return 0, fmt.Errorf("storage: %q: seconds out of range: %w", s, ErrInvalidRecord)
	}

	return parts[0]*60000 + parts[1]*1000 + parts[2], nil
}

// MultiLog writes every record to all logs and reads from the first.
type MultiLog []ScoreLog

// AppendScore appends to every log, joining any errors.
func (m MultiLog) AppendScore(durationMs int64) error {
	var errs []error
	for _, l := range m {
		if err := l.AppendScore(durationMs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReadLastN reads from the first log.
func (m MultiLog) ReadLastN(n int) ([]int64, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return m[0].ReadLastN(n)
}
