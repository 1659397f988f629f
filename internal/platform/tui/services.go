package tui

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-launch/internal/audio"
	"github.com/vovakirdan/egg-launch/internal/storage"
)

// Services are the platform side effects a running game feeds: score
// persistence, audio cues and logging. Every field may be left empty.
type Services struct {
	Store   *storage.Store // SQLite run history
	TextDir string         // Directory for per-game MM:SS.mmm logs
	Retain  int            // Text log retention, 0 keeps everything
	Sink    audio.Sink
	Logger  *log.Logger
}

// withDefaults fills empty fields with no-op implementations.
func (s Services) withDefaults() Services {
	if s.Sink == nil {
		s.Sink = audio.Nop{}
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	return s
}

// ScoreLog returns the score logs for a game: the SQLite store and the
// text log, whichever are configured.
func (s Services) ScoreLog(gameID string) storage.ScoreLog {
	var logs storage.MultiLog
	if s.Store != nil {
		logs = append(logs, s.Store.ForGame(gameID))
	}
	if s.TextDir != "" {
		tl, err := storage.OpenTextLog(filepath.Join(s.TextDir, gameID+".txt"), s.Retain)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("text score log unavailable", "game", gameID, "error", err)
			}
		} else {
			logs = append(logs, tl)
		}
	}
	return logs
}
