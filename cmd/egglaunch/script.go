package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/egg-launch/internal/core"
)

// scriptActions maps script words to game actions.
var scriptActions = map[string]core.Action{
	"release":  core.ActionRelease,
	"charge":   core.ActionChargeStart,
	"launch":   core.ActionChargeRelease,
	"left":     core.ActionLeft,
	"right":    core.ActionRight,
	"impulse":  core.ActionImpulse,
	"teleport": core.ActionTeleport,
	"pause":    core.ActionPause,
	"restart":  core.ActionRestart,
}

// inputScript holds the actions to inject, keyed by frame number.
type inputScript map[int][]core.Action

// parseScript reads "frame:action[+action],..." into an input script, for
// example "0:release,400:charge,430:launch+left".
func parseScript(s string) (inputScript, error) {
	script := inputScript{}
	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		frameText, actionsText, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: expected frame:action", entry)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameText))
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("script entry %q: bad frame number", entry)
		}
		for _, word := range strings.Split(actionsText, "+") {
			word = strings.ToLower(strings.TrimSpace(word))
			a, ok := scriptActions[word]
			if !ok {
				return nil, fmt.Errorf("script entry %q: unknown action %q (valid: %s)", entry, word, strings.Join(scriptWords(), ", "))
			}
			script[frame] = append(script[frame], a)
		}
	}
	return script, nil
}

// frame returns the input frame for frame number n.
func (s inputScript) frame(n int) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range s[n] {
		in.Set(a)
	}
	return in
}

func scriptWords() []string {
	words := make([]string, 0, len(scriptActions))
	for w := range scriptActions {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
