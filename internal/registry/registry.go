// Package registry maps game IDs to factories. Game packages register
// themselves from init(), so the CLI and the TUI can create them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/egg-launch/internal/core"
)

// Game is what the platform drives. Implementations hold pure simulation
// state; input mapping, timing and terminal output belong to the platform.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score storage key.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh level from the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances by one nominal tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports timer, score and pause status.
	State() core.GameState
}

// Advancer is implemented by games that can advance by a measured frame
// time instead of the nominal tick.
type Advancer interface {
	Advance(in core.InputFrame, dt float64) core.StepResult
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. It panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
