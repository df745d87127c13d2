package assets

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/automoto/bugspy/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelLoader parses each embedded level once. Levels are shared read-only.
type LevelLoader struct {
	mu     sync.Mutex
	levels map[string]*leveldata.Level
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{levels: make(map[string]*leveldata.Level)}
}

var levelLoader = NewLevelLoader()

// LoadLevel returns the embedded level with the given file stem.
func LoadLevel(name string) (*leveldata.Level, error) {
	return levelLoader.Load(name)
}

func (l *LevelLoader) Load(name string) (*leveldata.Level, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lvl, ok := l.levels[name]; ok {
		return lvl, nil
	}
	lvl, err := leveldata.Load(assetFS, path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("assets: level %s: %w", name, err)
	}
	l.levels[name] = lvl
	return lvl, nil
}

// MustLoadLevel panics when an embedded level is missing or malformed.
func MustLoadLevel(name string) *leveldata.Level {
	lvl, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return lvl
}

// LevelNames lists the embedded level stems.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, "levels")
	return names, err
}
