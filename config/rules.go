package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rulesFile is the shape of a rules override. Only keys present in the file
// change the global defaults.
type rulesFile struct {
	Game       *Config              `yaml:"game"`
	Player     *PlayerConfig        `yaml:"player"`
	World      *WorldConfig         `yaml:"world"`
	Probe      *ProbeConfig         `yaml:"probe"`
	Launcher   *LauncherConfig      `yaml:"launcher"`
	Projectile *ProjectileConfig    `yaml:"projectile"`
	Target     *TargetConfig        `yaml:"target"`
	Overlay    *OverlayConfig       `yaml:"overlay"`
	Finish     *FinishConfig        `yaml:"finish"`
	Camera     *CameraConfig        `yaml:"camera"`
	TileAttrs  *TileAttrConfig      `yaml:"tile_attrs"`
	Sound      *SoundConfig         `yaml:"sound"`
	Events     []EventConfig        `yaml:"events"`
	SceneMaps  map[string]*SceneMap `yaml:"scene_maps"`
}

// LoadRules applies a rules override file over the defaults.
// Search order: customPath -> ~/.bugspy/rules.yaml -> ./configs/rules.yaml.
// It returns the path that was applied, or "" when defaults are kept.
func LoadRules(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read rules %s: %w", customPath, err)
		}
		if err := ApplyRules(data); err != nil {
			return "", fmt.Errorf("failed to parse rules %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("rules.yaml"), filepath.Join("configs", "rules.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := ApplyRules(data); err != nil {
			return "", fmt.Errorf("failed to parse rules %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// ApplyRules decodes YAML over the current globals.
func ApplyRules(data []byte) error {
	var doc rulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	// Decode a second time into the live globals so unspecified fields keep
	// their values.
	live := rulesFile{
		Game:       C,
		Player:     &Player,
		World:      &World,
		Probe:      &Probe,
		Launcher:   &Launcher,
		Projectile: &Projectile,
		Target:     &Target,
		Overlay:    &Overlay,
		Finish:     &Finish,
		Camera:     &Camera,
		TileAttrs:  &TileAttrs,
		Sound:      &Sound,
	}
	if err := yaml.Unmarshal(data, &live); err != nil {
		return err
	}

	if len(doc.Events) > 0 {
		Events = doc.Events
		for _, ev := range Events {
			if _, ok := SceneMaps[ev.Name]; !ok {
				sm := defaultBindings()
				SceneMaps[ev.Name] = &sm
			}
		}
	}
	for name, sm := range doc.SceneMaps {
		if sm != nil {
			SceneMaps[name] = sm
		}
	}
	return nil
}

func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bugspy", name)
}
