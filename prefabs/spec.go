package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Tuning is everything game.yaml configures.
type Tuning struct {
	Name       string        `yaml:"name"`
	Field      FieldSpec     `yaml:"field"`
	WinScore   int           `yaml:"win_score"`
	Background SpriteSpec    `yaml:"background"`
	Ship       ShipSpec      `yaml:"ship"`
	Asteroids  AsteroidsSpec `yaml:"asteroids"`
	Coins      CoinsSpec     `yaml:"coins"`
	Footer     FooterSpec    `yaml:"footer"`
}

type FieldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteSpec names an image. Width, Height and Color describe the
// placeholder drawn when the image is not available.
type SpriteSpec struct {
	Image  string     `yaml:"image"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type ShipSpec struct {
	Sprite     SpriteSpec `yaml:"sprite"`
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	DirectionX float64    `yaml:"direction_x"`
	DirectionY float64    `yaml:"direction_y"`
	Speed      float64    `yaml:"speed"`
	Scale      float64    `yaml:"scale"`
	Health     int        `yaml:"health"`
	Control    string     `yaml:"control"`
	TurnStep   float64    `yaml:"turn_step"`
	KeepInside *bool      `yaml:"keep_inside"`
}

type AsteroidVariantSpec struct {
	Sprite SpriteSpec `yaml:"sprite"`
	Scale  float64    `yaml:"scale"`
}

type AsteroidsSpec struct {
	SpawnInterval    float64               `yaml:"spawn_interval"`
	SpawnX           float64               `yaml:"spawn_x"`
	SpawnMargin      float64               `yaml:"spawn_margin"`
	Speed            float64               `yaml:"speed"`
	Rotation         float64               `yaml:"rotation"`
	RotationSpeed    float64               `yaml:"rotation_speed"`
	Damage           int                   `yaml:"damage"`
	CompactThreshold int                   `yaml:"compact_threshold"`
	Variants         []AsteroidVariantSpec `yaml:"variants"`
	Audio            AudioSpec             `yaml:"audio"`
}

type AnimationSpec struct {
	Sheet         SpriteSpec `yaml:"sheet"`
	FrameCount    int        `yaml:"frame_count"`
	FrameDuration float64    `yaml:"frame_duration"`
}

type CoinsSpec struct {
	Count     int           `yaml:"count"`
	Scale     float64       `yaml:"scale"`
	Score     int           `yaml:"score"`
	Animation AnimationSpec `yaml:"animation"`
	Audio     AudioSpec     `yaml:"audio"`
}

type FooterSpec struct {
	Names  string `yaml:"names"`
	Module string `yaml:"module"`
	App    string `yaml:"app"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed colour or fallback when none was given.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
