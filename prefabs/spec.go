package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type SpriteSpec struct {
	Image   string  `yaml:"image"`
	FrameW  int     `yaml:"frame_w"`
	FrameH  int     `yaml:"frame_h"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
}

// PlayerSpec selects the movement and jump variants alongside the usual
// sprite/collider/audio wiring. Movement is "instant" or "smoothed"; jump
// is "impulse" or "squish".
type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Movement  string        `yaml:"movement"`
	Jump      string        `yaml:"jump"`
	MoveSpeed float64       `yaml:"move_speed"`
	JumpSpeed float64       `yaml:"jump_speed"`
	AccelRate float64       `yaml:"accel_rate"`
	Transform TransformSpec `yaml:"transform"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Collider  ColliderSpec  `yaml:"collider"`
	Audio     []AudioSpec   `yaml:"audio"`
}

type CameraSpec struct {
	Name   string  `yaml:"name"`
	Target string  `yaml:"target"`
	MinX   float64 `yaml:"min_x"`
	MinY   float64 `yaml:"min_y"`
}

type CoinSpec struct {
	Name            string      `yaml:"name"`
	Sprite          SpriteSpec  `yaml:"sprite"`
	CollisionWidth  float64     `yaml:"collision_width"`
	CollisionHeight float64     `yaml:"collision_height"`
	BobAmplitude    float64     `yaml:"bob_amplitude"`
	BobSpeed        float64     `yaml:"bob_speed"`
	Audio           []AudioSpec `yaml:"audio"`
}

type HUDSpec struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// LoadSpec reads and unmarshals a prefab file (disk copy first, then the
// embedded one).
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

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadCoinSpec() (*CoinSpec, error) {
	spec, err := LoadSpec[CoinSpec]("coin.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadHUDSpec() (*HUDSpec, error) {
	spec, err := LoadSpec[HUDSpec]("hud.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *PlayerSpec) applyDefaults() {
	if s.Movement == "" {
		s.Movement = "smoothed"
	}
	if s.Jump == "" {
		s.Jump = "squish"
	}
}
