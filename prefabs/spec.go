package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/voxelsandbox/world"
	"gopkg.in/yaml.v3"
)

const SandboxFile = "sandbox.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

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

type SandboxSpec struct {
	Name    string               `yaml:"name"`
	Seed    int64                `yaml:"seed"`
	World   WorldSpec            `yaml:"world"`
	Player  PlayerSpec           `yaml:"player"`
	Camera  CameraSpec           `yaml:"camera"`
	Display DisplaySpec          `yaml:"display"`
	Palette map[string]YAMLColor `yaml:"palette"`
}

type WorldSpec struct {
	Width        int       `yaml:"width"`
	Height       int       `yaml:"height"`
	GroundBase   int       `yaml:"ground_base"`
	Amplitude    float64   `yaml:"amplitude"`
	Wavelength   float64   `yaml:"wavelength"`
	Phase        float64   `yaml:"phase"`
	RandomPhase  bool      `yaml:"random_phase"`
	Roughness    float64   `yaml:"roughness"`
	DirtDepth    int       `yaml:"dirt_depth"`
	HeightScript string    `yaml:"height_script"`
	Ores         []OreSpec `yaml:"ores"`
	Trees        TreeSpec  `yaml:"trees"`
}

type OreSpec struct {
	Tile     world.TileType `yaml:"tile"`
	Chance   float64        `yaml:"chance"`
	MinDepth int            `yaml:"min_depth"`
}

type TreeSpec struct {
	Chance       float64 `yaml:"chance"`
	Spacing      int     `yaml:"spacing"`
	TrunkMin     int     `yaml:"trunk_min"`
	TrunkMax     int     `yaml:"trunk_max"`
	CanopyRadius int     `yaml:"canopy_radius"`
}

type PlayerSpec struct {
	SpawnColumn   int            `yaml:"spawn_column"`
	Gravity       float64        `yaml:"gravity"`
	MoveSpeed     float64        `yaml:"move_speed"`
	JumpSpeed     float64        `yaml:"jump_speed"`
	MaxFallSpeed  float64        `yaml:"max_fall_speed"`
	ClampToWorld  bool           `yaml:"clamp_to_world"`
	SelectedBlock world.TileType `yaml:"selected_block"`
}

type CameraSpec struct {
	CenterOnPlayer bool    `yaml:"center_on_player"`
	Smoothness     float64 `yaml:"smoothness"`
	ClampToWorld   bool    `yaml:"clamp_to_world"`
}

type DisplaySpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// LoadSandboxSpec reads the sandbox config. An empty path uses sandbox.yaml
// from the prefabs directory or the embedded copy.
func LoadSandboxSpec(path string) (*SandboxSpec, error) {
	var (
		data []byte
		err  error
	)
	name := path
	if path == "" {
		name = SandboxFile
		data, err = Load(SandboxFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}

	spec, err := ParseSandboxSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// ParseSandboxSpec validates data against the sandbox schema and decodes it
// over the embedded defaults, so a file only needs the keys it changes.
func ParseSandboxSpec(data []byte) (*SandboxSpec, error) {
	if err := ValidateSandbox(data); err != nil {
		return nil, err
	}

	spec, err := defaultSandboxSpec()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return spec, nil
}

func defaultSandboxSpec() (*SandboxSpec, error) {
	data, err := PrefabsFS.ReadFile(SandboxFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load embedded %s: %w", SandboxFile, err)
	}
	var spec SandboxSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal embedded %s: %w", SandboxFile, err)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts "#rrggbb" or "#rrggbbaa", with or without the '#'.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	channels := [4]uint8{0, 0, 0, 0xff}
	for i := 0; i < len(s)/2; i++ {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		channels[i] = uint8(n)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}
