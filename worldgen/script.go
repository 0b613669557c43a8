package worldgen

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptProfile runs a tengo script once per column. The script sees the
// globals x, width, base, amplitude, wavelength, phase and roughness and
// must assign the ground row to `height`:
//
//	math := import("math")
//	height = base + int(math.floor(amplitude * math.sin(x / 10) + 0.5))
type ScriptProfile struct {
	compiled *tengo.Compiled
}

func NewScriptProfile(src []byte, shape Shape) (*ScriptProfile, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))

	globals := []struct {
		name  string
		value any
	}{
		{"x", 0.0},
		{"width", 0},
		{"base", shape.Base},
		{"amplitude", shape.Amplitude},
		{"wavelength", shape.Wavelength},
		{"phase", shape.Phase},
		{"roughness", shape.Roughness},
		{"height", shape.Base},
	}
	for _, g := range globals {
		if err := script.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("%w: script global %s: %v", ErrInvalidConfig, g.name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: compile height script: %v", ErrInvalidConfig, err)
	}
	return &ScriptProfile{compiled: compiled}, nil
}

func (p *ScriptProfile) Rows(width int) ([]int, error) {
	if err := p.compiled.Set("width", width); err != nil {
		return nil, fmt.Errorf("worldgen: set width: %w", err)
	}
	rows := make([]int, width)
	for x := range rows {
		if err := p.compiled.Set("x", float64(x)); err != nil {
			return nil, fmt.Errorf("worldgen: set x: %w", err)
		}
		if err := p.compiled.Run(); err != nil {
			return nil, fmt.Errorf("%w: height script at x=%d: %v", ErrInvalidConfig, x, err)
		}
		v := p.compiled.Get("height")
		if v.IsUndefined() {
			return nil, fmt.Errorf("%w: height script left height undefined at x=%d", ErrInvalidConfig, x)
		}
		rows[x] = v.Int()
	}
	return rows, nil
}
