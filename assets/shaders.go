package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GlowShader lights a card face around the pointer and along its rim
	GlowShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	glowSrc, err := shaderFS.ReadFile("shaders/glow.kage")
	if err != nil {
		return fmt.Errorf("read glow shader: %w", err)
	}
	GlowShader, err = ebiten.NewShader(glowSrc)
	if err != nil {
		return fmt.Errorf("compile glow shader: %w", err)
	}
	return nil
}
