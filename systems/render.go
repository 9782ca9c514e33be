package systems

import (
	"image"
	"image/color"
	"sort"

	"github.com/automoto/popcards/assets"
	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/fonts"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/automoto/popcards/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Theme values used when a variable is missing
const (
	defaultEdgeAlpha   = 0.5
	defaultGlowAlpha   = 0.35
	defaultGlowOpacity = 1.0
	defaultShadowAlpha = 0.4
	restingShadowScale = 0.6
)

var (
	cardDrawOrder []*donburi.Entry
	quadIndices   = []uint16{0, 1, 2, 0, 2, 3}
	quadVertices  = make([]ebiten.Vertex, 4)
	whitePixel    *ebiten.Image
	faceOp        = &ebiten.DrawImageOptions{}
	triOp         = &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	shaderOp      = &ebiten.DrawRectShaderOptions{}
	glowUniforms  = map[string]any{}
)

// cardLight is the resolved glow and rim strength for one frame.
type cardLight struct {
	edge    float32
	glow    float32
	opacity float32
}

// DrawBackdrop fills the screen with the active theme's backdrop color.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	vars := cfg.VarChain{settings.Overrides, settings.Theme().Vars}
	screen.Fill(cfg.Color(vars, cfg.VarBackdrop, cfg.Black))
}

// DrawCards renders every card from its surface: the drop shadow, then the
// lit face projected through the card's current transform. Cards draw in
// index order with the hovered card last.
func DrawCards(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	for _, entry := range sortedCards(e, HoveredCard(e)) {
		drawCard(e, screen, entry, settings.ThemeIndex)
	}
}

func sortedCards(e *ecs.ECS, hovered *donburi.Entry) []*donburi.Entry {
	cardDrawOrder = cardDrawOrder[:0]
	tags.Card.Each(e.World, func(entry *donburi.Entry) {
		cardDrawOrder = append(cardDrawOrder, entry)
	})
	sort.SliceStable(cardDrawOrder, func(i, j int) bool {
		a, b := cardDrawOrder[i], cardDrawOrder[j]
		if cfg.Render.HoverRaiseOut && hovered != nil {
			if a == hovered {
				return false
			}
			if b == hovered {
				return true
			}
		}
		return components.Card.Get(a).Index < components.Card.Get(b).Index
	})
	return cardDrawOrder
}

func drawCard(e *ecs.ECS, screen *ebiten.Image, entry *donburi.Entry, themeIndex int) {
	bounds := components.Object.Get(entry).Bounds()
	if bounds.W < 1 || bounds.H < 1 {
		return
	}
	surface := components.Surface.Get(entry)
	face := components.Face.Get(entry)
	vars := ActiveVars(e, entry)

	ensureFace(face, components.Card.Get(entry), vars, bounds, themeIndex)

	level := float32(1)
	if entry.HasComponent(components.GlowFade) {
		level = components.GlowFade.Get(entry).Level
	}
	lightFace(face, surface, vars, resolveLight(surface.Light, vars, level), bounds)

	cx, cy := bounds.Center()
	pose := surface.Transform.Pose()
	drawShadow(screen, surface, vars, pose, bounds, cx, cy)

	corners := gamemath.ProjectCard(bounds.W, bounds.H, pose, cfg.Render.Perspective)
	src := [4][2]float32{{0, 0}, {float32(bounds.W), 0}, {float32(bounds.W), float32(bounds.H)}, {0, float32(bounds.H)}}
	drawQuad(screen, face.Lit, src, corners, cx, cy, 1, 1, 1, 1)
}

// ensureFace draws the card background and labels once per theme.
func ensureFace(face *components.FaceData, card *components.CardData, vars cfg.Vars, bounds gamemath.Rect, themeIndex int) {
	if face.Ready && face.Theme == themeIndex {
		return
	}
	w, h := int(bounds.W), int(bounds.H)
	if face.Base == nil {
		face.Base = ebiten.NewImage(w, h)
		face.Lit = ebiten.NewImage(w, h)
	}

	cardColor := cfg.Color(vars, cfg.VarCardColor, cfg.Grey)
	textColor := cfg.Color(vars, cfg.VarTextColor, cfg.White)
	subColor := cfg.Blend(textColor, cardColor, 0.35)
	face.Base.Fill(cardColor)

	labelY := h/2 + int(cfg.Render.LabelOffsetY)
	drawCentered(face.Base, card.Label, fonts.Label.Get(), w/2, labelY, textColor)
	drawCentered(face.Base, card.Subtitle, fonts.Subtitle.Get(), w/2, labelY+int(cfg.Render.SubtitleGapY), subColor)

	face.Theme = themeIndex
	face.Ready = true
}

func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, c color.Color) {
	if s == "" {
		return
	}
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-b.Dx()/2, y, c)
}

// resolveLight picks the override values while suppressed, otherwise the
// theme's values scaled by the fade-in level.
func resolveLight(o components.LightOverride, vars cfg.Vars, level float32) cardLight {
	if o.Active {
		return cardLight{
			edge:    float32(o.EdgeAlpha),
			glow:    float32(o.GlowAlpha),
			opacity: float32(o.GlowOpacity),
		}
	}
	return cardLight{
		edge:    float32(cfg.Number(vars, cfg.VarEdgeAlpha, defaultEdgeAlpha)) * level,
		glow:    float32(cfg.Number(vars, cfg.VarGlowAlpha, defaultGlowAlpha)),
		opacity: float32(cfg.Number(vars, cfg.VarGlowOpacity, defaultGlowOpacity)) * level,
	}
}

// lightFace composes the lit face: base plus pointer glow and rim highlight.
func lightFace(face *components.FaceData, surface *components.SurfaceData, vars cfg.Vars, light cardLight, bounds gamemath.Rect) {
	w, h := float32(bounds.W), float32(bounds.H)
	px := float32(surface.PointerX / 100 * bounds.W)
	py := float32(surface.PointerY / 100 * bounds.H)
	glow := cfg.Color(vars, cfg.VarGlowColor, cfg.Cyan)
	radius := float32(cfg.Render.GlowRadius) * max(w, h)

	face.Lit.Clear()

	if assets.GlowShader == nil {
		faceOp.GeoM.Reset()
		face.Lit.DrawImage(face.Base, faceOp)
		a := light.glow * light.opacity
		if a > 0 {
			vector.FillCircle(face.Lit, px, py, radius/2, scaleAlpha(glow, a), true)
		}
		if light.edge > 0 {
			vector.StrokeRect(face.Lit, 0, 0, w, h, float32(cfg.Render.EdgeWidth), scaleAlpha(glow, light.edge), false)
		}
		return
	}

	glowUniforms["Pointer"] = []float32{px, py}
	glowUniforms["Size"] = []float32{w, h}
	glowUniforms["GlowColor"] = []float32{float32(glow.R) / 255, float32(glow.G) / 255, float32(glow.B) / 255, 1}
	glowUniforms["GlowAlpha"] = light.glow
	glowUniforms["GlowOpacity"] = light.opacity
	glowUniforms["EdgeAlpha"] = light.edge
	glowUniforms["EdgeWidth"] = float32(cfg.Render.EdgeWidth)
	glowUniforms["Radius"] = radius

	shaderOp.Images[0] = face.Base
	shaderOp.Uniforms = glowUniforms
	face.Lit.DrawRectShader(int(bounds.W), int(bounds.H), assets.GlowShader, shaderOp)
}

// drawShadow draws a dark quad behind the card, offset by the shadow
// channel and stronger while the card is hovered.
func drawShadow(screen *ebiten.Image, surface *components.SurfaceData, vars cfg.Vars, pose gamemath.Pose, bounds gamemath.Rect, cx, cy float64) {
	alpha := float32(cfg.Number(vars, cfg.VarShadowAlpha, defaultShadowAlpha))
	if !surface.Hovering {
		alpha *= restingShadowScale
	}
	if alpha <= 0 {
		return
	}

	shadowPose := pose
	shadowPose.TranslateX += surface.ShadowX
	shadowPose.TranslateY += surface.ShadowY
	spread := cfg.Render.ShadowSpread
	corners := gamemath.ProjectCard(bounds.W+2*spread, bounds.H+2*spread, shadowPose, cfg.Render.Perspective)

	src := [4][2]float32{{1, 1}, {2, 1}, {2, 2}, {1, 2}}
	drawQuad(screen, getWhitePixel(), src, corners, cx, cy, 0, 0, 0, alpha)
}

func drawQuad(dst, src *ebiten.Image, srcPts [4][2]float32, corners [4]gamemath.Point, cx, cy float64, r, g, b, a float32) {
	for i, p := range corners {
		quadVertices[i] = ebiten.Vertex{
			DstX:   float32(cx + p.X),
			DstY:   float32(cy + p.Y),
			SrcX:   srcPts[i][0],
			SrcY:   srcPts[i][1],
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	dst.DrawTriangles(quadVertices, quadIndices, src, triOp)
}

// getWhitePixel returns a 1x1 white region at (1, 1) of a 3x3 image so
// linear filtering never samples past its edge.
func getWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(cfg.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

func scaleAlpha(c color.RGBA, a float32) color.RGBA {
	if a > 1 {
		a = 1
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(255 * a),
	}
}
