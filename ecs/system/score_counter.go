package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	scoreCounterPaddingX = 12.0
	scoreCounterPaddingY = 12.0
	scoreCounterSpacing  = 6.0
	scoreCounterTextW    = 96
	scoreCounterTextH    = 16
)

// ScoreCounterSystem keeps the HUD icon and "Score: N" text in the top-left
// corner, re-rendering the text image only when the score changes.
type ScoreCounterSystem struct{}

func NewScoreCounterSystem() *ScoreCounterSystem { return &ScoreCounterSystem{} }

func (s *ScoreCounterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	trackerEntity, ok := ecs.First(w, component.ScoreTrackerComponent.Kind())
	if !ok {
		return
	}
	tracker, _ := ecs.Get(w, trackerEntity, component.ScoreTrackerComponent.Kind())

	counterEntity, ok := ecs.First(w, component.ScoreCounterComponent.Kind())
	if !ok {
		return
	}
	counter, _ := ecs.Get(w, counterEntity, component.ScoreCounterComponent.Kind())

	var (
		iconTransform *component.Transform
		iconSprite    *component.Sprite
		textTransform *component.Transform
		textSprite    *component.Sprite
	)
	if iconEntity, ok := ecs.First(w, component.ScoreCounterIconComponent.Kind()); ok {
		iconTransform, _ = ecs.Get(w, iconEntity, component.TransformComponent.Kind())
		iconSprite, _ = ecs.Get(w, iconEntity, component.SpriteComponent.Kind())
	}
	if textEntity, ok := ecs.First(w, component.ScoreCounterTextComponent.Kind()); ok {
		textTransform, _ = ecs.Get(w, textEntity, component.TransformComponent.Kind())
		textSprite, _ = ecs.Get(w, textEntity, component.SpriteComponent.Kind())
	}

	if tracker == nil || counter == nil || iconTransform == nil || iconSprite == nil || iconSprite.Image == nil || textTransform == nil || textSprite == nil {
		return
	}

	if tracker.Score < 0 {
		tracker.Score = 0
	}

	nextText := fmt.Sprintf("Score: %d", tracker.Score)
	if textSprite.Image == nil || counter.RenderedText != nextText {
		textImage := ebiten.NewImage(scoreCounterTextW, scoreCounterTextH)
		ebitenutil.DebugPrintAt(textImage, nextText, 0, 0)
		textSprite.Image = textImage
		counter.RenderedText = nextText
	}

	iconH := float64(iconSprite.Image.Bounds().Dy())
	iconW := float64(iconSprite.Image.Bounds().Dx())
	iconTransform.X = scoreCounterPaddingX
	iconTransform.Y = scoreCounterPaddingY
	textTransform.X = scoreCounterPaddingX + iconW + scoreCounterSpacing
	textTransform.Y = scoreCounterPaddingY + (iconH-scoreCounterTextH)/2
}
