package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.png *.wav
var assetsFS embed.FS

var audioContext = audio.NewContext(44100)

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAudioPlayer decodes an embedded wav asset into a reusable player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}

	if !strings.HasSuffix(strings.ToLower(clean), ".wav") {
		return nil, fmt.Errorf("assets: %s: only wav audio is embedded", path)
	}
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %s: %w", path, err)
	}
	return audioContext.NewPlayer(stream)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return filepath.Base(s)
}
