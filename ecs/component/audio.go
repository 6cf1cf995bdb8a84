package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named players with per-frame Play/Stop request flags,
// consumed by the audio system.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()

// RequestPlay flags the named sound for playback this frame.
func (a *Audio) RequestPlay(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
		}
		return
	}
}
