package entity

import (
	"fmt"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// buildAudio turns prefab audio specs into an Audio component with one
// loaded player per named sound.
func buildAudio(specs []prefabs.AudioSpec) (*component.Audio, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	audioComp := &component.Audio{}
	for _, spec := range specs {
		player, err := assets.LoadAudioPlayer(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("audio %q: %w", spec.Name, err)
		}
		volume := spec.Volume
		if volume <= 0 {
			volume = 1
		}
		audioComp.Names = append(audioComp.Names, spec.Name)
		audioComp.Players = append(audioComp.Players, player)
		audioComp.Volume = append(audioComp.Volume, volume)
		audioComp.Play = append(audioComp.Play, false)
		audioComp.Stop = append(audioComp.Stop, false)
	}
	return audioComp, nil
}
