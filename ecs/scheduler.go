package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// DrawSystem renders from a world each frame. Systems may implement both.
type DrawSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Scheduler runs systems in a fixed order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

// Update runs all systems once.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Draw calls every system that also renders, in scheduler order.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, system := range s.systems {
		if ds, ok := system.(DrawSystem); ok {
			ds.Draw(w, screen)
		}
	}
}
