package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const ContextProfileKey = "performanceProfile"

func NewPerformanceProfile() *PerformanceProfile {
	return &PerformanceProfile{
		StartTime: time.Now(),
	}
}

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

// GetPerformanceProfile returns the profile installed by the caller,
// or nil when there is none (the CLI path doesn't install one).
func GetPerformanceProfile(ctx context.Context) *PerformanceProfile {
	profile, ok := ctx.Value(ContextProfileKey).(*PerformanceProfile)
	if !ok {
		return nil
	}
	return profile
}

func (p *PerformanceProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

// Add is a no-op on a nil profile so pipeline code can record events
// without caring whether anyone asked for timings.
func (p *PerformanceProfile) Add(name string) {
	if p == nil {
		return
	}
	if len(p.Events) == 0 {
		p.Events = append(p.Events, PerformanceProfileEvent{
			Name:      name,
			ElapsedMs: 0,
			Time:      time.Now(),
		})
	}
	lastEvent := p.Events[len(p.Events)-1]
	now := time.Now()
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: time.Since(lastEvent.Time).Milliseconds(),
		Time:      now,
	})
}

func (p PerformanceProfile) Print() {
	p.End()
	bytes, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}
