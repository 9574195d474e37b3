package vector

import (
	"context"
	"fmt"
	"sync"

	"github.com/jinzhu/copier"
)

// Animation is one named animation available on the robot.
type Animation struct {
	Name string
}

// AnimationTrigger is one named animation group; the robot picks a concrete
// animation when the trigger is played.
type AnimationTrigger struct {
	Name string
}

// AnimationLoader lists the robot's animations and triggers. It is invoked
// at most once per cache lifetime; the lists are assumed stable for the
// life of the connection.
type AnimationLoader func(ctx context.Context) ([]Animation, []AnimationTrigger, error)

// animationCache memoizes the robot's animation lists. Loading is lazy and
// single-flight; readers get defensive copies so cached state cannot be
// mutated from outside.
type animationCache struct {
	loader AnimationLoader

	mu       sync.Mutex
	loaded   bool
	names    []Animation
	triggers []AnimationTrigger
}

func newAnimationCache(loader AnimationLoader) *animationCache {
	return &animationCache{loader: loader}
}

func (c *animationCache) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	if c.loader == nil {
		return fmt.Errorf("no animation loader configured")
	}

	names, triggers, err := c.loader(ctx)
	if err != nil {
		return fmt.Errorf("failed to load animations: %w", err)
	}

	c.names = names
	c.triggers = triggers
	c.loaded = true
	return nil
}

func (c *animationCache) animations(ctx context.Context) ([]Animation, error) {
	if c == nil {
		return nil, fmt.Errorf("no animation loader configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return nil, err
	}

	var names []Animation
	copier.Copy(&names, c.names)
	return names, nil
}

func (c *animationCache) animationTriggers(ctx context.Context) ([]AnimationTrigger, error) {
	if c == nil {
		return nil, fmt.Errorf("no animation loader configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return nil, err
	}

	var triggers []AnimationTrigger
	copier.Copy(&triggers, c.triggers)
	return triggers, nil
}

// invalidate drops cached lists; the next read reloads.
func (c *animationCache) invalidate() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.loaded = false
	c.names = nil
	c.triggers = nil
}

// Animations lists the robot's animations, fetched through the configured
// loader on first use and cached until Close.
func (c *Client) Animations(ctx context.Context) ([]Animation, error) {
	if c == nil {
		return nil, fmt.Errorf("no animation loader configured")
	}
	return c.animations.animations(ctx)
}

// AnimationTriggers lists the robot's animation triggers, fetched through
// the configured loader on first use and cached until Close.
func (c *Client) AnimationTriggers(ctx context.Context) ([]AnimationTrigger, error) {
	if c == nil {
		return nil, fmt.Errorf("no animation loader configured")
	}
	return c.animations.animationTriggers(ctx)
}
