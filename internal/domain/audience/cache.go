package audience

import "time"

type Cache interface {
	Get(directive Directive) ([]string, bool)
	Set(directive Directive, ids []string, ttl time.Duration)
	Clear()
}

type noopCache struct{}

func (noopCache) Get(Directive) ([]string, bool) {
	return nil, false
}

func (noopCache) Set(Directive, []string, time.Duration) {}

func (noopCache) Clear() {}
