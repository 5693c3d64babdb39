package domain

import (
	"context"
	"sync"
	"time"
)

type Span struct {
	Name    string `json:"name"`
	startTs time.Time
	Elapsed *int64 `json:"elapsedMs"`
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

type profileKey string

const ContextProfileKey profileKey = "performanceProfile"

// Profile is an ordered list of spans timing the stages of one request.
// A nil *Profile is valid and records nothing.
type Profile struct {
	mu      sync.Mutex
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func WithProfile(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, p)
}

func ProfileFromContext(ctx context.Context) *Profile {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(ContextProfileKey).(*Profile)
	return p
}

func (p *Profile) End() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

// StartNewSpan ends the last span and begins a new one.
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if p == nil {
		return newSpan, newSpan.End
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

// Summary maps span name to elapsed milliseconds, for log fields.
func (p *Profile) Summary() map[string]int64 {
	out := map[string]int64{}
	if p == nil {
		return out
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.Spans {
		if s.Elapsed != nil {
			out[s.Name] += *s.Elapsed
		}
	}
	return out
}
