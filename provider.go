package styleprops

import "sync"

// Provider hands out one Session per theme, so requests styled with
// different themes never share a cache.
type Provider struct {
	mu       sync.Mutex
	opts     []Option
	sessions map[*Theme]*Session
}

// NewProvider creates a provider; opts apply to every session it creates.
func NewProvider(opts ...Option) *Provider {
	return &Provider{
		opts:     opts,
		sessions: make(map[*Theme]*Session),
	}
}

// Session returns the session for theme, creating it on first use. A nil
// theme means DefaultTheme().
func (p *Provider) Session(theme *Theme) *Session {
	if theme == nil {
		theme = DefaultTheme()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.sessions[theme]; ok {
		return s
	}
	s := NewSession(theme, p.opts...)
	p.sessions[theme] = s
	return s
}

// Resolve resolves props for tag in theme's session.
func (p *Provider) Resolve(theme *Theme, tag Tag, props Props) (*Element, error) {
	return p.Session(theme).Resolve(tag, props)
}

// Len returns the number of sessions.
func (p *Provider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sessions)
}
