package eosim

// Builder assembles a Context from configuration, a logger, and a
// sequence of components: callers set up everything a run needs
// before calling Build, rather than mutating a live Context
// piecemeal.
type Builder struct {
	cfg        KernelConfig
	logger     Logger
	components []Component
}

// NewBuilder starts a Builder with cfg's tuning hints and logger. A
// nil logger defaults to a no-op logger.
func NewBuilder(cfg KernelConfig, logger Logger) *Builder {
	return &Builder{cfg: cfg, logger: logger}
}

// WithComponent appends component to the build order. Components are
// initialized in the order they were added to the Builder.
func (b *Builder) WithComponent(component Component) *Builder {
	b.components = append(b.components, component)
	return b
}

// Build returns a Context with every added component registered, but
// not yet started; call Run on the result to begin the simulation.
func (b *Builder) Build() *Context {
	ctx := NewContextWithConfig(b.cfg, b.logger)
	for _, component := range b.components {
		ctx.AddComponent(component)
	}
	return ctx
}
