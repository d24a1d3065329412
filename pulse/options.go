package pulse

// ReentrantStrategy picks how a holder delivers a Set performed from inside
// one of its own change listeners.
type ReentrantStrategy uint8

const (
	// ReentrantQueue commits the value immediately but delays the
	// notification until the in-progress dispatch completes, FIFO.
	ReentrantQueue ReentrantStrategy = iota
	// ReentrantStack delivers the nested notification immediately; the outer
	// dispatch resumes only after it fully settles.
	ReentrantStack
)

type config[T any] struct {
	equals    EqualsFunc[T]
	strategy  ReentrantStrategy
	validator Validator[T]
	stateKey  string
}

type Option[T any] func(*config[T])

func newConfig[T any](opts []Option[T]) config[T] {
	cfg := config[T]{
		equals:   defaultEquals[T],
		strategy: ReentrantQueue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithEquals installs a custom comparator for change detection.
func WithEquals[T any](fn EqualsFunc[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.equals = fn
	}
}

// WithRefEquals compares by identity (== on boxed values).
func WithRefEquals[T any]() Option[T] {
	return func(cfg *config[T]) {
		cfg.equals = refEquals[T]
	}
}

// WithDeepEquals compares structurally via reflect.DeepEqual.
func WithDeepEquals[T any]() Option[T] {
	return func(cfg *config[T]) {
		cfg.equals = deepEquals[T]
	}
}

func WithReentrantStrategy[T any](strategy ReentrantStrategy) Option[T] {
	return func(cfg *config[T]) {
		cfg.strategy = strategy
	}
}

// WithValidator attaches a value validator, checked on every Set when
// assertions are compiled in. Only meaningful on Property.
func WithValidator[T any](v Validator[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.validator = v
	}
}

// WithStateKey names the holder for the instrumentation registry. Only
// meaningful on Property.
func WithStateKey[T any](key string) Option[T] {
	return func(cfg *config[T]) {
		cfg.stateKey = key
	}
}
