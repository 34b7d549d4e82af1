package freelance

// Observer receives diagnostic events from report computation. The
// engine itself never logs: degraded records (dangling ids, malformed
// formulas) are reported here and the computation carries on. The zero
// option set installs a no-op observer.
type Observer interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopObserver struct{}

func (nopObserver) Debugf(string, ...any) {}
func (nopObserver) Warnf(string, ...any)  {}

// Nop returns an observer that discards everything.
func Nop() Observer { return nopObserver{} }

type options struct {
	obs Observer
}

// Option configures a report computation.
type Option func(*options)

// WithObserver routes diagnostic events to o.
func WithObserver(o Observer) Option {
	return func(opt *options) {
		if o != nil {
			opt.obs = o
		}
	}
}

func newOptions(opts []Option) options {
	o := options{obs: Nop()}
	for _, f := range opts {
		f(&o)
	}
	return o
}
