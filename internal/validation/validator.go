package validation

// Validator runs move and full-tree checks against a compatibility policy.
// It holds no per-call state and is safe for concurrent use as long as
// callers do not mutate the forest being validated.
type Validator struct {
	policy         Policy
	depthThreshold int
}

// Option configures a Validator.
type Option func(*Validator)

// WithPolicy replaces the default compatibility table.
func WithPolicy(p Policy) Option {
	return func(v *Validator) {
		if p.allowed != nil {
			v.policy = p
		}
	}
}

// WithDepthThreshold sets the depth at which warnings are emitted.
// Non-positive values keep the default.
func WithDepthThreshold(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.depthThreshold = n
		}
	}
}

// New returns a Validator using DefaultPolicy and DefaultDepthThreshold
// unless overridden by opts.
func New(opts ...Option) *Validator {
	v := &Validator{
		policy:         DefaultPolicy(),
		depthThreshold: DefaultDepthThreshold,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Policy returns the compatibility table in use.
func (v *Validator) Policy() Policy {
	return v.policy
}

// DepthThreshold returns the depth at which warnings start.
func (v *Validator) DepthThreshold() int {
	return v.depthThreshold
}
