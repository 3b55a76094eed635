package relation

// Option configures a Relation before use, in the functional-options idiom.
type Option func(*Relation)

// WithImplementationVector assigns a preferred starting encoding to rows
// 0..len(kinds)-1. Rows at or beyond len(kinds) start with the delegate
// encoding (WithDelegate, default Simple).
func WithImplementationVector(kinds []Kind) Option {
	return func(r *Relation) {
		r.implVector = append([]Kind(nil), kinds...)
	}
}

// WithDelegate sets the starting encoding for rows beyond the implementation
// vector's declared range. Default is Simple.
func WithDelegate(k Kind) Option {
	return func(r *Relation) { r.delegate = k }
}

// Relation is a BinaryNaturalRelation: a set of (x, y) pairs over small
// nonnegatives, dense in x and sparse in y.
type Relation struct {
	rows       []row // rows[x], nil meaning Y_x = ∅; not shrunk on removeAll
	implVector []Kind
	delegate   Kind
}

// New creates an empty Relation.
func New(opts ...Option) *Relation {
	r := &Relation{delegate: Simple}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// startKind returns the starting encoding for row x.
func (r *Relation) startKind(x int) Kind {
	if x < len(r.implVector) {
		return r.implVector[x]
	}
	return r.delegate
}
