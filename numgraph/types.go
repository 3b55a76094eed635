package numgraph

import (
	"github.com/katalvlaran/ifds/intset"
	"github.com/katalvlaran/ifds/relation"
)

// NumberedNodeManager resolves a caller's node identity to a dense
// nonnegative number, or -1 if the node is not registered. It also realizes
// a number back into a node identity, and enumerates every identity it has
// ever registered (spec.md §6/§4.3: "lazily realizes iterators from number
// sets"). Graph never registers nodes on its own behalf; registration is
// entirely the manager's responsibility.
type NumberedNodeManager[T comparable] interface {
	// Number returns n's assigned number, or -1 if n is unregistered.
	Number(n T) int
	// NodeFor realizes a number back into its node identity.
	NodeFor(number int) (T, bool)
	// AllNodes returns every registered identity, in registration order.
	AllNodes() []T
}

// Option configures a Graph before use.
type Option func(*graphConfig)

type graphConfig struct {
	audit      bool
	normalCase int
}

// WithAudit re-verifies the succ/pred/hasSuccessor invariants after every
// mutation, panicking with ContractViolationError on breach.
func WithAudit() Option {
	return func(c *graphConfig) { c.audit = true }
}

// WithNormalCase pre-sizes relation.Relation's implementation vector: the
// first n rows of succ/pred start with the simple row encoding (which still
// auto-promotes to sparse once a row outgrows it), the rest start with the
// sparse delegate. Mirrors spec.md §4.3's normalCase constructor parameter.
func WithNormalCase(n int) Option {
	return func(c *graphConfig) { c.normalCase = n }
}

// Graph is a SparseNumberedEdgeManager: a directed graph over node numbers
// resolved through a NumberedNodeManager[T].
type Graph[T comparable] struct {
	manager NumberedNodeManager[T]

	succ         *relation.Relation
	pred         *relation.Relation
	hasSuccessor intset.BitVector // bit x set ⇔ succ(x) ≠ ∅

	audit bool
}

// New creates a Graph backed by the given NumberedNodeManager.
func New[T comparable](manager NumberedNodeManager[T], opts ...Option) *Graph[T] {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var relOpts []relation.Option
	if cfg.normalCase > 0 {
		kinds := make([]relation.Kind, cfg.normalCase)
		for i := range kinds {
			kinds[i] = relation.Simple
		}
		relOpts = append(relOpts, relation.WithImplementationVector(kinds))
		relOpts = append(relOpts, relation.WithDelegate(relation.Sparse))
	}

	return &Graph[T]{
		manager: manager,
		succ:    relation.New(relOpts...),
		pred:    relation.New(relOpts...),
		audit:   cfg.audit,
	}
}
