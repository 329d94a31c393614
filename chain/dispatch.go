package chain

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rubiojr/ifexpr/ast"
)

// Rewriter replaces every chain of one file.
type Rewriter struct {
	Log logrus.FieldLogger
}

// Rewrite resolves the chain opened by each entry reference, in the order
// given, and returns how many chains were replaced. refs must be in source
// order. References already consumed as part of an enclosing chain's
// arguments are skipped. The first error stops the rewrite; chains
// replaced before it stay replaced.
func (r *Rewriter) Rewrite(t Tree, refs []ast.Node) (int, error) {
	log := r.Log
	if log == nil {
		log = discardLogger
	}
	w := &walker{
		tree:      t,
		refs:      refs,
		processed: make(map[ast.Node]bool, len(refs)),
		factory:   ast.NewFactory(),
	}
	for _, ref := range refs {
		if w.processed[ref] {
			continue
		}
		before := w.replaced
		if err := w.resolve(ref); err != nil {
			return w.replaced, err
		}
		log.WithFields(logrus.Fields{
			"loc":    FormatLocation(t.Position(ref)),
			"chains": w.replaced - before,
		}).Debug("chain rewritten")
	}
	return w.replaced, nil
}

// Rewrite is a convenience for (&Rewriter{}).Rewrite.
func Rewrite(t Tree, refs []ast.Node) (int, error) {
	return (&Rewriter{}).Rewrite(t, refs)
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
