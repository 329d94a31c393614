package ast

// Transform rewrites a file in place. A failing transform may leave the
// tree partially rewritten; callers must not print a file whose transform
// returned an error.
type Transform interface {
	Name() string
	Transform(f *File) error
}

// TransformFunc adapts a named function to the Transform interface.
type TransformFunc struct {
	N string
	F func(*File) error
}

func (t TransformFunc) Name() string            { return t.N }
func (t TransformFunc) Transform(f *File) error { return t.F(f) }

// Chain composes transforms left-to-right into a single Transform.
// Each transform sees the tree as left by the previous one; the first
// error stops the chain.
func Chain(transforms ...Transform) Transform {
	return TransformFunc{
		N: "chain",
		F: func(f *File) error {
			for _, t := range transforms {
				if err := t.Transform(f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
