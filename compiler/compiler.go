package compiler

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rubiojr/ifexpr/ast"
	"github.com/rubiojr/ifexpr/chain"
	"github.com/rubiojr/ifexpr/macro"
	"github.com/rubiojr/ifexpr/parser"
	"github.com/rubiojr/ifexpr/printer"
)

// Compiler orchestrates the rewrite pipeline: parse, expand the macro,
// print.
type Compiler struct {
	// Macro is the module specifier the chain entry is imported from.
	// Defaults to macro.DefaultSource.
	Macro string
	// Log receives per-file and per-chain debug output.
	Log logrus.FieldLogger
}

// CompileResult holds the output of a compilation.
type CompileResult struct {
	Source     string // input text
	Output     string // rewritten text
	Chains     int    // number of chains rewritten
	SourceFile string // original filename
}

// Changed reports whether the rewrite altered the file.
func (r *CompileResult) Changed() bool { return r.Output != r.Source }

func (c *Compiler) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Compile reads a source file and rewrites its chains.
func (c *Compiler) Compile(filename string) (*CompileResult, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return c.CompileSource(filename, src)
}

// CompileSource rewrites the chains of src. filename is used for
// diagnostics only.
func (c *Compiler) CompileSource(filename string, src []byte) (*CompileResult, error) {
	log := c.logger().WithField("file", filename)

	f, err := parser.ParseFile(filename, src)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed")

	exp := &macro.Expander{Source: c.Macro, Log: log}
	if err := ast.Chain(exp).Transform(f); err != nil {
		var ce *chain.Error
		if errors.As(err, &ce) {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return nil, fmt.Errorf("%s: %s: %w", filename, exp.Name(), err)
	}

	out := printer.Print(f)
	log.WithField("chains", exp.Chains).Debug("rewritten")
	return &CompileResult{
		Source:     string(src),
		Output:     out,
		Chains:     exp.Chains,
		SourceFile: filename,
	}, nil
}

// Emit compiles a file and returns the rewritten source.
func (c *Compiler) Emit(filename string) (string, error) {
	result, err := c.Compile(filename)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}
