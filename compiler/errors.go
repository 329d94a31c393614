package compiler

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// listFormat prints one error per line, without multierror's header.
func listFormat(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// appendError collects err into merr with the list format.
func appendError(merr *multierror.Error, err error) *multierror.Error {
	merr = multierror.Append(merr, err)
	merr.ErrorFormat = listFormat
	return merr
}
