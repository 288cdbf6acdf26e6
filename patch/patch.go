// Package patch applies JSON patches to ir.Node trees.
//
// Merge applies an RFC 7386 merge patch, Apply an RFC 6902 operation
// list, and Diff produces the merge patch that turns one tree into
// another. Inputs are never mutated; results are freshly parsed trees.
package patch

import (
	"fmt"

	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/ir"
	"github.com/dynjson/go-dynjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Merge applies the RFC 7386 merge patch mergePatch to doc and returns
// the merged tree.
func Merge(doc, mergePatch *ir.Node) (*ir.Node, error) {
	docText, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	patchText, err := encode.String(mergePatch)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch([]byte(docText), []byte(patchText))
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return parse.Parse(merged)
}

// Apply applies the RFC 6902 operation list ops (as JSON text) to doc.
func Apply(doc *ir.Node, ops []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	docText, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	patched, err := p.Apply([]byte(docText))
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return parse.Parse(patched)
}

// Diff returns the RFC 7386 merge patch that transforms a into b, so
// that Merge(a, Diff(a, b)) equals b.
func Diff(a, b *ir.Node) (*ir.Node, error) {
	aText, err := encode.String(a)
	if err != nil {
		return nil, err
	}
	bText, err := encode.String(b)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch([]byte(aText), []byte(bText))
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return parse.Parse(d)
}
