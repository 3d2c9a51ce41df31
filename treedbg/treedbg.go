/*
Package treedbg implements helpers to debug a forest.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treedbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/forest/tree"
	tp "github.com/xlab/treeprint"
)

// Sprint renders a forest as an indented text tree, one line per node.
// label produces the text for a node's record; if it is nil, records are
// printed with %v.
func Sprint[R any](f tree.Forest[R], label func(R) string) string {
	if label == nil {
		label = func(r R) string { return fmt.Sprintf("%v", r) }
	}
	header := fmt.Sprintf("Forest(roots=%d, nodes=%d)\n", len(f), f.Size())
	printer := tp.New()
	for _, root := range f {
		printNode(printer, root, label)
	}
	return header + printer.String()
}

// Fprint writes the output of Sprint to w.
func Fprint[R any](w io.Writer, f tree.Forest[R], label func(R) string) error {
	_, err := io.WriteString(w, Sprint(f, label))
	return err
}

func printNode[R any](printer tp.Tree, node *tree.Node[R], label func(R) string) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		printer.AddNode(label(node.Record))
		return
	}
	branch := printer.AddBranch(label(node.Record))
	for _, ch := range node.Children() {
		printNode(branch, ch, label)
	}
}
