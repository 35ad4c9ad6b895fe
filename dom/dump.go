package dom

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump renders a tree view of n for debugging:
//
//	.
//	└── <html> lang="en"
//	    └── <body>
//	        └── "Hello"
func Dump(n Node) string {
	root := tp.New()
	dumpNode(root, n)
	return root.String()
}

func dumpNode(branch tp.Tree, n Node) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case Text:
		branch.AddNode(fmt.Sprintf("%q", string(n)))
	case *VoidElement:
		branch.AddNode(label(&n.element) + " (void)")
	case *ContainerElement:
		sub := branch.AddBranch(label(&n.element))
		for _, child := range n.children {
			dumpNode(sub, child)
		}
	case *Embedded:
		branch.AddNode(fmt.Sprintf("embedded %T", n.r))
	}
}

func label(e *element) string {
	parts := []string{"<" + e.tag + ">"}
	for _, a := range e.attrs {
		parts = append(parts, a.String())
	}
	if e.style.Len() > 0 {
		parts = append(parts, "style{"+e.style.String()+"}")
	}
	return strings.Join(parts, " ")
}
