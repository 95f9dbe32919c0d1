package treesitter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Walk visits every node reachable from root in document (pre-order)
// order using an explicit stack, so traversal depth is bounded by heap
// allocation rather than goroutine stack growth on deeply nested trees.
// visit returns false to prune the subtree under a node.
func Walk(root *tree_sitter.Node, visit func(n *tree_sitter.Node) bool) {
	if root == nil {
		return
	}
	stack := []*tree_sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			continue
		}
		// Push children in reverse so the leftmost child pops first.
		for i := n.ChildCount(); i > 0; i-- {
			if c := n.Child(i - 1); c != nil {
				stack = append(stack, c)
			}
		}
	}
}

// collectKind returns all nodes of the given kind under root, in document
// order.
func collectKind(root *tree_sitter.Node, kind string) []*tree_sitter.Node {
	var nodes []*tree_sitter.Node
	Walk(root, func(n *tree_sitter.Node) bool {
		if n.Kind() == kind {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// containsKindSubstring reports whether any node under root has a kind
// containing the given substring.
func containsKindSubstring(root *tree_sitter.Node, sub string) bool {
	found := false
	Walk(root, func(n *tree_sitter.Node) bool {
		if found {
			return false
		}
		if strings.Contains(n.Kind(), sub) {
			found = true
			return false
		}
		return true
	})
	return found
}
