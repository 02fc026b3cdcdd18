package ast

import (
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Printf("(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(list[i], level+1)
		}

	case NodeTypeNumber, NodeTypeIdentifier:
		fmt.Printf("%#v (%v)\n", n.v, n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node back into source text representation
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte("()")
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		if level == 0 && n.Token() == nil {
			// the root list is a container for top-level expressions, not
			// a parenthesized form of its own
			return []byte(strings.Join(nodes, " "))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case NodeTypeNumber:
		return []byte(fmt.Sprintf("%d", n.Int64()))

	case NodeTypeIdentifier:
		return []byte(n.Name())

	default:
		panic("unknown node type")
	}
}
