package ast

import (
	"errors"
	"fmt"

	"github.com/lisper-lang/lisper/lexer"
)

// Node represents a leaf or a branch of the AST. The variant set is closed:
// a node is a number literal, an identifier or a list.
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewNumber creates and returns an orphaned number literal node
func NewNumber(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeNumber, tok, v)
}

// NewIdentifier creates and returns an orphaned identifier node. The name is
// never empty: the lexer only emits identifiers starting with a letter.
func NewIdentifier(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeIdentifier, tok, name)
}

// NewList creates and returns an empty node of type "list"
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Int64 returns the value of a number literal node
func (n Node) Int64() int64 {
	return n.v.(int64)
}

// Name returns the name of an identifier node
func (n Node) Name() string {
	return n.v.(string)
}

// List returns all the children elements of the node, in source order
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.v)
}

// Push appends a child node to a parent node of type "list". Each list
// exclusively owns its children: pushing re-parents the child.
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		node.p = n
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

func (n *Node) Parent() *Node {
	return n.p
}
