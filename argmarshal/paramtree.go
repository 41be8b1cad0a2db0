// Package argmarshal lowers a language-agnostic parameter tree into a
// stack-loading prelude script (spec.md §4.1, C1).
//
// Grounded on internal/ethapi/transaction_args.go + transaction_make.go:
// that pair first captures a raw, loosely-typed argument struct
// (TransactionArgs) and then, in a second pass, dispatches on which
// fields are actually present to build one of several concrete output
// shapes (LegacyTx / AccessListTx / DynamicFeeTx). ParamTree plays the
// role of the raw args; ConvertArgument plays transactionOfRegister's role of
// picking a concrete shape; Lower plays NewTx's role of producing the
// final on-the-wire form.
package argmarshal

import "github.com/probeum/neovm-debugger/common"

// Node is one ParamTree node, per spec.md §4.1 ("node kinds
// {Numeric, Boolean, Null, String, Composite}; composite nodes have
// ordered children").
type Node struct {
	Kind     common.ParamKind
	Value    string
	Children []*Node
	// Null marks an explicitly null-valued leaf, independent of Kind —
	// spec.md §4.1's conversion rules fire on "Null or null-valued leaf"
	// as two distinct triggers for the same outcome.
	Null bool
}

// Leaf builds a non-composite node.
func Leaf(kind common.ParamKind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// NullLeaf builds an explicitly-null leaf.
func NullLeaf() *Node {
	return &Node{Kind: common.ParamNull, Null: true}
}

// Composite builds a composite node from ordered children.
func Composite(children ...*Node) *Node {
	return &Node{Kind: common.ParamComposite, Children: children}
}
