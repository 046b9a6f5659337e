package calclang

import (
	"strconv"
	"strings"
)

type NodeKind uint8

const (
	NodeLiteral NodeKind = iota
	NodeAdd
	NodeSub
	NodeMul
	NodeDiv
)

// Node is a node in the syntax tree of an expression. The tree is strict:
// every node exclusively owns its children, and it is never mutated after
// parsing, only evaluated.
type Node struct {
	Kind  NodeKind
	Value float32

	Left  *Node
	Right *Node
}

func (n *Node) String() string {
	var sb strings.Builder
	n.fmt(&sb)
	return sb.String()
}

func (n *Node) fmt(sb *strings.Builder) {
	switch n.Kind {
	case NodeLiteral:
		sb.WriteString(strconv.FormatFloat(float64(n.Value), 'g', -1, 32))
		return
	case NodeAdd:
		n.fmtBinary(sb, " + ")
	case NodeSub:
		n.fmtBinary(sb, " - ")
	case NodeMul:
		n.fmtBinary(sb, " * ")
	case NodeDiv:
		n.fmtBinary(sb, " / ")
	default:
		sb.WriteString("<invalid>")
	}
}

func (n *Node) fmtBinary(sb *strings.Builder, op string) {
	sb.WriteString("(")
	n.Left.fmt(sb)
	sb.WriteString(op)
	n.Right.fmt(sb)
	sb.WriteString(")")
}
