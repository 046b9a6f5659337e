package calclang

// Evaluate computes the value of the tree in IEEE-754 single precision. It
// is a pure function of the tree's structure: the same tree evaluates to the
// same value every time. Division by zero yields an infinity or NaN, never
// an error.
func (n *Node) Evaluate() float32 {
	switch n.Kind {
	case NodeLiteral:
		return n.Value
	case NodeAdd:
		return n.Left.Evaluate() + n.Right.Evaluate()
	case NodeSub:
		return n.Left.Evaluate() - n.Right.Evaluate()
	case NodeMul:
		return n.Left.Evaluate() * n.Right.Evaluate()
	case NodeDiv:
		return n.Left.Evaluate() / n.Right.Evaluate()
	}
	panic("calclang: invalid node kind")
}
