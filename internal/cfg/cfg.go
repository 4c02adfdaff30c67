// Package cfg builds a control-flow graph over a parsed statement list.
// Its node/edge shape is grounded on internal/mir's BlockID-indexed node
// list and discriminated terminator (block.go/terminator.go), rewritten
// to the AST-level node kinds spec'd for this interpreter: no lowering
// to an intermediate representation, no instructions.
package cfg

import "loxwalk/internal/ast"

// NodeID indexes into Graph.Nodes.
type NodeID uint32

// NodeKind tags which node variant a Node is.
type NodeKind uint8

const (
	EntryPoint NodeKind = iota
	EndPoint
	EnterBlock
	LeaveBlock
	Statement
	Condition
)

func (k NodeKind) String() string {
	switch k {
	case EntryPoint:
		return "EntryPoint"
	case EndPoint:
		return "EndPoint"
	case EnterBlock:
		return "EnterBlock"
	case LeaveBlock:
		return "LeaveBlock"
	case Statement:
		return "Statement"
	case Condition:
		return "Condition"
	default:
		return "Unknown"
	}
}

// EdgeLabel tags an edge's role out of its source node.
type EdgeLabel uint8

const (
	Unconditional EdgeLabel = iota
	True
	False
)

func (l EdgeLabel) String() string {
	switch l {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "Unconditional"
	}
}

// Node is one CFG vertex. Stmt is meaningful for Statement, Cond for
// Condition; both are the zero value (NoStmtID/NoExprID) otherwise.
type Node struct {
	Kind NodeKind
	Stmt ast.StmtID
	Cond ast.ExprID
}

// Edge is a directed, labeled arc between two nodes.
type Edge struct {
	From  NodeID
	To    NodeID
	Label EdgeLabel
}

// Graph is the CFG produced by Build: a flat node list plus the edges
// between them.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

func (g *Graph) addNode(n Node) NodeID {
	g.Nodes = append(g.Nodes, n)
	return NodeID(len(g.Nodes) - 1)
}

func (g *Graph) addEdge(from, to NodeID, label EdgeLabel) {
	g.Edges = append(g.Edges, Edge{From: from, To: to, Label: label})
}

// frontierEdge is an open predecessor awaiting its outgoing edge's
// destination: the (block_id, edge_label) pair from spec.md §4.7.
type frontierEdge struct {
	From  NodeID
	Label EdgeLabel
}

// connect draws, for every open predecessor in frontier, an edge to to
// carrying that predecessor's own pending label.
func connect(g *Graph, frontier []frontierEdge, to NodeID) {
	for _, f := range frontier {
		g.addEdge(f.From, to, f.Label)
	}
}

// Build constructs the CFG for a top-level statement list.
func Build(stmts []ast.StmtID, b *ast.Builder) *Graph {
	g := &Graph{}
	entry := g.addNode(Node{Kind: EntryPoint})
	frontier := []frontierEdge{{From: entry, Label: Unconditional}}

	frontier = walkSeq(g, b, stmts, frontier)

	end := g.addNode(Node{Kind: EndPoint})
	connect(g, frontier, end)
	return g
}

func walkSeq(g *Graph, b *ast.Builder, stmts []ast.StmtID, frontier []frontierEdge) []frontierEdge {
	for _, id := range stmts {
		frontier = walkStmt(g, b, id, frontier)
	}
	return frontier
}

func walkStmt(g *Graph, b *ast.Builder, id ast.StmtID, frontier []frontierEdge) []frontierEdge {
	node := b.Stmts.Get(id)
	switch node.Kind {
	case ast.StmtBlockKind:
		return walkBlock(g, b, id, frontier)
	case ast.StmtIfElseKind:
		return walkIfElse(g, b, id, frontier)
	case ast.StmtWhileKind:
		return walkWhile(g, b, id, frontier)
	default:
		// ExprStmt, Print, and Declaration are all leaf statements for
		// control-flow purposes: one node, no branching.
		n := g.addNode(Node{Kind: Statement, Stmt: id})
		connect(g, frontier, n)
		return []frontierEdge{{From: n, Label: Unconditional}}
	}
}

func walkBlock(g *Graph, b *ast.Builder, id ast.StmtID, frontier []frontierEdge) []frontierEdge {
	data, _ := b.Stmts.Block(id)

	enter := g.addNode(Node{Kind: EnterBlock})
	connect(g, frontier, enter)

	inner := make([]ast.StmtID, data.Count)
	for i := uint32(0); i < data.Count; i++ {
		inner[i] = ast.StmtID(uint32(data.Start) + i)
	}
	innerFrontier := walkSeq(g, b, inner, []frontierEdge{{From: enter, Label: Unconditional}})

	leave := g.addNode(Node{Kind: LeaveBlock})
	connect(g, innerFrontier, leave)
	return []frontierEdge{{From: leave, Label: Unconditional}}
}

func walkIfElse(g *Graph, b *ast.Builder, id ast.StmtID, frontier []frontierEdge) []frontierEdge {
	data, _ := b.Stmts.IfElse(id)

	cond := g.addNode(Node{Kind: Condition, Cond: data.Condition})
	connect(g, frontier, cond)

	thenFrontier := walkStmt(g, b, data.IfBranch, []frontierEdge{{From: cond, Label: True}})

	var elseFrontier []frontierEdge
	if data.HasElse {
		elseFrontier = walkStmt(g, b, data.ElseBranch, []frontierEdge{{From: cond, Label: False}})
	} else {
		elseFrontier = []frontierEdge{{From: cond, Label: False}}
	}

	return append(thenFrontier, elseFrontier...)
}

func walkWhile(g *Graph, b *ast.Builder, id ast.StmtID, frontier []frontierEdge) []frontierEdge {
	data, _ := b.Stmts.While(id)

	cond := g.addNode(Node{Kind: Condition, Cond: data.Condition})
	connect(g, frontier, cond)

	bodyFrontier := walkStmt(g, b, data.Body, []frontierEdge{{From: cond, Label: True}})
	// Body leaves loop back to the header unconditionally, per spec.
	connect(g, bodyFrontier, cond)

	return []frontierEdge{{From: cond, Label: False}}
}
