package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxwalk/internal/ast"
	"loxwalk/internal/cfg"
	"loxwalk/internal/diag"
	"loxwalk/internal/parser"
	"loxwalk/internal/source"
)

func build(t *testing.T, src string) *cfg.Graph {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("<test>", []byte(src))
	file := fs.Get(fid)
	b := ast.NewBuilder(ast.Hints{}, nil)
	bag := diag.NewBag(64)
	prog := parser.ParseFile(file, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	require.True(t, bag.Len() == 0, "unexpected parse errors: %v", bag.Items())
	return cfg.Build(prog.Stmts, b)
}

func countLabels(g *cfg.Graph, label cfg.EdgeLabel) int {
	n := 0
	for _, e := range g.Edges {
		if e.Label == label {
			n++
		}
	}
	return n
}

func TestSingleStatementLinksEntryToEnd(t *testing.T) {
	g := build(t, "print 1;")
	require.Len(t, g.Nodes, 3)
	assert.Equal(t, cfg.EntryPoint, g.Nodes[0].Kind)
	assert.Equal(t, cfg.Statement, g.Nodes[1].Kind)
	assert.Equal(t, cfg.EndPoint, g.Nodes[2].Kind)
	require.Len(t, g.Edges, 2)
	assert.Equal(t, cfg.Unconditional, g.Edges[0].Label)
	assert.Equal(t, cfg.Unconditional, g.Edges[1].Label)
}

func TestBlockWrapsWithEnterAndLeave(t *testing.T) {
	g := build(t, "{ print 1; }")
	require.Len(t, g.Nodes, 4)
	assert.Equal(t, cfg.EnterBlock, g.Nodes[1].Kind)
	assert.Equal(t, cfg.Statement, g.Nodes[2].Kind)
	assert.Equal(t, cfg.LeaveBlock, g.Nodes[3].Kind)
}

func TestIfElseBranchesMergeAtEnd(t *testing.T) {
	g := build(t, "if true { print 1; } else { print 2; }")
	require.Len(t, g.Nodes, 9)
	assert.Equal(t, cfg.Condition, g.Nodes[1].Kind)
	assert.Equal(t, 1, countLabels(g, cfg.True))
	assert.Equal(t, 1, countLabels(g, cfg.False))
	require.Len(t, g.Edges, 9)
}

func TestIfWithoutElseFalseEdgeSkipsToMerge(t *testing.T) {
	g := build(t, "if true { print 1; }")
	// Entry, Condition, EnterBlock, Statement, LeaveBlock, End.
	require.Len(t, g.Nodes, 6)
	assert.Equal(t, 1, countLabels(g, cfg.True))
	assert.Equal(t, 1, countLabels(g, cfg.False))

	var falseEdge cfg.Edge
	for _, e := range g.Edges {
		if e.Label == cfg.False {
			falseEdge = e
		}
	}
	assert.Equal(t, cfg.EndPoint, g.Nodes[falseEdge.To].Kind, "no-else False edge should flow straight to the merge/end")
}

func TestWhileLoopBodyLoopsBackToCondition(t *testing.T) {
	g := build(t, "var i = 0; while i < 3 { print i; }")
	// Entry, Decl, Condition, EnterBlock, Statement, LeaveBlock, End.
	require.Len(t, g.Nodes, 7)
	require.Len(t, g.Edges, 7)

	condID := cfg.NodeID(2)
	require.Equal(t, cfg.Condition, g.Nodes[condID].Kind)

	var backEdge *cfg.Edge
	for i := range g.Edges {
		if g.Edges[i].To == condID && g.Edges[i].Label == cfg.Unconditional {
			backEdge = &g.Edges[i]
		}
	}
	require.NotNil(t, backEdge, "loop body should have an unconditional back edge to the condition")
	assert.Equal(t, cfg.LeaveBlock, g.Nodes[backEdge.From].Kind)
}

func TestEveryFrontierEdgeResolvesToEndPoint(t *testing.T) {
	g := build(t, "var x = 1; if x < 2 { x = x + 1; }")
	endID := cfg.NodeID(len(g.Nodes) - 1)
	require.Equal(t, cfg.EndPoint, g.Nodes[endID].Kind)

	reachesEnd := false
	for _, e := range g.Edges {
		if e.To == endID {
			reachesEnd = true
		}
	}
	assert.True(t, reachesEnd)
}
