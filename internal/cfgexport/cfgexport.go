// Package cfgexport serializes an internal/cfg.Graph to msgpack, the way
// internal/driver's disk cache serializes ModuleMeta: a flat payload
// struct, encoded/decoded through msgpack.NewEncoder/NewDecoder.
package cfgexport

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"loxwalk/internal/ast"
	"loxwalk/internal/cfg"
)

// schemaVersion guards against decoding a payload written by an
// incompatible encoding of Graph.
const schemaVersion uint16 = 1

// NodePayload is the wire form of a cfg.Node.
type NodePayload struct {
	Kind uint8
	Stmt uint32
	Cond uint32
}

// EdgePayload is the wire form of a cfg.Edge.
type EdgePayload struct {
	From  uint32
	To    uint32
	Label uint8
}

// Payload is the wire form of a cfg.Graph, written with a schema version
// so --dump-cfg consumers can detect a stale cache.
type Payload struct {
	Schema uint16
	Nodes  []NodePayload
	Edges  []EdgePayload
}

// toPayload flattens a Graph's typed fields to their wire-friendly
// primitive counterparts.
func toPayload(g *cfg.Graph) *Payload {
	p := &Payload{
		Schema: schemaVersion,
		Nodes:  make([]NodePayload, len(g.Nodes)),
		Edges:  make([]EdgePayload, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		p.Nodes[i] = NodePayload{Kind: uint8(n.Kind), Stmt: uint32(n.Stmt), Cond: uint32(n.Cond)}
	}
	for i, e := range g.Edges {
		p.Edges[i] = EdgePayload{From: uint32(e.From), To: uint32(e.To), Label: uint8(e.Label)}
	}
	return p
}

func fromPayload(p *Payload) *cfg.Graph {
	g := &cfg.Graph{
		Nodes: make([]cfg.Node, len(p.Nodes)),
		Edges: make([]cfg.Edge, len(p.Edges)),
	}
	for i, n := range p.Nodes {
		g.Nodes[i] = cfg.Node{Kind: cfg.NodeKind(n.Kind), Stmt: ast.StmtID(n.Stmt), Cond: ast.ExprID(n.Cond)}
	}
	for i, e := range p.Edges {
		g.Edges[i] = cfg.Edge{From: cfg.NodeID(e.From), To: cfg.NodeID(e.To), Label: cfg.EdgeLabel(e.Label)}
	}
	return g
}

// Encode writes g to w as msgpack.
func Encode(w io.Writer, g *cfg.Graph) error {
	return msgpack.NewEncoder(w).Encode(toPayload(g))
}

// Decode reads a Graph previously written by Encode.
func Decode(r io.Reader) (*cfg.Graph, error) {
	var p Payload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("cfgexport: unsupported schema version %d (want %d)", p.Schema, schemaVersion)
	}
	return fromPayload(&p), nil
}
