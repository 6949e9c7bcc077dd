// Package diagram models and renders the decision-framework flowchart. The
// main flow is held in a directed acyclic graph; the single adaptive-management
// feedback arrow is drawn as a dashed annotation outside the graph, since it
// intentionally closes a cycle.
package diagram

import (
	"fmt"

	"github.com/dominikbraun/graph"
)

// Node is one flowchart box with a fixed layout position (diagram units,
// origin bottom-left).
type Node struct {
	ID    string
	Label string
	Class string // palette class: start, assessment, decision, strategy, implementation, outcome
	X, Y  float64
	W, H  float64
}

// Arrow is a rendered connection between two anchor points.
type Arrow struct {
	From, To string
	Dashed   bool
}

// Diagram is an ordered flowchart: node and arrow order is render order.
type Diagram struct {
	Title  string
	nodes  []Node
	arrows []Arrow
	flow   graph.Graph[string, Node]
}

func New(title string) *Diagram {
	return &Diagram{
		Title: title,
		flow:  graph.New(func(n Node) string { return n.ID }, graph.Directed(), graph.PreventCycles()),
	}
}

// AddNode registers a box. Duplicate IDs are rejected.
func (d *Diagram) AddNode(n Node) error {
	if err := d.flow.AddVertex(n); err != nil {
		return fmt.Errorf("add node %s: %w", n.ID, err)
	}
	d.nodes = append(d.nodes, n)
	return nil
}

// AddArrow connects two nodes in the main flow. Both endpoints must exist and
// the connection must not close a cycle.
func (d *Diagram) AddArrow(from, to string) error {
	if err := d.flow.AddEdge(from, to); err != nil {
		return fmt.Errorf("add arrow %s -> %s: %w", from, to, err)
	}
	d.arrows = append(d.arrows, Arrow{From: from, To: to})
	return nil
}

// AddFeedback draws a dashed arrow outside the main flow (it may close a
// cycle, e.g. monitoring back to assessment). Endpoints must exist.
func (d *Diagram) AddFeedback(from, to string) error {
	if _, err := d.flow.Vertex(from); err != nil {
		return fmt.Errorf("feedback source %s: %w", from, err)
	}
	if _, err := d.flow.Vertex(to); err != nil {
		return fmt.Errorf("feedback target %s: %w", to, err)
	}
	d.arrows = append(d.arrows, Arrow{From: from, To: to, Dashed: true})
	return nil
}

// Node returns the node with the given ID.
func (d *Diagram) Node(id string) (Node, error) {
	n, err := d.flow.Vertex(id)
	if err != nil {
		return Node{}, fmt.Errorf("node %s: %w", id, err)
	}
	return n, nil
}

// Nodes returns the boxes in insertion (render) order.
func (d *Diagram) Nodes() []Node { return d.nodes }

// Arrows returns the connections in insertion (render) order.
func (d *Diagram) Arrows() []Arrow { return d.arrows }

// Center returns the center point of a node's box.
func (n Node) Center() (x, y float64) { return n.X + n.W/2, n.Y + n.H/2 }
