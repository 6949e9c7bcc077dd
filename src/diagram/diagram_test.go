package diagram

import "testing"

func buildSmall(t *testing.T) *Diagram {
	t.Helper()
	d := New("test")
	for _, n := range []Node{
		{ID: "a", Label: "A", Class: "start", X: 0, Y: 4, W: 2, H: 1},
		{ID: "b", Label: "B", Class: "decision", X: 0, Y: 2, W: 2, H: 1},
		{ID: "c", Label: "C", Class: "outcome", X: 0, Y: 0, W: 2, H: 1},
	} {
		if err := d.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	return d
}

func TestFlowOrderPreserved(t *testing.T) {
	d := buildSmall(t)
	if err := d.AddArrow("a", "b"); err != nil {
		t.Fatalf("AddArrow: %v", err)
	}
	if err := d.AddArrow("b", "c"); err != nil {
		t.Fatalf("AddArrow: %v", err)
	}
	arrows := d.Arrows()
	if len(arrows) != 2 || arrows[0].From != "a" || arrows[1].To != "c" {
		t.Fatalf("arrows = %+v", arrows)
	}
	nodes := d.Nodes()
	if len(nodes) != 3 || nodes[0].ID != "a" || nodes[2].ID != "c" {
		t.Fatalf("nodes out of order: %+v", nodes)
	}
}

func TestDuplicateNodeRejected(t *testing.T) {
	d := buildSmall(t)
	if err := d.AddNode(Node{ID: "a"}); err == nil {
		t.Fatal("expected duplicate node to be rejected")
	}
}

func TestMainFlowStaysAcyclic(t *testing.T) {
	d := buildSmall(t)
	if err := d.AddArrow("a", "b"); err != nil {
		t.Fatalf("AddArrow: %v", err)
	}
	if err := d.AddArrow("b", "c"); err != nil {
		t.Fatalf("AddArrow: %v", err)
	}
	if err := d.AddArrow("c", "a"); err == nil {
		t.Fatal("expected cycle-closing arrow to be rejected")
	}
}

func TestFeedbackAllowedToCloseCycle(t *testing.T) {
	d := buildSmall(t)
	if err := d.AddArrow("a", "b"); err != nil {
		t.Fatalf("AddArrow: %v", err)
	}
	if err := d.AddFeedback("b", "a"); err != nil {
		t.Fatalf("AddFeedback: %v", err)
	}
	arrows := d.Arrows()
	if !arrows[len(arrows)-1].Dashed {
		t.Fatal("feedback arrow should be dashed")
	}
	if err := d.AddFeedback("b", "missing"); err == nil {
		t.Fatal("expected error for unknown feedback target")
	}
}

func TestCenter(t *testing.T) {
	n := Node{X: 2, Y: 4, W: 4, H: 2}
	x, y := n.Center()
	if x != 4 || y != 5 {
		t.Fatalf("Center() = (%v, %v), want (4, 5)", x, y)
	}
}
