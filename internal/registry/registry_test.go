package registry

import (
	"testing"

	"github.com/vovakirdan/dropcatch/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub zz_stub"
		}
	}
	if !found {
		t.Error("List() should include the title of the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	Register("zz_order_b", func() Game { return stubGame{id: "zz_order_b"} })
	Register("zz_order_a", func() Game { return stubGame{id: "zz_order_a"} })

	var ids []string
	for _, info := range List() {
		if info.ID == "zz_order_a" || info.ID == "zz_order_b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "zz_order_b" || ids[1] != "zz_order_a" {
		t.Errorf("List() order = %v, expected registration order", ids)
	}
}
