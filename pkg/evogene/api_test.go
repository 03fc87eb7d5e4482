package evogene

import (
	"context"
	"strings"
	"testing"
)

func TestUnsupportedStrategyNamesFailFast(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want string
	}{
		{"crossover", Options{CrossoverType: "two_point"}, "unsupported crossover strategy"},
		{"mutation", Options{MutationType: "gaussian"}, "unsupported mutation strategy"},
		{"initializer", Options{InitializerType: "xavier"}, "unsupported initializer"},
	}
	for _, tc := range cases {
		_, err := NewVectorEvolver(8, tc.opts)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected %q in error, got %v", tc.name, tc.want, err)
		}
	}
}

func TestDefaultsProduceWorkingEvolver(t *testing.T) {
	e, err := NewVectorEvolver(8, Options{Seed: 5})
	if err != nil {
		t.Fatalf("new vector evolver: %v", err)
	}

	for round := 0; round < 3; round++ {
		for i := 0; i < 4; i++ {
			child, err := e.SpawnChild()
			if err != nil {
				t.Fatalf("spawn: %v", err)
			}
			priority := 0.0
			for _, v := range child {
				priority += v
			}
			if _, err := e.AddChild(child, priority); err != nil {
				t.Fatalf("add child: %v", err)
			}
		}
		stats, err := e.GenerationStats()
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if stats.Generation != round {
			t.Fatalf("expected generation %d, got %d", round, stats.Generation)
		}
		if err := e.UpdateParents(); err != nil {
			t.Fatalf("update parents: %v", err)
		}
	}
	if e.Generation() != 3 {
		t.Fatalf("expected generation 3, got %d", e.Generation())
	}
}

func TestZerosInitializerSelectableByName(t *testing.T) {
	e, err := NewVectorEvolver(6, Options{InitializerType: "zeros"})
	if err != nil {
		t.Fatalf("new vector evolver: %v", err)
	}
	for _, parent := range e.Parents() {
		for i, v := range parent {
			if v != 0 {
				t.Fatalf("element %d: expected 0, got %v", i, v)
			}
		}
	}
}

func TestMatrixEvolverFacade(t *testing.T) {
	m, err := NewMatrixEvolver([][]int{{2, 2}, {3}}, Options{Seed: 9})
	if err != nil {
		t.Fatalf("new matrix evolver: %v", err)
	}
	child, err := m.SpawnChild()
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if len(child) != 2 || child[0].Len() != 4 || child[1].Len() != 3 {
		t.Fatalf("unexpected child layout: %+v", child)
	}
	if _, err := m.AddChild(child, 1.0); err != nil {
		t.Fatalf("add child: %v", err)
	}
}

func TestRunnerFacadeEndToEnd(t *testing.T) {
	e, err := NewVectorEvolver(10, Options{Seed: 77})
	if err != nil {
		t.Fatalf("new vector evolver: %v", err)
	}
	r, err := NewRunner(e)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	result, err := r.Run(context.Background(), RunConfig{
		ChildrenPerGeneration: 8,
		Generations:           10,
		Fitness: func(_ context.Context, genome Vector) (float64, error) {
			total := 0.0
			for _, v := range genome {
				total += v
			}
			return total, nil
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.BestPriority <= 0 {
		t.Fatalf("expected positive best priority, got %v", result.BestPriority)
	}
	if r.History().Len() != 10 {
		t.Fatalf("expected 10 history entries, got %d", r.History().Len())
	}
}
