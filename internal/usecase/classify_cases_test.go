package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/cartlab/internal/domain"
)

func TestClassifyCases_Table(t *testing.T) {
	cases := []domain.Case{
		{Input: "123.45", Expect: domain.Expect(true)},
		{Input: "chicken", Expect: domain.Expect(false)},
		{Input: ""},
		{Input: "1.2.3"},
	}

	got, err := NewClassifyCases().Execute(context.Background(), cases)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type row struct {
		Input   string
		Numeric bool
		Failed  bool
	}
	var rows []row
	for _, r := range got {
		rows = append(rows, row{r.Input, r.Numeric, r.Failed()})
	}

	want := []row{
		{"123.45", true, false},
		{"chicken", false, false},
		{"", false, false},
		{"1.2.3", false, false},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyCases_ReportsFailedExpectation(t *testing.T) {
	got, err := NewClassifyCases().Execute(context.Background(), []domain.Case{
		{Input: "12a", Expect: domain.Expect(true)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got[0].Failed() {
		t.Fatalf("expected failed expectation, got %+v", got[0])
	}
}

func TestClassifyCases_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClassifyCases().Execute(ctx, []domain.Case{{Input: "1"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
