package smartopts

import (
	"testing"
)

func TestPositionalSingle(t *testing.T) {
	s, _, _ := newTestEngine(false)

	var posArg1 string
	if err := s.AddPositionalArgument("posArg_1", "Positional Argument 1", &posArg1); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}

	status := s.ProcessCommandArgs([]string{"SmartOptions", "PositionArgument-1"})
	if status != Success {
		t.Fatalf("expected Success, got %v", status)
	}
	if posArg1 != "PositionArgument-1" {
		t.Errorf("expected posArg1='PositionArgument-1', got %q", posArg1)
	}
}

func TestPositionalPairInOrder(t *testing.T) {
	s, _, _ := newTestEngine(false)

	var posArg1, posArg2 string
	if err := s.AddPositionalArgument("posArg_1", "Positional Argument 1", &posArg1); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}
	if err := s.AddPositionalArgument("posArg_2", "Positional Argument 2", &posArg2); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}

	status := s.ProcessCommandArgs([]string{"SmartOptions", "A", "B"})
	if status != Success {
		t.Fatalf("expected Success, got %v", status)
	}
	if posArg1 != "A" || posArg2 != "B" {
		t.Errorf("expected A/B in declaration order, got %q/%q", posArg1, posArg2)
	}
}

func TestPositionalOverSupply(t *testing.T) {
	s, _, _ := newTestEngine(false)

	var posArg1 string
	if err := s.AddPositionalArgument("posArg_1", "Positional Argument 1", &posArg1); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}

	status := s.ProcessCommandArgs([]string{"SmartOptions", "PositionArgument-1", "PositionArgument-2"})
	if status != InvalidNumberOfArguments {
		t.Fatalf("expected InvalidNumberOfArguments, got %v", status)
	}
	// The declared slot is still filled; only the surplus failed the call.
	if posArg1 != "PositionArgument-1" {
		t.Errorf("expected filled slot to survive the failure, got %q", posArg1)
	}
}

func TestPositionalUnderSupply(t *testing.T) {
	s, _, _ := newTestEngine(false)

	var posArg1, posArg2 string
	if err := s.AddPositionalArgument("posArg_1", "Positional Argument 1", &posArg1); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}
	if err := s.AddPositionalArgument("posArg_2", "Positional Argument 2", &posArg2); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}

	status := s.ProcessCommandArgs([]string{"SmartOptions", "PositionArgument-1"})
	if status != InvalidNumberOfArguments {
		t.Fatalf("expected InvalidNumberOfArguments, got %v", status)
	}
	if posArg1 != "PositionArgument-1" {
		t.Errorf("expected supplied slot to be populated, got %q", posArg1)
	}
	if posArg2 != "" {
		t.Errorf("expected unsupplied slot to keep its sentinel, got %q", posArg2)
	}
}

func TestPositionalsInterleavedWithDashed(t *testing.T) {
	s, _, _ := newTestEngine(false)

	var verbose bool
	var output, src, dst string
	if err := s.AddFlag('v', "verbose", "Verbose output", &verbose); err != nil {
		t.Fatalf("AddFlag failed: %v", err)
	}
	if err := s.AddOption('o', "output", "FILE", "Output file", &output); err != nil {
		t.Fatalf("AddOption failed: %v", err)
	}
	if err := s.AddPositionalArgument("SOURCE", "Source path", &src); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}
	if err := s.AddPositionalArgument("DEST", "Destination path", &dst); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}

	status := s.ProcessCommandArgs([]string{"prog", "a.txt", "-v", "-o", "log.txt", "b.txt"})
	if status != Success {
		t.Fatalf("expected Success, got %v", status)
	}
	if !verbose {
		t.Error("expected verbose flag set")
	}
	if output != "log.txt" {
		t.Errorf("expected output='log.txt', got %q", output)
	}
	if src != "a.txt" || dst != "b.txt" {
		t.Errorf("expected positionals a.txt/b.txt, got %q/%q", src, dst)
	}
}

// TestOptionValueNotCountedAsPositional pins the look-ahead rule: a token
// consumed as a separated option value never reaches the positional
// consumer, even if it looks like one.
func TestOptionValueNotCountedAsPositional(t *testing.T) {
	s, _, _ := newTestEngine(false)

	var output, pos string
	if err := s.AddOption('o', "", "FILE", "Output file", &output); err != nil {
		t.Fatalf("AddOption failed: %v", err)
	}
	if err := s.AddPositionalArgument("ARG", "help", &pos); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}

	status := s.ProcessCommandArgs([]string{"prog", "-o", "value", "actual"})
	if status != Success {
		t.Fatalf("expected Success, got %v", status)
	}
	if output != "value" || pos != "actual" {
		t.Errorf("got output=%q pos=%q", output, pos)
	}
}

func TestEmptyTokenIsPositional(t *testing.T) {
	s, _, _ := newTestEngine(false)

	var pos string
	if err := s.AddPositionalArgument("ARG", "help", &pos); err != nil {
		t.Fatalf("AddPositionalArgument failed: %v", err)
	}

	status := s.ProcessCommandArgs([]string{"prog", ""})
	if status != Success {
		t.Fatalf("expected Success, got %v", status)
	}
	if pos != "" {
		t.Errorf("expected empty positional value, got %q", pos)
	}
}
