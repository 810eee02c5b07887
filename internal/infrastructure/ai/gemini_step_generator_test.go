package ai

import (
	"context"
	"errors"
	"testing"
)

func TestNewGeminiStepGenerator_MissingKey(t *testing.T) {
	_, err := NewGeminiStepGenerator(context.Background(), "", "")
	if !errors.Is(err, ErrMissingGeminiAPIKey) {
		t.Fatalf("expected ErrMissingGeminiAPIKey, got %v", err)
	}
}

func TestParseSteps(t *testing.T) {
	t.Run("numbered list", func(t *testing.T) {
		text := "Here is what to try:\n1. Check the charger.\n2) Reseat the battery.\n3 - Boot into Safe Mode."
		steps := ParseSteps(text)
		want := []string{"Check the charger.", "Reseat the battery.", "Boot into Safe Mode."}
		if len(steps) != len(want) {
			t.Fatalf("expected %d steps, got %v", len(want), steps)
		}
		for i := range want {
			if steps[i] != want[i] {
				t.Fatalf("step %d = %q, want %q", i, steps[i], want[i])
			}
		}
	})

	t.Run("out of order numbering is sorted", func(t *testing.T) {
		text := "2. Second thing.\n1. First thing.\n3. Third thing."
		steps := ParseSteps(text)
		if len(steps) != 3 || steps[0] != "First thing." || steps[2] != "Third thing." {
			t.Fatalf("unexpected steps: %v", steps)
		}
	})

	t.Run("step prefix stripped", func(t *testing.T) {
		text := "1. Step 1: Check the power cable.\n2. Step 2: Try another outlet."
		steps := ParseSteps(text)
		if len(steps) != 2 || steps[0] != "Check the power cable." {
			t.Fatalf("unexpected steps: %v", steps)
		}
	})

	t.Run("bullets as fallback", func(t *testing.T) {
		text := "Try the following:\n- Check the charger\n- Reseat the RAM\n* Update drivers"
		steps := ParseSteps(text)
		if len(steps) != 3 || steps[1] != "Reseat the RAM" {
			t.Fatalf("unexpected steps: %v", steps)
		}
	})

	t.Run("raw lines as last resort", func(t *testing.T) {
		text := "Check the charger\n\nReseat the battery\n"
		steps := ParseSteps(text)
		if len(steps) != 2 || steps[0] != "Check the charger" {
			t.Fatalf("unexpected steps: %v", steps)
		}
	})

	t.Run("continued markers skipped", func(t *testing.T) {
		text := "1. Check the charger.\n2. Continued from above.\n3. Reboot."
		steps := ParseSteps(text)
		if len(steps) != 2 || steps[1] != "Reboot." {
			t.Fatalf("unexpected steps: %v", steps)
		}
	})
}
