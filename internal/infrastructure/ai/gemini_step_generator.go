package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"laptopcare/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const defaultGeminiModel = "gemini-1.5-flash"

const promptTemplate = `You are a professional laptop repair assistant. Provide safe, practical,
step-by-step troubleshooting instructions for the user's issue. Always
start with the least invasive checks and escalate gradually. Number the steps.

DEVICE:
- Brand: %s
- Model: %s

USER ISSUE (verbatim):
%s

Constraints:
- Assume the user is non-technical; keep steps clear and short.
- Include checks like power, battery, cables, safe mode, drivers, OS updates where relevant.
- If a step could risk data loss, explicitly warn and suggest backups first.
- If hardware disassembly is required, say so clearly and advise caution.
- Finish with what to do if the issue persists.`

// fallbackSteps keeps problem creation usable when the model returns
// nothing parseable.
var fallbackSteps = []string{
	"Restart the laptop and observe if the issue persists.",
	"Check the power adapter and battery connection.",
	"Boot into Safe Mode and see if the problem occurs.",
	"Update or reinstall relevant drivers and the operating system.",
	"Back up important data before attempting any resets or repairs.",
	"If the issue continues, consult a certified engineer.",
}

// GeminiStepGenerator produces ordered troubleshooting instructions with
// the Gemini API.

type GeminiStepGenerator struct {
	client *genai.Client
	model  string
}

var _ interfaces.IStepGenerator = (*GeminiStepGenerator)(nil)

func NewGeminiStepGenerator(ctx context.Context, apiKey, model string) (*GeminiStepGenerator, error) {
	if apiKey == "" {
		log.Printf("[ai][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Printf("[ai][gateway] failed creating genai client err=%v", err)
		return nil, err
	}
	log.Printf("[ai][gateway] Gemini client initialized model=%s", model)

	return &GeminiStepGenerator{client: client, model: model}, nil
}

func (g *GeminiStepGenerator) GenerateSteps(ctx context.Context, laptopBrand, laptopModel, description string) ([]string, error) {
	prompt := fmt.Sprintf(promptTemplate, laptopBrand, laptopModel, description)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[ai][gateway] generate failed brand=%s model=%s err=%v", laptopBrand, laptopModel, err)
		return nil, err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		log.Printf("[ai][gateway] empty model response; using fallback steps")
		return fallbackSteps, nil
	}

	steps := ParseSteps(text)
	if len(steps) < 3 {
		steps = append(steps,
			"Back up important files.",
			"Check for OS and driver updates.",
			"If unresolved, schedule a session with an engineer.",
		)
	}
	log.Printf("[ai][gateway] generate success steps=%d", len(steps))
	return steps, nil
}

var (
	numberedLine   = regexp.MustCompile(`^\s*(\d+)[\.\)\-:\s]+(.*)$`)
	bulletLine     = regexp.MustCompile(`^\s*[\-•\*]\s+(.*)$`)
	stepPrefixLine = regexp.MustCompile(`(?i)^\s*(step\s*\d+[\.\):\-]?\s*)`)
)

// ParseSteps turns model output into an ordered instruction list. Explicit
// numbering wins; bullet lines are the fallback; as a last resort every
// non-empty line counts as a step. Leading "Step N" prefixes are stripped so
// instructions read cleanly on their own.
func ParseSteps(text string) []string {
	lines := make([]string, 0)
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	type numbered struct {
		n    int
		text string
	}
	nums := make([]numbered, 0)
	for _, ln := range lines {
		if m := numberedLine.FindStringSubmatch(ln); m != nil {
			n := 0
			fmt.Sscanf(m[1], "%d", &n)
			nums = append(nums, numbered{n: n, text: strings.TrimSpace(m[2])})
		}
	}
	if len(nums) > 0 {
		// Models occasionally emit steps out of order; sort by the number
		// they claim.
		sort.SliceStable(nums, func(i, j int) bool { return nums[i].n < nums[j].n })
		steps := make([]string, 0, len(nums))
		for _, s := range nums {
			if s.text == "" {
				continue
			}
			lower := strings.ToLower(s.text)
			if strings.HasPrefix(lower, "continued") || strings.HasPrefix(lower, "cont.") {
				continue
			}
			steps = append(steps, normalizeStep(s.text))
		}
		if len(steps) > 0 {
			return steps
		}
	}

	bullets := make([]string, 0)
	for _, ln := range lines {
		if m := bulletLine.FindStringSubmatch(ln); m != nil {
			bullets = append(bullets, normalizeStep(strings.TrimSpace(m[1])))
		}
	}
	if len(bullets) > 0 {
		return bullets
	}

	steps := make([]string, 0, len(lines))
	for _, ln := range lines {
		steps = append(steps, normalizeStep(ln))
	}
	return steps
}

func normalizeStep(s string) string {
	return strings.TrimSpace(stepPrefixLine.ReplaceAllString(s, ""))
}
