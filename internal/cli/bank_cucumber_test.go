//go:build cucumber

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"quizbank/internal/question"
	"quizbank/internal/testutil"
)

// TestBankScenarios runs the question bank feature scenarios.
func TestBankScenarios(t *testing.T) {
	featurePath := filepath.Join("testdata", "features", "bank.feature")
	suite := godog.TestSuite{
		Name:                "question-bank",
		ScenarioInitializer: InitializeBankScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeBankScenario wires steps for question bank scenarios.
func InitializeBankScenario(ctx *godog.ScenarioContext) {
	state := &bankScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		return ctx, os.RemoveAll(state.dir)
	})

	ctx.Step(`^an empty question bank$`, state.givenEmptyBank)
	ctx.Step(`^a question bank with (\d+) questions whose answer is "([a-d])"$`, state.givenBank)
	ctx.Step(`^a question bank whose line (\d+) is "([^"]*)"$`, state.givenCorruptLine)
	ctx.Step(`^I add the question "([^"]+)" with choices "([^"]+)" and answer "([^"]+)"$`, state.whenIAdd)
	ctx.Step(`^I run "([^"]+)"$`, state.whenIRun)
	ctx.Step(`^I take the quiz answering "([^"]*)"$`, state.whenITake)
	ctx.Step(`^the command succeeds$`, state.thenSucceeds)
	ctx.Step(`^the command fails$`, state.thenFails)
	ctx.Step(`^the output contains "([^"]+)"$`, state.thenOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.thenErrorContains)
}

type bankScenarioState struct {
	dir    string
	bank   string
	stdout string
	stderr string
	code   int
}

// reset gives the scenario a fresh directory.
func (s *bankScenarioState) reset() error {
	dir, err := os.MkdirTemp("", "quizbank-feature-")
	if err != nil {
		return err
	}
	*s = bankScenarioState{dir: dir, bank: filepath.Join(dir, "bank.jsonl")}
	return nil
}

// run executes the CLI against the scenario bank.
func (s *bankScenarioState) run(input string, args ...string) {
	original := stdin
	stdin = strings.NewReader(input)
	defer func() { stdin = original }()

	var out, errOut bytes.Buffer
	s.code = Run(append(args, "--bank", s.bank), &out, &errOut)
	s.stdout += out.String()
	s.stderr += errOut.String()
}

func (s *bankScenarioState) givenEmptyBank() error {
	return nil
}

// givenBank writes count questions sharing one answer key.
func (s *bankScenarioState) givenBank(count int, answer string) error {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("00000000-0000-4000-8000-%012d", i+1)
		lines = append(lines, testutil.Line(id, fmt.Sprintf("Question %d", i+1), questionKey(answer)))
	}
	return os.WriteFile(s.bank, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

// givenCorruptLine writes a valid bank with one broken line.
func (s *bankScenarioState) givenCorruptLine(line int, content string) error {
	lines := make([]string, line)
	for i := range lines {
		id := fmt.Sprintf("00000000-0000-4000-8000-%012d", i+1)
		lines[i] = testutil.Line(id, fmt.Sprintf("Question %d", i+1), "a")
	}
	lines[line-1] = content
	return os.WriteFile(s.bank, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

func (s *bankScenarioState) whenIAdd(text, choices, answer string) error {
	parts := strings.Split(choices, ",")
	if len(parts) != 4 {
		return fmt.Errorf("expected 4 choices, got %d", len(parts))
	}
	s.run("", "add", "--question", text,
		"--a", parts[0], "--b", parts[1], "--c", parts[2], "--d", parts[3], "--answer", answer)
	if s.code != ExitOK {
		return fmt.Errorf("add failed with %d: %s", s.code, s.stderr)
	}
	return nil
}

func (s *bankScenarioState) whenIRun(command string) error {
	s.run("", strings.Fields(command)...)
	return nil
}

// whenITake answers questions in draw order from a comma separated list.
func (s *bankScenarioState) whenITake(answers string) error {
	input := strings.Join(strings.Split(answers, ","), "\n") + "\n"
	s.run(input, "take", "--ui", "plain", "--seed", "1")
	return nil
}

func (s *bankScenarioState) thenSucceeds() error {
	if s.code != ExitOK {
		return fmt.Errorf("expected exit %d, got %d: %s", ExitOK, s.code, s.stderr)
	}
	return nil
}

func (s *bankScenarioState) thenFails() error {
	if s.code == ExitOK {
		return fmt.Errorf("expected failure, got success: %s", s.stdout)
	}
	return nil
}

func (s *bankScenarioState) thenOutputContains(text string) error {
	if !strings.Contains(s.stdout, text) {
		return fmt.Errorf("expected %q in output %q", text, s.stdout)
	}
	return nil
}

func (s *bankScenarioState) thenErrorContains(text string) error {
	if !strings.Contains(s.stderr, text) {
		return fmt.Errorf("expected %q in error output %q", text, s.stderr)
	}
	return nil
}

func questionKey(raw string) question.ChoiceKey {
	return question.ChoiceKey(raw)
}
