package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quizbank/internal/draw"
	"quizbank/internal/question"
	"quizbank/internal/ui/quiz"
)

// runLiveQuiz runs the Bubble Tea quiz; tests replace it.
var runLiveQuiz = func(model quiz.Model, in io.Reader, out io.Writer) (quiz.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return model, err
	}
	finished, ok := final.(quiz.Model)
	if !ok {
		return model, fmt.Errorf("unexpected model type %T", final)
	}
	return finished, nil
}

func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
		limit := flags.Int("limit", 0, "Stop after this many questions (0 = all)")
		seed := flags.Uint64("seed", 0, "Seed for a reproducible draw order (0 = random)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default from config)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		set := map[string]bool{}
		flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

		bank, err := common.open(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		if !set["limit"] {
			*limit = bank.cfg.Quiz.Limit
		}
		if !set["seed"] {
			*seed = bank.cfg.Quiz.Seed
		}
		if !set["ui"] {
			*uiMode = bank.cfg.UI.Mode
		}
		if !set["no-color"] {
			*noColor = bank.cfg.UI.NoColor
		}
		if *limit < 0 {
			fmt.Fprintln(stderr, "--limit must be >= 0")
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, *common.verbose, stdout, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		records, err := bank.store.Load()
		if err != nil {
			fmt.Fprintf(stderr, "Take failed:\n%v\n", err)
			return ExitError
		}
		var opts []draw.Option
		if *seed != 0 {
			opts = append(opts, draw.WithSeed(*seed))
		}
		session := draw.NewSession(records, opts...)
		bank.log.Debug("quiz started",
			zap.Int("questions", len(records)),
			zap.Int("limit", *limit),
			zap.Uint64("seed", *seed),
			zap.Bool("live", decision.useLive),
		)

		var score quiz.Score
		if decision.useLive {
			model := quiz.NewModel(session, quiz.Options{NoColor: *noColor, Limit: *limit})
			finished, err := runLiveQuiz(model, stdin, stdout)
			if err != nil {
				fmt.Fprintf(stderr, "Take failed: %v\n", err)
				return ExitError
			}
			score = finished.Score()
		} else {
			score, err = runPlainQuiz(session, *limit, bufio.NewReader(stdin), stdout)
			if err != nil {
				fmt.Fprintf(stderr, "Take failed: %v\n", err)
				return ExitError
			}
		}
		bank.log.Debug("quiz finished", zap.Int("answered", score.Answered), zap.Int("correct", score.Correct))
		fmt.Fprintln(stdout, quiz.FormatScore(score))
		return ExitOK
	}
}

// runPlainQuiz asks questions line by line until the session is exhausted,
// the limit is reached, the user quits, or input ends.
func runPlainQuiz(session *draw.Session, limit int, reader *bufio.Reader, out io.Writer) (quiz.Score, error) {
	var score quiz.Score
	for limit == 0 || session.Drawn() < limit {
		record, err := session.Next()
		if errors.Is(err, draw.ErrExhausted) {
			fmt.Fprintln(out, "No more questions available.")
			return score, nil
		}
		fmt.Fprintf(out, "\nQuestion %d: %s\n", session.Drawn(), record.Question)
		for _, key := range question.Keys {
			fmt.Fprintf(out, "  %s) %s\n", key.Upper(), record.Choices[key])
		}

		outcome, quit, err := askPlain(record, reader, out)
		if err != nil {
			return score, err
		}
		if quit {
			return score, nil
		}
		score.Answered++
		if outcome.Verdict == question.Correct {
			score.Correct++
		}
		fmt.Fprintln(out, quiz.FormatOutcome(outcome, true))
	}
	return score, nil
}

// askPlain prompts until a gradable answer is given. quit is true when the
// user typed q or input ended.
func askPlain(record question.Record, reader *bufio.Reader, out io.Writer) (question.Outcome, bool, error) {
	for {
		fmt.Fprint(out, "Your answer (a-d, q to quit): ")
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return question.Outcome{}, false, err
		}
		input := strings.TrimSpace(line)
		if strings.EqualFold(input, "q") {
			return question.Outcome{}, true, nil
		}
		key, parseErr := question.ParseChoiceKey(input)
		if parseErr != nil {
			fmt.Fprintln(out, parseErr)
		} else if outcome := question.Check(record, key); outcome.Verdict != question.NoAnswerSelected {
			return outcome, false, nil
		} else if err == nil {
			fmt.Fprintln(out, quiz.FormatOutcome(outcome, true))
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return question.Outcome{}, true, nil
		}
	}
}
