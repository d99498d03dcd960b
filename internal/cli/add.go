package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"quizbank/internal/question"
)

// recordFlags are the per-field flags shared by add and edit.
type recordFlags struct {
	question *string
	choices  map[question.ChoiceKey]*string
	answer   *string
}

func addRecordFlags(flags *flag.FlagSet) recordFlags {
	fields := recordFlags{
		question: flags.String("question", "", "Question text"),
		choices:  make(map[question.ChoiceKey]*string, len(question.Keys)),
		answer:   flags.String("answer", "", "Correct choice (a|b|c|d)"),
	}
	for _, key := range question.Keys {
		fields.choices[key] = flags.String(string(key), "", fmt.Sprintf("Choice %s text", key.Upper()))
	}
	return fields
}

// fill builds a record from base, letting set flags win and prompting for
// any field still empty. When prompt is false, empty fields keep base values.
func (f recordFlags) fill(base question.Record, reader *bufio.Reader, out io.Writer, prompt bool) (question.Record, error) {
	record := base.Clone()
	if record.Choices == nil {
		record.Choices = make(map[question.ChoiceKey]string, len(question.Keys))
	}
	field := func(label, flagValue, current string, check func(string) error) (string, error) {
		if value := strings.TrimSpace(flagValue); value != "" {
			if check == nil {
				return value, nil
			}
			checkErr := check(value)
			if checkErr == nil {
				return value, nil
			}
			if !prompt {
				return "", checkErr
			}
			fmt.Fprintln(out, checkErr)
		} else if !prompt {
			return current, nil
		}
		return promptString(reader, out, label, current, check)
	}

	var err error
	if record.Question, err = field("Question", *f.question, record.Question, nil); err != nil {
		return question.Record{}, err
	}
	for _, key := range question.Keys {
		value, err := field("Choice "+key.Upper(), *f.choices[key], record.Choices[key], nil)
		if err != nil {
			return question.Record{}, err
		}
		record.Choices[key] = value
	}
	answer, err := field("Correct answer (a-d)", *f.answer, string(record.Answer), choiceKeyCheck)
	if err != nil {
		return question.Record{}, err
	}
	key, err := question.ParseChoiceKey(answer)
	if err != nil {
		return question.Record{}, err
	}
	record.Answer = key
	return record, nil
}

// anySet reports whether any field flag was given.
func (f recordFlags) anySet() bool {
	if strings.TrimSpace(*f.question) != "" || strings.TrimSpace(*f.answer) != "" {
		return true
	}
	for _, value := range f.choices {
		if strings.TrimSpace(*value) != "" {
			return true
		}
	}
	return false
}

func runAdd(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
		fields := addRecordFlags(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := common.open(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Add failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		record, err := fields.fill(question.Record{}, bufio.NewReader(stdin), stdout, true)
		if err != nil {
			fmt.Fprintf(stderr, "Add failed: %v\n", err)
			return ExitError
		}
		stored, err := bank.store.Append(record)
		if err != nil {
			fmt.Fprintf(stderr, "Add failed:\n%v\n", err)
			return ExitError
		}
		bank.log.Debug("question appended", zap.String("id", stored.ID), zap.String("bank", bank.store.Path()))
		fmt.Fprintf(stdout, "Added question %s\n", stored.ID)
		return ExitOK
	}
}
