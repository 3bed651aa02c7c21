// Command requestform fills in and submits a project request from the terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"project-request-backend/config"
	"project-request-backend/internal/domain"
	"project-request-backend/internal/form"
	"project-request-backend/pkg/client"
	"project-request-backend/pkg/logger"
	"project-request-backend/pkg/validation"
)

// maxLine bounds a single input line; the description may span many lines.
const maxLine = 1 << 20

// endOfText ends a multi-line answer.
const endOfText = "."

var prompts = map[string]string{
	"phone":       "Phone Number (optional)",
	"description": "Project Description (end with a line containing only " + endOfText + ")",
	"deadline":    "Deadline YYYY-MM-DD (optional)",
}

var multiline = map[string]bool{"description": true}

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "base URL of the project request API")
	logLevel := flag.String("log-level", "warn", "log level (debug|info|warn|error)")
	flag.Parse()

	logger.Init(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client.New(*apiURL), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api *client.Client, in io.Reader, out io.Writer) error {
	types, err := api.ProjectTypes(ctx)
	if err != nil {
		logger.Log.Warn("Could not load project types, using defaults", "error", err)
		types = config.DefaultSite().ProjectTypes
	}

	closed := false
	f := form.New(api, types, config.DefaultSite().FormNextSteps, func() { closed = true })
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	fmt.Fprintln(out, "Request a Project")
	fmt.Fprintln(out, strings.Repeat("=", 17))
	for _, field := range form.Fields {
		if err := ask(scanner, out, f, field); err != nil {
			return err
		}
	}

	for !closed {
		err := f.Submit(ctx)
		switch {
		case err == nil:
			fmt.Fprintln(out)
			fmt.Fprint(out, f.ConfirmationText())
			return f.Close()
		case errors.Is(err, form.ErrIncomplete):
			fmt.Fprintln(out, err)
			for _, field := range f.Missing() {
				if err := ask(scanner, out, f, field); err != nil {
					return err
				}
			}
		default:
			var submitErr *form.SubmitError
			if errors.As(err, &submitErr) {
				logger.Log.Error("Error submitting form", "error", submitErr.Err)
			}
			fmt.Fprintln(out, err)
			again, err := confirm(scanner, out, "Try again? [y/N]")
			if err != nil {
				return err
			}
			if !again {
				return f.Close()
			}
		}
	}
	return nil
}

// ask prompts for field until the form accepts the answer.
func ask(scanner *bufio.Scanner, out io.Writer, f *form.Form, field string) error {
	for {
		if field == "projectType" {
			printChoices(out, f.ProjectTypes())
		}
		fmt.Fprintf(out, "%s: ", label(field))
		if multiline[field] {
			fmt.Fprintln(out)
		}

		value, err := readAnswer(scanner, multiline[field])
		if err != nil {
			return err
		}
		if err := f.Set(field, value); err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		return nil
	}
}

// readAnswer reads one line, or with multi every line up to endOfText or
// EOF joined by newlines.
func readAnswer(scanner *bufio.Scanner, multi bool) (string, error) {
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if !multi {
			return strings.TrimSpace(line), nil
		}
		if line == endOfText {
			return strings.TrimSpace(strings.Join(lines, "\n")), nil
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if multi && len(lines) > 0 {
		return strings.TrimSpace(strings.Join(lines, "\n")), nil
	}
	return "", io.ErrUnexpectedEOF
}

func confirm(scanner *bufio.Scanner, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s ", question)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func printChoices(out io.Writer, types []domain.ProjectType) {
	for _, t := range types {
		fmt.Fprintf(out, "  %-6s %s\n", t.Value, t.OptionLabel())
	}
}

func label(field string) string {
	if p, ok := prompts[field]; ok {
		return p
	}
	if l, ok := validation.FieldLabels[field]; ok {
		return l
	}
	return field
}
