// Package shell implements the interactive registration menu.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/response"
	"github.com/stemsi/registrar/internal/service"
)

// Menu choices.
const (
	ChoiceAllCourses       = 1
	ChoiceAvailableCourses = 2
	ChoiceRegister         = 3
	ChoiceDrop             = 4
	ChoiceExit             = 5
)

// maxTokenLen bounds a single input token. Longer tokens are discarded and
// read as an empty token, which every prompt rejects.
const maxTokenLen = 1024

// errInputClosed marks a clean end of the input stream.
var errInputClosed = errors.New("input closed")

// Shell reads menu commands from an input stream and runs them against a
// Registry, one command at a time.
type Shell struct {
	reg    *service.Registry
	in     *bufio.Scanner
	out    io.Writer
	log    zerolog.Logger
	styles styles
}

type styles struct {
	heading lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

// New creates a Shell. Input is consumed as whitespace-separated tokens.
func New(reg *service.Registry, in io.Reader, out io.Writer, log zerolog.Logger) *Shell {
	sc := bufio.NewScanner(in)
	sc.Split(boundedWords(maxTokenLen))

	r := lipgloss.NewRenderer(out)
	return &Shell{
		reg: reg,
		in:  sc,
		out: out,
		log: log,
		styles: styles{
			heading: r.NewStyle().Bold(true),
			ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
			fail:    r.NewStyle().Foreground(lipgloss.Color("1")),
		},
	}
}

// Run loops until the user exits, the input ends, or ctx is done.
// Only a read failure on the input stream is returned as an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		s.printMenu()

		choice, err := s.readChoice()
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case ChoiceAllCourses:
			s.printCourses("All Courses:", s.reg.ListAllCourses())
		case ChoiceAvailableCourses:
			s.printCourses("Available Courses:", s.reg.ListAvailableCourses())
		case ChoiceRegister:
			if err := s.runCommand(ctx, s.reg.Register); err != nil {
				return s.finish(err)
			}
		case ChoiceDrop:
			if err := s.runCommand(ctx, s.reg.Drop); err != nil {
				return s.finish(err)
			}
		case ChoiceExit:
			s.println("Exiting program. Goodbye!")
			return nil
		default:
			s.println("Invalid choice. Please enter a number from 1 to 5.")
		}
	}
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(s.styles.heading.Render("Select an option:"))
	s.println("1. Display All Courses")
	s.println("2. Display Available Courses")
	s.println("3. Register Student for Course")
	s.println("4. Drop Course for Student")
	s.println("5. Exit")
}

func (s *Shell) printCourses(heading string, courses []*model.Course) {
	s.println("")
	s.println(s.styles.heading.Render(heading))
	for _, c := range courses {
		s.println(c.Describe())
	}
}

// readChoice re-prompts until it reads an integer token.
func (s *Shell) readChoice() (int, error) {
	fmt.Fprint(s.out, "Enter your choice: ")
	for {
		tok, err := s.next()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(tok)
		if convErr == nil {
			return n, nil
		}
		s.log.Debug().Str("input", tok).Msg("Non-numeric menu choice")
		fmt.Fprint(s.out, "Invalid input. Enter your choice as a number: ")
	}
}

// runCommand prompts for a student ID and course code and applies op under
// a fresh command ID.
func (s *Shell) runCommand(ctx context.Context, op func(context.Context, string, string) response.Outcome) error {
	fmt.Fprint(s.out, "Enter student ID: ")
	studentID, err := s.next()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "Enter course code: ")
	courseCode, err := s.next()
	if err != nil {
		return err
	}

	cmdID := response.NewCommandID()
	cmdLog := s.log.With().Str("command_id", cmdID).Logger()
	cmdCtx := cmdLog.WithContext(response.WithCommandID(ctx, cmdID))

	outcome := op(cmdCtx, studentID, courseCode)
	if outcome.OK() {
		s.println(s.styles.ok.Render(outcome.Message))
	} else {
		s.println(s.styles.fail.Render(outcome.Message))
	}
	return nil
}

// boundedWords splits like bufio.ScanWords, but a token reaching limit bytes
// is skipped up to the next space and yielded as "" instead of failing the
// scanner with bufio.ErrTooLong.
func boundedWords(limit int) bufio.SplitFunc {
	skipping := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if skipping {
			if i := bytes.IndexFunc(data, unicode.IsSpace); i >= 0 {
				skipping = false
				return i, []byte{}, nil
			}
			if atEOF {
				skipping = false
				return len(data), []byte{}, nil
			}
			return len(data), nil, nil
		}

		advance, token, err := bufio.ScanWords(data, atEOF)
		if err != nil || token != nil || atEOF {
			return advance, token, err
		}
		if len(data)-advance >= limit {
			skipping = true
			return len(data), nil, nil
		}
		return advance, nil, nil
	}
}

func (s *Shell) next() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", errInputClosed
}

// finish turns a clean end of input into a normal exit.
func (s *Shell) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		s.println("")
		s.println("Exiting program. Goodbye!")
		return nil
	}
	s.log.Error().Err(err).Msg("Input stream failed")
	return err
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
