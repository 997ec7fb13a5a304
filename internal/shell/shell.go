// Package shell implements the interactive menu for a switcher session.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"magewell-cli/internal/display"
	"magewell-cli/pkg/models"
)

// Switcher is the subset of the device session the menu drives.
type Switcher interface {
	Address() string
	GetCurrentChannel() (models.Channel, bool)
	GetSources() ([]models.Source, bool)
	SetChannel(name string) bool
}

// Shell is a blocking read-eval-print loop over a Switcher.
type Shell struct {
	session Switcher
	in      *bufio.Scanner
	out     io.Writer

	// sources is the last successful listing. fetched stays false until the
	// first one, so "never listed" and "listed, none found" differ.
	sources []models.Source
	fetched bool
	done    bool
}

func New(session Switcher, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Cached returns the cached source list and whether one was ever fetched.
func (s *Shell) Cached() ([]models.Source, bool) {
	return s.sources, s.fetched
}

// Run loops until the user picks Exit or input is exhausted.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "\nMagewell Switcher Interactive Mode")
	fmt.Fprintf(s.out, "Connected to: %s\n", s.session.Address())

	for !s.done {
		fmt.Fprintln(s.out, "\nOptions:")
		fmt.Fprintln(s.out, "1. Show current channel")
		fmt.Fprintln(s.out, "2. List NDI sources")
		fmt.Fprintln(s.out, "3. Switch to a source")
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt("\nEnter option (1-4): ")
		if !ok {
			break
		}

		switch choice {
		case "1":
			s.showCurrent()
		case "2":
			s.listSources()
		case "3":
			s.switchSource()
		case "4":
			fmt.Fprintln(s.out, "Exiting...")
			s.done = true
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) showCurrent() {
	ch, ok := s.session.GetCurrentChannel()
	if !ok {
		fmt.Fprintln(s.out, "Failed to retrieve current channel.")
		return
	}
	display.Channel(s.out, ch)
}

func (s *Shell) listSources() {
	sources, ok := s.session.GetSources()
	if !ok {
		fmt.Fprintln(s.out, "Failed to retrieve NDI sources.")
		return
	}
	display.Sources(s.out, sources)
	s.sources, s.fetched = sources, true
}

func (s *Shell) switchSource() {
	if !s.fetched || len(s.sources) == 0 {
		fmt.Fprintln(s.out, "Fetching available sources first...")
		sources, ok := s.session.GetSources()
		if !ok {
			fmt.Fprintln(s.out, "Failed to retrieve sources. Please try again.")
			return
		}
		display.Sources(s.out, sources)
		s.sources, s.fetched = sources, true
		if len(sources) == 0 {
			return
		}
	}

	line, ok := s.prompt("\nEnter source number to select (or 0 to cancel): ")
	if !ok {
		return
	}

	idx, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number.")
		return
	}
	if idx == 0 {
		return
	}
	if idx < 1 || idx > len(s.sources) {
		fmt.Fprintln(s.out, "Invalid source number.")
		return
	}

	name := s.sources[idx-1].Name
	if s.session.SetChannel(name) {
		fmt.Fprintf(s.out, "Successfully switched to: %s\n", name)
	} else {
		fmt.Fprintf(s.out, "Failed to switch to: %s\n", name)
	}
}

// prompt writes msg and reads one trimmed line. EOF ends the session.
func (s *Shell) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		s.done = true
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
