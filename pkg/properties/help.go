package properties

import (
	"fmt"
	"sort"
	"strings"
)

const helpLineWidth = 100

// HelpText generates the property overview page: a usage header of every
// property's syntax, followed by per-property syntax, default value and
// wrapped description, sorted by each property's ordering key. Generation is
// best-effort: properties that fail to load still appear with their syntax.
func (s *Service) HelpText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.helpTextLocked()
}

// PrintHelp writes the help page to the Service output
func (s *Service) PrintHelp() error {
	s.mu.Lock()
	text := s.helpTextLocked()
	out := s.out
	s.mu.Unlock()

	_, err := fmt.Fprintln(out, text)
	return err
}

func (s *Service) helpTextLocked() string {
	if err := s.resolveLocked(); err != nil {
		s.logger.Debug().Err(err).Msg("Could not resolve all properties for the help page")
	}
	if err := s.loadAllLocked(false); err != nil {
		s.logger.Debug().Err(err).Msg("Could not load all properties for the help page")
	}

	instances := make([]Property, 0, len(s.initialized))
	for _, p := range s.initialized {
		instances = append(instances, p)
	}
	sort.Slice(instances, func(i, j int) bool {
		return instances[i].SortKey() < instances[j].SortKey()
	})

	var b strings.Builder
	b.WriteString("\nusage: ")
	b.WriteString(s.name)

	var header strings.Builder
	for _, p := range instances {
		header.WriteString(" [")
		header.WriteString(p.Syntax())
		header.WriteString("]")
	}
	b.WriteString(NewLineFormatter(header.String(), "\n\t", helpLineWidth))
	b.WriteString("\nwhere:\n")

	for _, p := range instances {
		b.WriteString("\t")
		b.WriteString(p.Syntax())
		b.WriteString(fmt.Sprintf(" [Default: %v]", p.Default()))
		b.WriteString("\n\t\t")
		b.WriteString(NewLineFormatter(p.Description(), "\n\t\t", helpLineWidth))
		b.WriteString("\n")
	}

	return b.String()
}

// NewLineFormatter word-wraps text at maxChars columns, inserting
// newLineOperator between lines. Words longer than the limit are kept whole.
func NewLineFormatter(text string, newLineOperator string, maxChars int) string {
	words := strings.Split(text, " ")
	var b strings.Builder
	charCounter := 0

	for i, word := range words {
		if charCounter+len(word) >= maxChars {
			b.WriteString(newLineOperator)
			b.WriteString(word)
			charCounter = len(word)
		} else {
			b.WriteString(word)
			if index := strings.LastIndex(word, "\n"); index >= 0 {
				charCounter = len(word) - index - 1
			} else {
				charCounter += len(word)
			}
		}
		if i != len(words)-1 {
			b.WriteString(" ")
			charCounter++
		}
	}

	return b.String()
}
