// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoParticipants is returned by Load and Read when the source contains no
// participants after trimming and blank-line filtering.
var ErrNoParticipants = errors.New("no participants found")

// Read parses a newline-delimited participant list: one participant per
// line, surrounding whitespace trimmed, blank lines discarded. No
// deduplication -- a name listed twice gets two entries in the draw.
func Read(r io.Reader) ([]string, error) {
	var participants []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		participants = append(participants, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}

	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	return participants, nil
}

// Load reads a participant list from a file, with Read's semantics.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open participant file %q: %w", path, err)
	}
	defer f.Close()

	participants, err := Read(f)
	if errors.Is(err, ErrNoParticipants) {
		return nil, fmt.Errorf("participant file %q: %w", path, ErrNoParticipants)
	}
	return participants, err
}

// Clean applies Read's per-entry rules to an in-memory list (used when
// participants arrive in an API request instead of a file).
func Clean(raw []string) ([]string, error) {
	participants := make([]string, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		participants = append(participants, entry)
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	return participants, nil
}
