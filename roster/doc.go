// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster loads participant lists for the draw core.

The core only ever sees a []string; this package owns the edge concerns of
getting one -- files, request bodies -- and their errors.

# Format

One participant per line. Surrounding whitespace is trimmed, blank lines are
skipped, duplicates are kept as-is.

	participants, err := roster.Load("candidates.txt")

Read does the same over any io.Reader, and Clean over a slice that arrived
already split (an API request body).

An empty result is an error (ErrNoParticipants): a draw over nobody is
always a caller mistake.
*/
package roster
