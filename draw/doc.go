// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draw implements a publicly-verifiable, deterministic random draw.

A draw takes a list of participants and a "future salt" -- a string taken
from some public signal that cannot be known when the participant list is
fixed (a stock index close, a block hash, a lottery number). Because the
outcome is a pure function of (participant multiset, salt), nobody can bias
it ahead of time, and anybody can re-run it afterwards to check the result.

# Commitment

The organizer publishes the commitment hash before the signal exists:

	hash := draw.CommitmentHash(participants)

The hash canonicalizes (sorts) the list internally and is independent of
input order, so the organizer cannot change the outcome by reordering the
file. Adding, removing, or renaming any entry -- including duplicates --
changes the hash.

# Running the draw

Once the signal is known:

	result, err := draw.FairShuffle(participants, salt)

result.Shuffled is the full permuted list, result.Winners(n) its first n
entries. result.Seed is the 256-bit integer the generator was keyed with,
returned so verifiers can compare it against their own derivation.

An empty or whitespace-only salt fails with ErrInvalidSalt before any
hashing.

# Reproducibility contract

Four choices make up the wire format and must all be matched by any
reimplementation that wants to reproduce prior draws:

  - SHA-256 over UTF-8 bytes
  - a single '\n' between canonical entries, the raw salt appended with no
    delimiter
  - the full hex digest read as a base-16 integer for the seed
  - ChaCha8 (math/rand/v2) keyed with the 32 digest bytes, driving
    rand.Shuffle's Fisher-Yates permutation

Implementations that cannot match the generator should preserve the
commitment and seed derivation and document their own shuffle.

The package is pure: no I/O, no shared state, safe for concurrent use.
*/
package draw
