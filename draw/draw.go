// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"math/rand/v2"
	"sort"
	"strings"
)

// ErrInvalidSalt is returned when the future salt is empty or whitespace-only.
// It is raised before any hashing takes place.
var ErrInvalidSalt = errors.New("future salt cannot be empty or whitespace")

// Result holds the three outputs of a fair shuffle. A verifier who holds a
// previously published commitment hash can check it against CommitmentHash,
// then recompute Seed and Shuffled independently from the same inputs.
type Result struct {
	Shuffled       []string
	CommitmentHash string
	Seed           *big.Int
}

// Canonicalize returns a sorted copy of the participant list. Sorting is by
// raw byte order, not locale-aware, so two inputs that are permutations of
// each other always canonicalize to the same sequence. Duplicates are kept.
func Canonicalize(participants []string) []string {
	canonical := make([]string, len(participants))
	copy(canonical, participants)
	sort.Strings(canonical)
	return canonical
}

// CommitmentHash computes the SHA-256 digest of the canonicalized participant
// list, returned as 64 lowercase hex characters. The digest depends only on
// the multiset of participant strings, never on their input order, so it can
// be published before the future signal is known.
//
// Entries are joined with a single newline to prevent concatenation
// collisions: ["Alice", "Bob"] and ["Ali", "ceBob"] must hash differently.
func CommitmentHash(participants []string) string {
	canonical := Canonicalize(participants)
	sum := sha256.Sum256([]byte(strings.Join(canonical, "\n")))
	return hex.EncodeToString(sum[:])
}

// DeriveSeed derives the deterministic shuffle seed from an already-canonical
// participant list and the future salt. The seed is the SHA-256 digest of the
// newline-joined list with the raw salt appended, interpreted as a base-16
// integer in [0, 2^256).
//
// The salt is appended verbatim, with no delimiter and no trimming. The
// asymmetry with the inter-participant newline is deliberate and part of the
// wire format; do not "fix" it.
func DeriveSeed(canonical []string, futureSalt string) (*big.Int, error) {
	if strings.TrimSpace(futureSalt) == "" {
		return nil, ErrInvalidSalt
	}
	sum := seedDigest(canonical, futureSalt)
	return new(big.Int).SetBytes(sum[:]), nil
}

func seedDigest(canonical []string, futureSalt string) [32]byte {
	return sha256.Sum256([]byte(strings.Join(canonical, "\n") + futureSalt))
}

// FairShuffle produces the deterministic draw outcome for the given
// participants and future salt. The input order of participants never
// matters: the list is canonicalized before hashing and shuffling, so
// scrambling the input file cannot change the result.
//
// The permutation is drawn from a ChaCha8 generator keyed with the full
// 32-byte seed digest and applied with rand.Shuffle (Fisher-Yates). Together
// with SHA-256, the newline join, and the base-16 seed conversion, that
// generator choice is the reproducibility contract of this package: an
// independent verifier must use the same four pieces to reproduce a
// permutation bit for bit.
func FairShuffle(participants []string, futureSalt string) (Result, error) {
	if strings.TrimSpace(futureSalt) == "" {
		return Result{}, ErrInvalidSalt
	}

	canonical := Canonicalize(participants)
	commitment := CommitmentHash(participants)

	sum := seedDigest(canonical, futureSalt)
	seed := new(big.Int).SetBytes(sum[:])

	// Generator state is scoped to this call; concurrent draws share nothing.
	rng := rand.New(rand.NewChaCha8(sum))

	shuffled := make([]string, len(canonical))
	copy(shuffled, canonical)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return Result{
		Shuffled:       shuffled,
		CommitmentHash: commitment,
		Seed:           seed,
	}, nil
}

// Winners returns the first n entries of the shuffled list, or the whole list
// when n exceeds its length. n <= 0 yields an empty slice.
func (r Result) Winners(n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n > len(r.Shuffled) {
		n = len(r.Shuffled)
	}
	return r.Shuffled[:n]
}
