// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"already sorted", []string{"Alice", "Bob", "Carol"}, []string{"Alice", "Bob", "Carol"}},
		{"reversed", []string{"Carol", "Bob", "Alice"}, []string{"Alice", "Bob", "Carol"}},
		{"duplicates kept", []string{"Bob", "Alice", "Bob"}, []string{"Alice", "Bob", "Bob"}},
		{"byte order not locale order", []string{"a", "B"}, []string{"B", "a"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Canonicalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalize_DoesNotMutateInput(t *testing.T) {
	input := []string{"Carol", "Alice", "Bob"}
	Canonicalize(input)
	if !reflect.DeepEqual(input, []string{"Carol", "Alice", "Bob"}) {
		t.Errorf("Canonicalize mutated its input: %v", input)
	}
}

func TestCommitmentHash_KnownValue(t *testing.T) {
	// sha256("Alice\nBob\nCarol")
	const want = "4861638f64a6f5f3f82c117a61821b78da7e2b3fa81e65d3c018095148fa7435"

	got := CommitmentHash([]string{"Alice", "Bob", "Carol"})
	if got != want {
		t.Errorf("CommitmentHash = %s, want %s", got, want)
	}

	// Same multiset, different input order: identical digest.
	reordered := CommitmentHash([]string{"Carol", "Alice", "Bob"})
	if reordered != want {
		t.Errorf("CommitmentHash (reordered) = %s, want %s", reordered, want)
	}
}

func TestCommitmentHash_Format(t *testing.T) {
	inputs := [][]string{
		{},
		{"Alice"},
		{"Alice", "Bob", "Carol"},
		{"", ""},
	}

	for _, input := range inputs {
		h := CommitmentHash(input)
		if len(h) != 64 {
			t.Errorf("CommitmentHash(%v) length = %d, want 64", input, len(h))
		}
		for _, c := range h {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
				t.Errorf("CommitmentHash(%v) contains non-hex char %q", input, c)
			}
		}
	}
}

func TestCommitmentHash_DelimiterCollision(t *testing.T) {
	// sha256("Alice\nBob") vs sha256("Ali\nceBob")
	a := CommitmentHash([]string{"Alice", "Bob"})
	b := CommitmentHash([]string{"Ali", "ceBob"})
	if a == b {
		t.Error("entry boundaries must be hash-distinct")
	}
	if want := "19f31aa76a0fd0e84e90caf3f0d0a18b787ccb4819bcb2ac4288a0c869eb1f07"; a != want {
		t.Errorf("CommitmentHash([Alice Bob]) = %s, want %s", a, want)
	}
	if want := "2c41e101b9693270acac44f06e3db084e177c7ce6d64e0ed821b431bff257121"; b != want {
		t.Errorf("CommitmentHash([Ali ceBob]) = %s, want %s", b, want)
	}
}

func TestCommitmentHash_MultisetSensitivity(t *testing.T) {
	base := CommitmentHash([]string{"Alice", "Bob", "Carol"})

	variants := [][]string{
		{"Alice", "Bob"},                   // removed
		{"Alice", "Bob", "Carol", "Dave"},  // added
		{"Alice", "Bob", "Carol", "Carol"}, // duplicate multiplicity
		{"Alice", "Bob", "карол"},          // renamed
	}

	for _, v := range variants {
		if CommitmentHash(v) == base {
			t.Errorf("CommitmentHash(%v) collides with base set", v)
		}
	}
}

func TestDeriveSeed_KnownValue(t *testing.T) {
	// sha256("Alice\nBob\nCarol43") as a base-16 integer
	const wantHex = "689fc78c2f4d2cb53d1e3faf75354e68101c047ce85961a0814833a1538a8975"

	canonical := Canonicalize([]string{"Carol", "Alice", "Bob"})
	seed, err := DeriveSeed(canonical, "43")
	if err != nil {
		t.Fatalf("DeriveSeed() error = %v", err)
	}

	if seed.Sign() < 0 {
		t.Error("seed must be non-negative")
	}
	if got := fmt.Sprintf("%064x", seed); got != wantHex {
		t.Errorf("seed = %s, want %s", got, wantHex)
	}
}

func TestDeriveSeed_InvalidSalt(t *testing.T) {
	canonical := []string{"Alice", "Bob"}

	for _, salt := range []string{"", " ", "   ", "\t\n "} {
		_, err := DeriveSeed(canonical, salt)
		if !errors.Is(err, ErrInvalidSalt) {
			t.Errorf("DeriveSeed(salt=%q) error = %v, want ErrInvalidSalt", salt, err)
		}
	}
}

func TestDeriveSeed_SaltNotTrimmed(t *testing.T) {
	// A salt with surrounding whitespace is valid and hashes verbatim.
	canonical := []string{"Alice", "Bob"}
	a, err := DeriveSeed(canonical, "43")
	if err != nil {
		t.Fatal(err)
	}
	b, err := DeriveSeed(canonical, " 43")
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) == 0 {
		t.Error("leading whitespace in salt must change the seed")
	}
}

func TestFairShuffle_Determinism(t *testing.T) {
	participants := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"}

	r1, err := FairShuffle(participants, "BTC@68421.77")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := FairShuffle(participants, "BTC@68421.77")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(r1.Shuffled, r2.Shuffled) {
		t.Errorf("shuffled lists differ: %v vs %v", r1.Shuffled, r2.Shuffled)
	}
	if r1.CommitmentHash != r2.CommitmentHash {
		t.Errorf("commitment hashes differ: %s vs %s", r1.CommitmentHash, r2.CommitmentHash)
	}
	if r1.Seed.Cmp(r2.Seed) != 0 {
		t.Errorf("seeds differ: %s vs %s", r1.Seed, r2.Seed)
	}
}

func TestFairShuffle_OrderIndependence(t *testing.T) {
	orig := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}
	scrambled := []string{"Eve", "Carol", "Alice", "Dave", "Bob"}

	r1, err := FairShuffle(orig, "43")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := FairShuffle(scrambled, "43")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(r1.Shuffled, r2.Shuffled) {
		t.Errorf("input order changed the outcome: %v vs %v", r1.Shuffled, r2.Shuffled)
	}
	if r1.CommitmentHash != r2.CommitmentHash {
		t.Error("input order changed the commitment hash")
	}
	if r1.Seed.Cmp(r2.Seed) != 0 {
		t.Error("input order changed the seed")
	}
}

func TestFairShuffle_SignalSensitivity(t *testing.T) {
	participants := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi"}

	r1, err := FairShuffle(participants, "Signal A")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := FairShuffle(participants, "Signal B")
	if err != nil {
		t.Fatal(err)
	}

	// Commitment is signal-independent.
	if r1.CommitmentHash != r2.CommitmentHash {
		t.Error("commitment hash must not depend on the signal")
	}
	if r1.Seed.Cmp(r2.Seed) == 0 {
		t.Error("different signals produced the same seed")
	}
	if reflect.DeepEqual(r1.Shuffled, r2.Shuffled) {
		t.Error("different signals produced the same permutation")
	}
}

func TestFairShuffle_DuplicateSensitivity(t *testing.T) {
	base := []string{"Alice", "Bob", "Carol"}
	withDup := []string{"Alice", "Bob", "Carol", "Carol"}

	r1, err := FairShuffle(base, "43")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := FairShuffle(withDup, "43")
	if err != nil {
		t.Fatal(err)
	}

	if r1.CommitmentHash == r2.CommitmentHash {
		t.Error("duplicate multiplicity must change the commitment hash")
	}
	if r1.Seed.Cmp(r2.Seed) == 0 {
		t.Error("duplicate multiplicity must change the seed")
	}
	if len(r2.Shuffled) != 4 {
		t.Errorf("duplicates must be preserved in the output, got %v", r2.Shuffled)
	}
}

func TestFairShuffle_InvalidSalt(t *testing.T) {
	participants := []string{"Alice", "Bob"}

	for _, salt := range []string{"", "   ", "\t"} {
		_, err := FairShuffle(participants, salt)
		if !errors.Is(err, ErrInvalidSalt) {
			t.Errorf("FairShuffle(salt=%q) error = %v, want ErrInvalidSalt", salt, err)
		}
	}
}

func TestFairShuffle_IsPermutation(t *testing.T) {
	participants := []string{"Dave", "Alice", "Carol", "Bob", "Bob"}

	r, err := FairShuffle(participants, "signal")
	if err != nil {
		t.Fatal(err)
	}

	if len(r.Shuffled) != len(participants) {
		t.Fatalf("length changed: %d -> %d", len(participants), len(r.Shuffled))
	}
	if !reflect.DeepEqual(Canonicalize(r.Shuffled), Canonicalize(participants)) {
		t.Errorf("output is not a permutation of the input: %v", r.Shuffled)
	}
}

func TestFairShuffle_ConcreteScenario(t *testing.T) {
	const (
		wantHash = "4861638f64a6f5f3f82c117a61821b78da7e2b3fa81e65d3c018095148fa7435"
		wantSeed = "689fc78c2f4d2cb53d1e3faf75354e68101c047ce85961a0814833a1538a8975"
	)

	r1, err := FairShuffle([]string{"Alice", "Bob", "Carol"}, "43")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := FairShuffle([]string{"Carol", "Alice", "Bob"}, "43")
	if err != nil {
		t.Fatal(err)
	}

	if r1.CommitmentHash != wantHash {
		t.Errorf("commitment hash = %s, want %s", r1.CommitmentHash, wantHash)
	}
	if got := fmt.Sprintf("%064x", r1.Seed); got != wantSeed {
		t.Errorf("seed = %s, want %s", got, wantSeed)
	}
	if !reflect.DeepEqual(r1.Shuffled, r2.Shuffled) || r1.CommitmentHash != r2.CommitmentHash || r1.Seed.Cmp(r2.Seed) != 0 {
		t.Errorf("reordered input changed the draw: %+v vs %+v", r1, r2)
	}
}

func TestWinners(t *testing.T) {
	r := Result{Shuffled: []string{"a", "b", "c"}}

	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{}},
		{-1, []string{}},
		{1, []string{"a"}},
		{3, []string{"a", "b", "c"}},
		{10, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		if got := r.Winners(tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Winners(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
