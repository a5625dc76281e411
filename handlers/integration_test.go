// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/irunart/fair-draw/draw"
	"github.com/irunart/fair-draw/models"
	"github.com/irunart/fair-draw/testutil"
)

// TestFullDrawWorkflow tests the complete end-to-end workflow:
// 1. Create draw (commitment published)
// 2. Public commitment view matches the roster
// 3. Result is sealed before the run
// 4. Run the draw with the future signal
// 5. Fetch the result and verify it independently
func TestFullDrawWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	drawHandler := NewDrawHandler(db, cfg)
	resultsHandler := NewResultsHandler(db, cfg)

	// Step 1: Create a draw. Participants arrive shuffled on purpose.
	participants := []string{"Eve", "Carol", "Alice", "Dave", "Bob"}
	req := testutil.MakeRequest("POST", "/draws", models.CreateDrawRequest{
		Title:        "Integration Test Draw",
		Participants: participants,
	}, nil)
	w := httptest.NewRecorder()
	drawHandler.CreateDraw(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create draw failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreateDrawResponse
	testutil.AssertJSON(t, w, &createResp)
	if createResp.DrawID == "" || createResp.AdminKey == "" || createResp.ShareSlug == "" {
		t.Fatal("Step 1 - Missing draw_id, admin_key, or share_slug")
	}
	t.Logf("Step 1 - Created draw: %s", createResp.DrawID)

	// Step 2: Public view carries the roster and the same commitment
	req = testutil.MakeRequest("GET", "/draws/"+createResp.ShareSlug, nil, nil)
	req.SetPathValue("slug", createResp.ShareSlug)
	w = httptest.NewRecorder()
	drawHandler.GetDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var publicView models.DrawWithParticipants
	testutil.AssertJSON(t, w, &publicView)
	if publicView.Draw.CommitmentHash != createResp.CommitmentHash {
		t.Fatal("Step 2 - Public commitment differs from creation response")
	}
	if draw.CommitmentHash(publicView.Participants) != createResp.CommitmentHash {
		t.Fatal("Step 2 - Published roster does not hash to the published commitment")
	}
	t.Logf("Step 2 - Commitment verified: %s", createResp.CommitmentHash)

	// Step 3: Result sealed before the run
	req = testutil.MakeRequest("GET", "/draws/"+createResp.ShareSlug+"/result", nil, nil)
	req.SetPathValue("slug", createResp.ShareSlug)
	w = httptest.NewRecorder()
	resultsHandler.GetResult(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Step 4: Run the draw once the signal is known
	const signal = "S&P500@5432.10"
	req = testutil.MakeRequest("POST", "/draws/"+createResp.DrawID+"/run",
		models.RunDrawRequest{Signal: signal, Top: 2},
		map[string]string{"X-Admin-Key": createResp.AdminKey})
	req.SetPathValue("id", createResp.DrawID)
	w = httptest.NewRecorder()
	resultsHandler.RunDraw(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Run failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 4 - Draw run")

	// Step 5: Fetch the snapshot and re-derive everything like an outside
	// verifier would: same roster, same signal, same algorithm.
	req = testutil.MakeRequest("GET", "/draws/"+createResp.ShareSlug+"/result", nil, nil)
	req.SetPathValue("slug", createResp.ShareSlug)
	w = httptest.NewRecorder()
	resultsHandler.GetResult(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var snapshot models.ResultSnapshot
	testutil.AssertJSON(t, w, &snapshot)

	verified, err := draw.FairShuffle(publicView.Participants, signal)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.CommitmentHash != verified.CommitmentHash {
		t.Error("Step 5 - Commitment mismatch")
	}
	wantSeed, ok := new(big.Int).SetString(snapshot.Seed, 10)
	if !ok || wantSeed.Cmp(verified.Seed) != 0 {
		t.Errorf("Step 5 - Seed mismatch: snapshot %s, recomputed %s", snapshot.Seed, verified.Seed)
	}
	if !reflect.DeepEqual(snapshot.Shuffled, verified.Shuffled) {
		t.Errorf("Step 5 - Permutation mismatch: %v vs %v", snapshot.Shuffled, verified.Shuffled)
	}
	if !reflect.DeepEqual(snapshot.Winners, verified.Winners(2)) {
		t.Errorf("Step 5 - Winners mismatch: %v vs %v", snapshot.Winners, verified.Winners(2))
	}
	t.Log("Step 5 - Independent verification passed")
}
