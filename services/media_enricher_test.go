package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bousai_recommend/models"
)

const noImage = "https://placehold.co/400x300?text=No+Image"

func TestMediaEnricher_BothHit(t *testing.T) {
	e := NewMediaEnricher(
		&fakeImageSearcher{urls: map[string]string{"A": "https://img/a.jpg"}},
		&fakeVideoSearcher{ids: map[string][]string{"A": {"v1", "v2"}}},
		time.Second, time.Second,
	)

	got := e.Enrich(context.Background(), "A")
	assert.Equal(t, OutcomeEnriched, got.Outcome)
	assert.Equal(t, "https://img/a.jpg", got.ImageURL)
	assert.Equal(t, []string{"v1", "v2"}, got.VideoIDs)
}

func TestMediaEnricher_LookupsRunConcurrently(t *testing.T) {
	e := NewMediaEnricher(
		&fakeImageSearcher{urls: map[string]string{"A": "u"}, delays: map[string]time.Duration{"A": 150 * time.Millisecond}},
		&fakeVideoSearcher{ids: map[string][]string{"A": {"v"}}, delays: map[string]time.Duration{"A": 150 * time.Millisecond}},
		time.Second, time.Second,
	)

	start := time.Now()
	got := e.Enrich(context.Background(), "A")
	assert.Less(t, time.Since(start), 280*time.Millisecond)
	assert.Equal(t, OutcomeEnriched, got.Outcome)
}

func TestMediaEnricher_TimeoutDegradesOnlyThatLookup(t *testing.T) {
	e := NewMediaEnricher(
		&fakeImageSearcher{urls: map[string]string{"A": "u"}, delays: map[string]time.Duration{"A": time.Second}},
		&fakeVideoSearcher{ids: map[string][]string{"A": {"v1"}}},
		50*time.Millisecond, time.Second,
	)

	got := e.Enrich(context.Background(), "A")
	assert.Empty(t, got.ImageURL)
	assert.Equal(t, []string{"v1"}, got.VideoIDs)
	assert.Equal(t, OutcomeEnriched, got.Outcome)
}

func TestMediaEnricher_IgnoresUncooperativeSearcher(t *testing.T) {
	stubborn := &stubbornImageSearcher{release: make(chan struct{})}
	defer close(stubborn.release)

	e := NewMediaEnricher(stubborn, &fakeVideoSearcher{}, 50*time.Millisecond, 50*time.Millisecond)

	start := time.Now()
	got := e.Enrich(context.Background(), "A")
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, OutcomeDefault, got.Outcome)
}

func TestMediaEnricher_ErrorsAndPanicsDegrade(t *testing.T) {
	e := NewMediaEnricher(
		&fakeImageSearcher{errs: map[string]error{"A": errLookup}},
		panicVideoSearcher{},
		time.Second, time.Second,
	)

	got := e.Enrich(context.Background(), "A")
	assert.Equal(t, Enrichment{Outcome: OutcomeDefault}, got)
}

func TestMediaEnricher_NilSearchers(t *testing.T) {
	got := NewMediaEnricher(nil, nil, time.Second, time.Second).Enrich(context.Background(), "A")
	assert.Equal(t, OutcomeDefault, got.Outcome)
}

func TestEnrichment_Apply(t *testing.T) {
	item := models.RecommendedItem{ID: "1", ImageURL: "loading"}

	out := Enrichment{Outcome: OutcomeDefault}.Apply(item, noImage)
	assert.Equal(t, noImage, out.ImageURL)
	assert.Nil(t, out.VideoIDs)

	out = Enrichment{VideoIDs: []string{}, Outcome: OutcomeDefault}.Apply(item, noImage)
	assert.Nil(t, out.VideoIDs, "empty slice must become nil so the field is omitted")

	out = Enrichment{ImageURL: "https://img", VideoIDs: []string{"v"}, Outcome: OutcomeEnriched}.Apply(item, noImage)
	assert.Equal(t, "https://img", out.ImageURL)
	assert.Equal(t, []string{"v"}, out.VideoIDs)
}
