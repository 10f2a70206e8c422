package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

// fakeStore implements port.EntityStore in memory. Like the real store, it
// filters inactive rows out of lookups.
type fakeStore struct {
	brands    []domain.Brand
	campaigns []domain.Campaign
	clicks    []domain.ClickEvent

	lookupErr error
	insertErr error
}

func (f *fakeStore) FindBrandByShortCode(_ context.Context, code string) (*domain.Brand, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for i := range f.brands {
		if f.brands[i].ShortCode == code && f.brands[i].IsActive {
			return &f.brands[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindBrandByHandle(_ context.Context, handle string) (*domain.Brand, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for i := range f.brands {
		if f.brands[i].Handle == handle && f.brands[i].IsActive {
			return &f.brands[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindCampaignByShortCode(_ context.Context, code string) (*domain.Campaign, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for i := range f.campaigns {
		if f.campaigns[i].ShortCode == code && f.campaigns[i].IsActive {
			return &f.campaigns[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertClickEvent(_ context.Context, ev domain.ClickEvent) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.clicks = append(f.clicks, ev)
	return nil
}

// syncRecorder records clicks synchronously so tests can assert on them.
type syncRecorder struct {
	events []domain.ClickEvent
}

func (r *syncRecorder) Record(ev domain.ClickEvent) { r.events = append(r.events, ev) }

func testStore() *fakeStore {
	return &fakeStore{
		brands: []domain.Brand{
			{ID: uuid.New(), Handle: "acme-gym", ShortCode: "acme", Name: "Acme Gym", IsActive: true},
			{ID: uuid.New(), Handle: "dormant-gym", ShortCode: "dormant", Name: "Dormant Gym", IsActive: false},
		},
		campaigns: []domain.Campaign{
			{ID: uuid.New(), ShortCode: "ig", Name: "Instagram Bio", Source: "instagram", Medium: "social", Campaign: "bio_link", IsActive: true},
			{ID: uuid.New(), ShortCode: "old", Name: "Retired", Source: "x", Medium: "y", Campaign: "z", IsActive: false},
		},
	}
}

func newTestResolver(store *fakeStore, rec port.ClickRecorder) *Resolver {
	return NewResolver(store, rec, slog.New(slog.NewTextHandler(io.Discard, nil)), "https://biopages.mygymtools.com", time.Second)
}

func TestResolveHuman(t *testing.T) {
	store := testStore()
	rec := &syncRecorder{}
	r := newTestResolver(store, rec)

	res, err := r.Resolve(context.Background(), "acme-ig", port.RequestContext{
		UserAgent: "Mozilla/5.0 Chrome/120",
		Referrer:  "https://instagram.com/",
	})
	require.NoError(t, err)
	require.False(t, res.Crawler)
	require.Empty(t, res.HTML)
	require.Equal(t,
		"https://biopages.mygymtools.com/biopage/acme-gym?utm_source=instagram&utm_medium=social&utm_campaign=bio_link",
		res.DestinationURL)

	// a click was attributed with the full UTM triple
	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	require.Equal(t, "acme-ig", ev.ShortCode)
	require.Equal(t, store.brands[0].ID, ev.BrandID)
	require.Equal(t, "instagram", ev.Source)
	require.Equal(t, "social", ev.Medium)
	require.Equal(t, "bio_link", ev.Campaign)
	require.Equal(t, "https://instagram.com/", ev.Referrer)
}

func TestResolveCrawler(t *testing.T) {
	rec := &syncRecorder{}
	r := newTestResolver(testStore(), rec)

	res, err := r.Resolve(context.Background(), "acme-ig", port.RequestContext{
		UserAgent: "facebookexternalhit/1.1",
	})
	require.NoError(t, err)
	require.True(t, res.Crawler)
	require.Contains(t, res.HTML, "og:url")
	require.Contains(t, res.HTML, "Acme Gym")

	// crawler fetches are not clicks
	require.Empty(t, rec.events)
}

func TestResolveMalformed(t *testing.T) {
	r := newTestResolver(testStore(), nil)
	_, err := r.Resolve(context.Background(), "nohyphen", port.RequestContext{})
	require.ErrorIs(t, err, domain.ErrMalformedShortCode)
}

func TestResolveNotFound(t *testing.T) {
	r := newTestResolver(testStore(), nil)

	_, err := r.Resolve(context.Background(), "unknown-ig", port.RequestContext{})
	require.ErrorIs(t, err, port.ErrBrandNotFound)

	_, err = r.Resolve(context.Background(), "acme-nope", port.RequestContext{})
	require.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestResolveInactiveIsMissing(t *testing.T) {
	r := newTestResolver(testStore(), nil)

	_, err := r.Resolve(context.Background(), "dormant-ig", port.RequestContext{})
	require.ErrorIs(t, err, port.ErrBrandNotFound)

	_, err = r.Resolve(context.Background(), "acme-old", port.RequestContext{})
	require.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestResolveStoreFailure(t *testing.T) {
	store := testStore()
	store.lookupErr = errors.New("connection refused")
	r := newTestResolver(store, nil)

	_, err := r.Resolve(context.Background(), "acme-ig", port.RequestContext{})
	require.Error(t, err)
	require.NotErrorIs(t, err, port.ErrBrandNotFound)
	require.NotErrorIs(t, err, domain.ErrMalformedShortCode)
}

func TestResolveEncodesUTMValues(t *testing.T) {
	store := testStore()
	store.campaigns = append(store.campaigns, domain.Campaign{
		ID: uuid.New(), ShortCode: "sp", Source: "spring promo", Medium: "e mail", Campaign: "a&b", IsActive: true,
	})
	r := newTestResolver(store, nil)

	res, err := r.Resolve(context.Background(), "acme-sp", port.RequestContext{})
	require.NoError(t, err)
	require.Equal(t,
		"https://biopages.mygymtools.com/biopage/acme-gym?utm_source=spring+promo&utm_medium=e+mail&utm_campaign=a%26b",
		res.DestinationURL)
}

func TestPreviewByHandle(t *testing.T) {
	r := newTestResolver(testStore(), nil)

	// crawler gets the OG document keyed by handle
	res, err := r.PreviewByHandle(context.Background(), "acme-gym", "", port.RequestContext{UserAgent: "Twitterbot/1.0"})
	require.NoError(t, err)
	require.True(t, res.Crawler)
	require.Contains(t, res.HTML, "Acme Gym")
	require.Equal(t, "https://biopages.mygymtools.com/biopage/acme-gym", res.DestinationURL)

	// a caller-supplied absolute destination is honoured
	res, err = r.PreviewByHandle(context.Background(), "acme-gym", "https://example.com/landing", port.RequestContext{})
	require.NoError(t, err)
	require.False(t, res.Crawler)
	require.Equal(t, "https://example.com/landing", res.DestinationURL)

	// junk redirect parameters fall back to the bio page
	res, err = r.PreviewByHandle(context.Background(), "acme-gym", "javascript:alert(1)", port.RequestContext{})
	require.NoError(t, err)
	require.Equal(t, "https://biopages.mygymtools.com/biopage/acme-gym", res.DestinationURL)

	_, err = r.PreviewByHandle(context.Background(), "nobody", "", port.RequestContext{})
	require.ErrorIs(t, err, port.ErrBrandNotFound)
}
