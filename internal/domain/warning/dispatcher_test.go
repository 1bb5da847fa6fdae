package warning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomstock/internal/core/id"
	"roomstock/internal/domain/catalog"
	"roomstock/internal/domain/inventory"
	"roomstock/internal/domain/settings"
	"roomstock/internal/domain/summary"
)

type stubSummaryRepo struct {
	rows []*summary.Summary
}

func (s *stubSummaryRepo) Create(ctx context.Context, row *summary.Summary) error { return nil }
func (s *stubSummaryRepo) Update(ctx context.Context, row *summary.Summary) error { return nil }

func (s *stubSummaryRepo) GetByTriple(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time) (*summary.Summary, error) {
	return nil, nil
}

func (s *stubSummaryRepo) ListByStatusAndRange(ctx context.Context, status summary.HealthStatus, from, to time.Time) ([]*summary.Summary, error) {
	var out []*summary.Summary
	for _, row := range s.rows {
		if row.Status == status && !row.Date.Before(from) && !row.Date.After(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubSummaryRepo) ListPairsByDate(ctx context.Context, day time.Time) ([]inventory.Pair, error) {
	return nil, nil
}

func (s *stubSummaryRepo) ListAll(ctx context.Context) ([]*summary.Summary, error) {
	return s.rows, nil
}

var _ summary.Repository = (*stubSummaryRepo)(nil)

type stubCatalog struct{}

func (stubCatalog) GetHotel(ctx context.Context, hotelID id.ID) (*catalog.Hotel, error) {
	return &catalog.Hotel{ID: hotelID, Name: "Grand Plaza"}, nil
}

func (stubCatalog) GetRoomType(ctx context.Context, roomTypeID id.ID) (*catalog.RoomType, error) {
	return &catalog.RoomType{ID: roomTypeID, Name: "Deluxe Twin"}, nil
}

func (stubCatalog) ListRoomTypesByHotel(ctx context.Context, hotelID id.ID) ([]*catalog.RoomType, error) {
	return nil, nil
}

func (stubCatalog) ListHotels(ctx context.Context) ([]*catalog.Hotel, error) { return nil, nil }

var _ catalog.Repository = (stubCatalog{})

type memCache struct {
	entries map[string]time.Time
	readErr error
}

func (c *memCache) GetLastSent(ctx context.Context, key string) (time.Time, bool, error) {
	if c.readErr != nil {
		return time.Time{}, false, c.readErr
	}
	at, ok := c.entries[key]
	return at, ok, nil
}

func (c *memCache) SetLastSent(ctx context.Context, key string, at time.Time, ttl time.Duration) error {
	if c.entries == nil {
		c.entries = make(map[string]time.Time)
	}
	c.entries[key] = at
	return nil
}

func (c *memCache) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

var _ Cache = (*memCache)(nil)

type recordingMailer struct {
	subjects   []string
	recipients [][]string
	err        error
}

func (m *recordingMailer) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	if m.err != nil {
		return m.err
	}
	m.subjects = append(m.subjects, subject)
	m.recipients = append(m.recipients, recipients)
	return nil
}

var _ Mailer = (*recordingMailer)(nil)

func warningRow(day time.Time) *summary.Summary {
	row := summary.New(id.New(), id.New(), day)
	row.SetTotal(100)
	row.SetAvailable(5)
	return row
}

func testProvider(recipients ...string) settings.Provider {
	cfg := settings.Defaults()
	cfg.WarningRecipients = recipients
	return &settings.StaticProvider{Settings: cfg}
}

func TestCheckAndSendWarnings(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubSummaryRepo{rows: []*summary.Summary{warningRow(day)}}
	cache := &memCache{}
	mailer := &recordingMailer{}

	d := NewDispatcher(repo, stubCatalog{}, testProvider("ops@example.com"), cache, mailer)
	res := d.CheckAndSendWarnings(context.Background(), &day)

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Sent)
	require.Len(t, mailer.subjects, 1)
	assert.Contains(t, mailer.subjects[0], "Grand Plaza")
	assert.Contains(t, mailer.subjects[0], "Deluxe Twin")
	assert.Equal(t, []string{"ops@example.com"}, mailer.recipients[0])
	assert.Len(t, cache.entries, 1)
}

func TestWarningsDeduplicated(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubSummaryRepo{rows: []*summary.Summary{warningRow(day)}}
	cache := &memCache{}
	mailer := &recordingMailer{}

	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	d := NewDispatcher(repo, stubCatalog{}, testProvider("ops@example.com"), cache, mailer).
		WithClock(func() time.Time { return base })

	res := d.CheckAndSendWarnings(context.Background(), &day)
	require.Equal(t, 1, res.Sent)

	// One hour later: inside the 24h resend interval, suppressed.
	d.WithClock(func() time.Time { return base.Add(time.Hour) })
	res = d.CheckAndSendWarnings(context.Background(), &day)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Sent)

	// 25 hours later: the interval has elapsed, re-sent.
	d.WithClock(func() time.Time { return base.Add(25 * time.Hour) })
	res = d.CheckAndSendWarnings(context.Background(), &day)
	assert.Equal(t, 1, res.Sent)
	assert.Len(t, mailer.subjects, 2)
}

func TestWarningsDisabled(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubSummaryRepo{rows: []*summary.Summary{warningRow(day)}}
	mailer := &recordingMailer{}

	cfg := settings.Defaults()
	cfg.WarningEnabled = false
	cfg.WarningRecipients = []string{"ops@example.com"}
	d := NewDispatcher(repo, stubCatalog{}, &settings.StaticProvider{Settings: cfg}, &memCache{}, mailer)

	res := d.CheckAndSendWarnings(context.Background(), &day)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Sent)
	assert.Empty(t, mailer.subjects)
}

func TestWarningsNoRecipients(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubSummaryRepo{rows: []*summary.Summary{warningRow(day)}}
	mailer := &recordingMailer{}

	d := NewDispatcher(repo, stubCatalog{}, testProvider(), &memCache{}, mailer)
	res := d.CheckAndSendWarnings(context.Background(), &day)

	require.True(t, res.Success)
	assert.Equal(t, 0, res.Sent)
	assert.Empty(t, mailer.subjects)
}

func TestBrokenCacheDoesNotSilenceWarnings(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubSummaryRepo{rows: []*summary.Summary{warningRow(day)}}
	cache := &memCache{readErr: errors.New("connection refused")}
	mailer := &recordingMailer{}

	d := NewDispatcher(repo, stubCatalog{}, testProvider("ops@example.com"), cache, mailer)
	res := d.CheckAndSendWarnings(context.Background(), &day)

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Sent)
}

func TestDeliveryFailureDoesNotAbortBatch(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubSummaryRepo{rows: []*summary.Summary{warningRow(day), warningRow(day)}}
	cache := &memCache{}
	mailer := &recordingMailer{err: errors.New("smtp timeout")}

	d := NewDispatcher(repo, stubCatalog{}, testProvider("ops@example.com"), cache, mailer)
	res := d.CheckAndSendWarnings(context.Background(), &day)

	// The run still reports success; nothing was sent and nothing cached.
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Sent)
	assert.Empty(t, cache.entries)
}
