package warning

import (
	"context"
	"fmt"
	"time"

	"roomstock/internal/core/types"
	"roomstock/internal/domain/batch"
	"roomstock/internal/domain/catalog"
	"roomstock/internal/domain/settings"
	"roomstock/internal/domain/summary"
	"roomstock/pkg/logger"
)

// ScanWindowDays is the default forward window for a dateless warning scan.
const ScanWindowDays = 90

// Dispatcher scans WARNING summaries and sends deduplicated notifications.
type Dispatcher struct {
	summaries summary.Repository
	catalog   catalog.Repository
	settings  settings.Provider
	cache     Cache
	mailer    Mailer

	// now is injectable for tests.
	now func() time.Time
}

// NewDispatcher creates a warning dispatcher.
func NewDispatcher(summaries summary.Repository, cat catalog.Repository, prov settings.Provider, cache Cache, mailer Mailer) *Dispatcher {
	return &Dispatcher{
		summaries: summaries,
		catalog:   cat,
		settings:  prov,
		cache:     cache,
		mailer:    mailer,
		now:       time.Now,
	}
}

// WithClock overrides the dispatcher clock. Test hook.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// cacheKey builds the dedup key for one summary.
func cacheKey(s *summary.Summary) string {
	return fmt.Sprintf("stockwarn:%s:%s:%s", s.HotelID, s.RoomTypeID, types.FormatDay(s.Date))
}

// CheckAndSendWarnings scans WARNING summaries in [date,date] when a date is
// given, else [today, today+ScanWindowDays], and sends one notification per
// eligible summary. A key is eligible when the cache has no entry or the
// elapsed time since the cached send exceeds the configured interval.
//
// A disabled feature or an empty recipient list returns a descriptive
// success envelope, not a failure. A delivery failure for one summary is
// logged and does not abort the remaining summaries. Returns the count of
// notifications actually sent.
func (d *Dispatcher) CheckAndSendWarnings(ctx context.Context, date *time.Time) batch.Result {
	cfg, err := d.settings.Load(ctx)
	if err != nil {
		logger.Error(ctx, "load warning settings failed", "error", err)
		return batch.Fail("load warning settings failed")
	}

	if !cfg.WarningEnabled {
		return batch.OK("low-stock warnings are disabled")
	}
	if len(cfg.WarningRecipients) == 0 {
		return batch.OK("no warning recipients configured")
	}

	var from, to time.Time
	if date != nil {
		from = types.Day(*date)
		to = from
	} else {
		from = types.Today()
		to = from.AddDate(0, 0, ScanWindowDays)
	}

	rows, err := d.summaries.ListByStatusAndRange(ctx, summary.StatusWarning, from, to)
	if err != nil {
		logger.Error(ctx, "scan warning summaries failed", "error", err)
		return batch.Fail("scan warning summaries failed")
	}

	interval := time.Duration(cfg.ResendHours) * time.Hour
	now := d.now().UTC()
	sent := 0

	for _, row := range rows {
		key := cacheKey(row)

		last, found, err := d.cache.GetLastSent(ctx, key)
		if err != nil {
			// A broken cache must not silence warnings; treat as unseen.
			logger.Warn(ctx, "warning cache read failed", "key", key, "error", err)
			found = false
		}
		if found && now.Sub(last) <= interval {
			continue
		}

		if err := d.send(ctx, row, cfg.WarningRecipients); err != nil {
			logger.Error(ctx, "warning delivery failed",
				"hotel_id", row.HotelID,
				"room_type_id", row.RoomTypeID,
				"date", types.FormatDay(row.Date),
				"error", err,
			)
			continue
		}

		if err := d.cache.SetLastSent(ctx, key, now, interval); err != nil {
			logger.Warn(ctx, "warning cache write failed", "key", key, "error", err)
		}
		sent++
	}

	logger.Info(ctx, "warning check finished",
		"scanned", len(rows),
		"sent", sent,
	)
	return batch.OK("warning check finished").WithSent(sent)
}

// send resolves catalog names, composes the notification, and delivers it
// to every recipient.
func (d *Dispatcher) send(ctx context.Context, row *summary.Summary, recipients []string) error {
	hotel, err := d.catalog.GetHotel(ctx, row.HotelID)
	if err != nil {
		return fmt.Errorf("load hotel: %w", err)
	}
	roomType, err := d.catalog.GetRoomType(ctx, row.RoomTypeID)
	if err != nil {
		return fmt.Errorf("load room type: %w", err)
	}

	hotelName := row.HotelID.String()
	if hotel != nil {
		hotelName = hotel.Name
	}
	roomName := row.RoomTypeID.String()
	if roomType != nil {
		roomName = roomType.Name
	}

	subject := fmt.Sprintf("Low stock warning: %s / %s on %s",
		hotelName, roomName, types.FormatDay(row.Date))
	body := composeBody(hotelName, roomName, row)

	return d.mailer.Send(ctx, subject, body, recipients)
}

func composeBody(hotelName, roomName string, row *summary.Summary) string {
	return fmt.Sprintf(`<h3>Low stock warning</h3>
<p>Hotel: %s<br/>
Room type: %s<br/>
Date: %s</p>
<table border="1" cellpadding="4">
<tr><th>Total</th><th>Available</th><th>Reserved</th><th>Sold</th><th>Pending</th></tr>
<tr><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>
</table>
<p>Available: %.2f%%</p>`,
		hotelName, roomName, types.FormatDay(row.Date),
		row.Total, row.Available, row.Reserved, row.Sold, row.Pending,
		row.AvailablePercent())
}
