package gcal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/ladwig/studio-booking-tool/internal/domain"
)

// Client talks to the studio's Google Calendar using a service account.
// It implements the availability CalendarReader and the booking
// CalendarWriter interfaces.
type Client struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
	log        *zap.Logger
}

// NewClient builds a calendar client from a service-account credentials
// file. The events scope covers both the read and the write path.
func NewClient(ctx context.Context, credentialsFile, calendarID string, loc *time.Location, log *zap.Logger) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{svc: svc, calendarID: calendarID, loc: loc, log: log}, nil
}

// BookedIntervals returns the occupied intervals of one calendar day in the
// studio timezone, ordered by start time. All-day events carry no concrete
// interval and are skipped.
func (c *Client) BookedIntervals(ctx context.Context, day time.Time) ([]domain.BookedInterval, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, c.loc)
	endOfDay := startOfDay.Add(24 * time.Hour)

	var intervals []domain.BookedInterval
	pageToken := ""
	for {
		call := c.svc.Events.List(c.calendarID).
			TimeMin(startOfDay.Format(time.RFC3339)).
			TimeMax(endOfDay.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			ShowDeleted(false).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}

		for _, ev := range events.Items {
			if ev.Start == nil || ev.End == nil || ev.Start.DateTime == "" || ev.End.DateTime == "" {
				continue
			}
			start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
			if err != nil {
				c.log.Warn("unparseable event start", zap.String("event_id", ev.Id), zap.Error(err))
				continue
			}
			end, err := time.Parse(time.RFC3339, ev.End.DateTime)
			if err != nil {
				c.log.Warn("unparseable event end", zap.String("event_id", ev.Id), zap.Error(err))
				continue
			}
			intervals = append(intervals, domain.BookedInterval{
				Start: start.In(c.loc),
				End:   end.In(c.loc),
			})
		}

		pageToken = events.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return intervals, nil
}

// CreateTentativeEvent places a tentative event for a submitted booking at
// the slot's interval, carrying the customer contact and the booking
// reference in the description.
func (c *Client) CreateTentativeEvent(ctx context.Context, b *domain.Booking) error {
	ev := &calendar.Event{
		Summary: fmt.Sprintf("[PENDING] %s - %s %s",
			b.Product.Item.Name, b.PersonalInfo.FirstName, b.PersonalInfo.LastName),
		Description: fmt.Sprintf(
			"Booking reference: %s\nEmail: %s\nPhone: %s\nNote: %s",
			b.Reference, b.PersonalInfo.Email, b.PersonalInfo.Phone, b.Note,
		),
		Status: "tentative",
		Start: &calendar.EventDateTime{
			DateTime: b.Slot.Start.Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: b.Slot.End.Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
	}

	if _, err := c.svc.Events.Insert(c.calendarID, ev).Context(ctx).Do(); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
