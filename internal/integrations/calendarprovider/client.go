package calendarprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// Client talks to the third-party scheduling provider, the actual source of
// truth for staff calendars. This service only mirrors and re-reads its output.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a new calendar provider client
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateAppointment books an appointment on the given staff calendar
func (c *Client) CreateAppointment(ctx context.Context, req *AppointmentRequest) (*AppointmentResponse, error) {
	url := fmt.Sprintf("%s/v1/calendars/%s/appointments", c.baseURL, req.CalendarID)

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// fall through to decoding
	case http.StatusConflict:
		return nil, ErrSlotTaken
	case http.StatusNotFound:
		return nil, ErrCalendarNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var appointment AppointmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &appointment, nil
}

// TriggerResync asks the provider to push fresh slots for one calendar and date
func (c *Client) TriggerResync(ctx context.Context, calendarID string, date types.DateString) error {
	url := fmt.Sprintf("%s/v1/calendars/%s/resync?date=%s", c.baseURL, calendarID, date)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		return ErrCalendarNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// TriggerResyncWithGracefulDegradation triggers a resync, downgrading provider
// unavailability to ErrServiceDegraded. The next periodic sync will converge
// the mirror anyway, so callers treat this as best-effort.
func (c *Client) TriggerResyncWithGracefulDegradation(ctx context.Context, calendarID string, date types.DateString) error {
	c.log.Info("Triggering resync for calendar=%s, date=%s", calendarID, date)

	if err := c.TriggerResync(ctx, calendarID, date); err != nil {
		c.log.Error("Calendar provider resync failed, applying graceful degradation for calendar=%s, date=%s: %v",
			calendarID, date, err)
		return fmt.Errorf("%w: calendar=%s, date=%s, error=%v", ErrServiceDegraded, calendarID, date, err)
	}

	c.log.Info("Resync triggered for calendar=%s, date=%s", calendarID, date)
	return nil
}
