package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений.
// Все отправки fire-and-forget: выполняются в отдельной горутине
// с собственным таймаутом, ошибки только логируются и никогда
// не влияют на результат операции бронирования
type Client struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений.
// При enabled=false все вызовы становятся no-op
func NewClient(baseURL string, timeout time.Duration, enabled bool, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ReservationCreated уведомляет о созданном бронировании
func (c *Client) ReservationCreated(res *domain.Reservation) {
	c.sendAsync(eventFromReservation(EventReservationCreated, res))
}

// ReservationCancelled уведомляет об отменённом бронировании
func (c *Client) ReservationCancelled(res *domain.Reservation) {
	c.sendAsync(eventFromReservation(EventReservationCancelled, res))
}

func (c *Client) sendAsync(event Event) {
	if !c.enabled {
		return
	}

	go func() {
		// Собственный таймаут: запрос-родитель к этому моменту уже завершён
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		if err := c.send(ctx, event); err != nil {
			c.log.Error("Notifier: failed to deliver %s for reservation id=%d: %v",
				event.Type, event.ReservationID, err)
			return
		}
		c.log.Info("Notifier: delivered %s for reservation id=%d", event.Type, event.ReservationID)
	}()
}

func (c *Client) send(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}

func eventFromReservation(eventType string, res *domain.Reservation) Event {
	return Event{
		Type:          eventType,
		ReservationID: res.ID,
		UserID:        res.UserID,
		Facility:      res.FacilityName,
		StartTime:     res.StartTime.Format(time.RFC3339),
		EndTime:       res.EndTime.Format(time.RFC3339),
		Price:         res.Price,
	}
}
