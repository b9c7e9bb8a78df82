package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// Имена эндпоинтов для метрик и логов
const (
	endpointAvailability = "availability"
	endpointPanel        = "panel"
	endpointSpots        = "spots"
	endpointBooking      = "booking"
)

const maxErrorBodySize = 4 << 10

// Endpoints адреса webhook'ов внешнего сервиса автоматизации
type Endpoints struct {
	AvailabilityURL string
	PanelURL        string
	SpotsURL        string
	BookingURL      string
}

// Client клиент для работы с webhook'ами внешнего сервиса
type Client struct {
	endpoints  Endpoints
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента
// timeout применяется одинаково ко всем вызовам
func NewClient(endpoints Endpoints, timeout time.Duration, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// GetAvailabilityConfig получает общую конфигурацию доступности
// Отсутствующие в ответе поля заменяются значениями по умолчанию
func (c *Client) GetAvailabilityConfig(ctx context.Context) (*domain.AvailabilityConfig, error) {
	var resp availabilityConfigResponse
	if err := c.getJSON(ctx, endpointAvailability, c.endpoints.AvailabilityURL, nil, &resp); err != nil {
		return nil, err
	}

	var exceptions []domain.DateException
	if resp.Exceptions != nil {
		exceptions = make([]domain.DateException, 0, len(resp.Exceptions))
		for _, e := range resp.Exceptions {
			exceptions = append(exceptions, domain.DateException{
				Date:      e.Date,
				TimeSlots: e.TimeSlots,
				Message:   e.Message,
			})
		}
	}

	config := domain.AvailabilityConfig{
		DefaultTimeSlots: resp.DefaultTimeSlots,
		BlockedDates:     resp.BlockedDates,
		Exceptions:       exceptions,
		BlockedWeekdays:  resp.BlockedWeekdays,
		Message:          resp.Message,
	}.WithDefaults()

	return &config, nil
}

// CheckPanelAvailability получает занятость панелей на дату
// Если сервис не прислал available/count, используются true/0
func (c *Client) CheckPanelAvailability(ctx context.Context, date string) (*domain.PanelSlots, error) {
	query := url.Values{}
	query.Set("date", date)

	var resp panelAvailabilityResponse
	if err := c.getJSON(ctx, endpointPanel, c.endpoints.PanelURL, query, &resp); err != nil {
		return nil, err
	}

	slots := &domain.PanelSlots{
		Available: true,
		Count:     0,
		Message:   resp.Message,
	}
	if resp.Available != nil {
		slots.Available = *resp.Available
	}
	if resp.Count != nil {
		slots.Count = *resp.Count
	}

	return slots, nil
}

// CheckSpotAvailability проверяет наличие мест для даты и зоны
func (c *Client) CheckSpotAvailability(ctx context.Context, date string, location domain.Location) (*domain.SpotAvailability, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("local", string(location))

	var resp spotAvailabilityResponse
	if err := c.getJSON(ctx, endpointSpots, c.endpoints.SpotsURL, query, &resp); err != nil {
		return nil, err
	}

	return &domain.SpotAvailability{
		Available: resp.Available,
		Message:   resp.Message,
	}, nil
}

// SubmitReservation отправляет бронирование в webhook
// Один вызов = одна попытка, повторы выполняет вызывающая сторона
func (c *Client) SubmitReservation(ctx context.Context, payload domain.SubmissionPayload) (*SubmitResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints.BookingURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req, endpointBooking)
	if err != nil {
		return nil, err
	}

	// Пустое тело - успешная доставка
	result := &SubmitResponse{}
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			c.log.Warn("SubmitReservation: form_id=%s delivered, response is not JSON: %v", payload.FormID, err)
			return &SubmitResponse{}, nil
		}
	}

	if result.Success != nil && !*result.Success {
		return nil, &RejectedError{Message: result.Message}
	}

	return result, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, query url.Values, out interface{}) error {
	target, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: invalid %s url: %v", ErrInternal, endpoint, err)
	}
	if len(query) > 0 {
		q := target.Query()
		for key, values := range query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, endpoint)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrInvalidResponse, endpoint, err)
	}
	return nil
}

// do выполняет запрос, классифицирует ошибки и пишет метрики
func (c *Client) do(req *http.Request, endpoint string) ([]byte, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if IsConnectivityError(err) {
			c.observe(endpoint, "connectivity", start)
			return nil, fmt.Errorf("%w: %s: %v", ErrConnectivity, endpoint, err)
		}
		c.observe(endpoint, "error", start)
		return nil, fmt.Errorf("%w: failed to execute %s request: %w", ErrInternal, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe(endpoint, "error", start)

		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}

		var errBody errorResponse
		if json.Unmarshal(raw, &errBody) == nil {
			statusErr.Message = errBody.Message
		}
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, "error", start)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s response timed out: %v", ErrInternal, endpoint, err)
		}
		return nil, fmt.Errorf("%w: failed to read %s response: %v", ErrInvalidResponse, endpoint, err)
	}

	c.observe(endpoint, "ok", start)
	return body, nil
}

func (c *Client) observe(endpoint, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveRemoteRequest(endpoint, outcome, time.Since(start))
}
