package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с бэкендом магазинов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда магазинов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDaySchedule получает расписание магазина на дату: рабочие интервалы
// и занятость по существующим заявкам. 404 означает, что магазин в этот
// день не работает
func (c *Client) GetDaySchedule(ctx context.Context, shopUsername, date string) (*DaySchedule, error) {
	endpoint := fmt.Sprintf("%s/api/shop/%s/available_slots?date=%s",
		c.baseURL, url.PathEscape(shopUsername), url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrNoWorkingHours
	default:
		return nil, unexpectedStatus(resp)
	}

	var schedule DaySchedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &schedule, nil
}

// GetAppointment получает актуальное состояние заявки
func (c *Client) GetAppointment(ctx context.Context, appointmentID int64) (*Appointment, error) {
	endpoint := fmt.Sprintf("%s/api/appointments/%d", c.baseURL, appointmentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &appointment, nil
}

// RequestOTP просит бэкенд отправить код подтверждения на телефон.
// Доставка кода (SMS) целиком на стороне бэкенда
func (c *Client) RequestOTP(ctx context.Context, phoneNumber string) error {
	payload := map[string]string{"phone_number": phoneNumber}

	resp, err := c.postJSON(ctx, c.baseURL+"/api/request_code", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	default:
		return unexpectedStatus(resp)
	}
}

// VerifyOTP подтверждает код и возвращает заявку клиента вместе с
// каталогом услуг магазина
func (c *Client) VerifyOTP(ctx context.Context, phoneNumber, code string) (*VerifyOTPResult, error) {
	payload := map[string]string{
		"phone_number": phoneNumber,
		"otp_code":     code,
	}

	resp, err := c.postJSON(ctx, c.baseURL+"/api/verify_code", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized:
		return nil, ErrInvalidOTP
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var result VerifyOTPResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// Reserve создает новую заявку в магазине
func (c *Client) Reserve(ctx context.Context, shopUsername string, request ReserveRequest) error {
	endpoint := fmt.Sprintf("%s/api/shop/%s/reserve", c.baseURL, url.PathEscape(shopUsername))

	resp, err := c.postJSON(ctx, endpoint, request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusNotFound:
		return ErrShopNotFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrSlotTaken, readErrorMessage(resp))
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrRequestRejected, readErrorMessage(resp))
	default:
		return unexpectedStatus(resp)
	}
}

// RequestChange отправляет запрос на изменение заявки
func (c *Client) RequestChange(ctx context.Context, request ChangeRequest) error {
	resp, err := c.postJSON(ctx, c.baseURL+"/api/request_change", request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrSlotTaken, readErrorMessage(resp))
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrRequestRejected, readErrorMessage(resp))
	default:
		return unexpectedStatus(resp)
	}
}

// postJSON выполняет POST с JSON-телом
func (c *Client) postJSON(ctx context.Context, endpoint string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

// readErrorMessage достает сообщение об ошибке из тела ответа
func readErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "unknown error"
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	return string(body)
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
