package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// basePath — префикс всех путей API на сервере
const basePath = "/api/v1/"

// Request описывает один запрос к серверу
type Request struct {
	Body    any               // тело запроса, сериализуется в JSON
	Headers map[string]string // дополнительные заголовки поверх стандартных
	Method  string            // один из GET, POST, PUT, DELETE
	Path    string            // путь относительно /api/v1/, например "article/123"
}

// Result — нормализованный результат запроса.
// Гейтвей никогда не возвращает ошибку наружу: любой исход,
// включая транспортный сбой, сводится к Result.
type Result struct {
	Payload    json.RawMessage // тело успешного ответа
	Message    string          // текст ошибки при Failed
	StatusCode int             // статус ответа, 500 если сервер его не дал
	Failed     bool
}

// Client — единственная точка сетевого ввода-вывода клиента
type Client struct {
	httpClient *http.Client
	log        zerolog.Logger
	baseURL    string
}

// NewClient создает новый API клиент.
// Сессионная cookie, которую ставит сервер, живёт в jar'е http-клиента
// и подставляется в запросы автоматически; код клиента её не читает.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	// cookiejar.New с nil-опциями не возвращает ошибок
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Do выполняет HTTP запрос и нормализует его исход
func (c *Client) Do(ctx context.Context, req Request) Result {
	reqID := uuid.NewString()

	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return c.fail(reqID, req, http.StatusInternalServerError,
			fmt.Sprintf("unsupported method: %s", req.Method))
	}

	var bodyReader io.Reader
	if req.Body != nil {
		jsonData, err := json.Marshal(req.Body)
		if err != nil {
			return c.fail(reqID, req, http.StatusInternalServerError,
				fmt.Sprintf("failed to marshal request body: %v", err))
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+basePath+req.Path, bodyReader)
	if err != nil {
		return c.fail(reqID, req, http.StatusInternalServerError,
			fmt.Sprintf("failed to create request: %v", err))
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Транспортная ошибка: статуса нет, по контракту подставляем 500
		return c.fail(reqID, req, http.StatusInternalServerError, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(reqID, req, http.StatusInternalServerError,
			fmt.Sprintf("failed to read response body: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fail(reqID, req, resp.StatusCode, serverMessage(resp.StatusCode, respBody))
	}

	return Result{Payload: respBody, StatusCode: resp.StatusCode}
}

// serverMessage извлекает сообщение об ошибке из тела ответа:
// сначала {"message": ...}, затем сырое тело, затем текст статуса
func serverMessage(status int, body []byte) string {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}

// fail логирует неудачный запрос и собирает нормализованный результат
func (c *Client) fail(reqID string, req Request, status int, message string) Result {
	c.log.Error().
		Str("request_id", reqID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", status).
		Str("message", message).
		Msg("api request failed")
	return Result{Failed: true, Message: message, StatusCode: status}
}
