package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
	syncer "github.com/iudanet/listkeeper/internal/sync"
	"github.com/iudanet/listkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером.
// Реализует интерфейс sync.Transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает Bearer токен для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// DownloadFull загружает полный снимок коллекции
func (c *Client) DownloadFull(ctx context.Context, ownerID, entityType string) (*syncer.Snapshot, error) {
	var resp api.FullResponse
	path := fmt.Sprintf("/api/v1/sync/%s/full", url.PathEscape(entityType))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	records := make([]*models.Record, 0, len(resp.Records))
	for i := range resp.Records {
		records = append(records, recordFromWire(&resp.Records[i]))
	}
	return &syncer.Snapshot{
		ServerTime: resp.ServerTime,
		Records:    records,
	}, nil
}

// DownloadChanges загружает изменения коллекции с момента since
func (c *Client) DownloadChanges(ctx context.Context, ownerID, entityType string, since time.Time) (*syncer.Delta, error) {
	var resp api.ChangesResponse
	path := fmt.Sprintf("/api/v1/sync/%s/changes?since=%s",
		url.PathEscape(entityType),
		url.QueryEscape(since.Format(time.RFC3339Nano)))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return &syncer.Delta{
		ServerTime: resp.ServerTime,
		Changes:    changeSetFromWire(&resp.Changes),
	}, nil
}

// UploadChanges отправляет локальные изменения на сервер
func (c *Client) UploadChanges(ctx context.Context, ownerID, entityType string, changes *models.ChangeSet, since time.Time) (*syncer.UploadResult, error) {
	req := api.UploadRequest{
		Since:   since,
		Changes: changeSetToWire(changes),
	}

	var resp api.UploadResponse
	path := fmt.Sprintf("/api/v1/sync/%s/upload", url.PathEscape(entityType))
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}

	return &syncer.UploadResult{
		ServerTime: resp.ServerTime,
		Applied:    resp.Applied,
	}, nil
}

// doRequest выполняет HTTP запрос и транслирует ответы сервера в ошибки
// координатора: 409 становится *sync.ConflictError, 401/403 — ErrAuth,
// прочие ошибки и сбои сети — *sync.TransportError.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &syncer.TransportError{Op: method + " " + path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &syncer.TransportError{Op: method + " " + path, Err: err}
	}

	// Проверяем статус код
	switch {
	case resp.StatusCode == http.StatusConflict:
		var conflict api.ConflictResponse
		if err := json.Unmarshal(respBody, &conflict); err != nil {
			return fmt.Errorf("%w: malformed conflict response: %v", syncer.ErrValidation, err)
		}
		return &syncer.ConflictError{
			ServerCursor: conflict.ServerCursor,
			ClientCursor: conflict.ClientCursor,
		}

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: server returned status %d", syncer.ErrAuth, resp.StatusCode)

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &syncer.TransportError{
				Op:  method + " " + path,
				Err: fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error),
			}
		}
		return &syncer.TransportError{
			Op:  method + " " + path,
			Err: fmt.Errorf("request failed with status %d", resp.StatusCode),
		}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", syncer.ErrValidation, err)
		}
	}

	return nil
}

// recordFromWire конвертирует запись из проводного формата в доменную модель
func recordFromWire(r *api.Record) *models.Record {
	record := &models.Record{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Type:      r.Type,
		Title:     r.Title,
		Body:      r.Body,
		Done:      r.Done,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.DeletedAt != nil {
		record.DeletedAt = *r.DeletedAt
	}
	return record
}

// recordToWire конвертирует доменную модель в проводной формат
func recordToWire(r *models.Record) api.Record {
	record := api.Record{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Type:      r.Type,
		Title:     r.Title,
		Body:      r.Body,
		Done:      r.Done,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Deleted() {
		deletedAt := r.DeletedAt
		record.DeletedAt = &deletedAt
	}
	return record
}

// changeSetFromWire конвертирует набор изменений из проводного формата
func changeSetFromWire(cs *api.ChangeSet) *models.ChangeSet {
	out := &models.ChangeSet{Deleted: cs.Deleted}
	for i := range cs.Created {
		out.Created = append(out.Created, recordFromWire(&cs.Created[i]))
	}
	for i := range cs.Updated {
		out.Updated = append(out.Updated, recordFromWire(&cs.Updated[i]))
	}
	return out
}

// changeSetToWire конвертирует набор изменений в проводной формат
func changeSetToWire(cs *models.ChangeSet) api.ChangeSet {
	out := api.ChangeSet{Deleted: cs.Deleted}
	for _, r := range cs.Created {
		out.Created = append(out.Created, recordToWire(r))
	}
	for _, r := range cs.Updated {
		out.Updated = append(out.Updated, recordToWire(r))
	}
	return out
}
