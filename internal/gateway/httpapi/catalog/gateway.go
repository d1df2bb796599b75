package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"freightbid/internal/entities"
	retrierconfig "freightbid/pkg/retrier"
	"freightbid/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "catalog-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// ErrReferenceNotFound возвращается когда справочник не знает такой id.
var ErrReferenceNotFound = errors.New("reference not found")

// Пути справочников в каталоге.
var kindPaths = map[entities.ReferenceKind]string{
	entities.RefTruckType:     "truck-types",
	entities.RefTruckCategory: "truck-categories",
	entities.RefBedType:       "bed-types",
	entities.RefUseTag:        "use-tags",
}

type CatalogGateway struct {
	client   httpClient
	retrier  retrier
	cache    cacheStore
	baseURL  string
	cacheTTL time.Duration
}

func New(client httpClient, cache cacheStore, baseURL string, cacheTTL time.Duration) *CatalogGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &CatalogGateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		cache:    cache,
		baseURL:  baseURL,
		cacheTTL: cacheTTL,
	}
}

func (c *CatalogGateway) GetReference(ctx context.Context, kind entities.ReferenceKind, id string) (*entities.ReferenceItem, error) {
	path, ok := kindPaths[kind]
	if !ok {
		return nil, fmt.Errorf("gateway catalog, unknown reference kind: %s", kind)
	}

	cacheKey := "catalog:" + kind.String() + ":" + id

	// Справочники меняются редко, чтение через кеш.
	if cached, err := c.cache.Get(ctx, cacheKey); err == nil {
		var resp referenceResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			GatewayCacheHitsTotal.WithLabelValues(serviceName, "GetReference").Inc()
			return toDomain(kind, &resp), nil
		}
	}

	url := fmt.Sprintf("%s/v1/%s/%s", c.baseURL, path, id)

	var resp referenceResponse

	err := c.executeWithMetrics(ctx, "GetReference", func(ctx context.Context) error {
		return c.doGet(ctx, url, &resp)
	})
	if err != nil {
		if errors.Is(err, ErrReferenceNotFound) {
			return nil, fmt.Errorf("%w: %s %s", ErrReferenceNotFound, kind, id)
		}
		return nil, fmt.Errorf("gateway catalog, get reference: %s %s: %w", kind, id, err)
	}

	if body, err := json.Marshal(&resp); err == nil {
		// Ошибка записи в кеш не мешает ответу.
		_ = c.cache.Set(ctx, cacheKey, body, c.cacheTTL)
	}

	return toDomain(kind, &resp), nil
}

// ReferenceExists сводит ответ каталога к проверке ссылочной целостности.
func (c *CatalogGateway) ReferenceExists(ctx context.Context, kind entities.ReferenceKind, id string) (bool, error) {
	_, err := c.GetReference(ctx, kind, id)
	if err != nil {
		if errors.Is(err, ErrReferenceNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *CatalogGateway) doGet(ctx context.Context, url string, out *referenceResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case resp.StatusCode == http.StatusNotFound:
		return ErrReferenceNotFound
	default:
		return &httpStatusError{code: resp.StatusCode}
	}
}

type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected catalog status: %d", e.code)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}
	if errors.Is(err, ErrReferenceNotFound) {
		return false
	}

	// Сетевые ошибки ретраим
	return true
}

func (c *CatalogGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	if errors.Is(err, ErrReferenceNotFound) {
		return "404"
	}
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "unknown"
}
