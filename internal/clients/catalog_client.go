// internal/clients/catalog_client.go
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"libery/internal/catalog"
	"libery/pkg/apierror"
)

// Endpoints maps each item kind to its resource path on the backend. The
// paths are configured externally alongside the base URL.
type Endpoints struct {
	Items    string
	Books    string
	Comics   string
	Journals string
}

// forKind returns the collection path for the given kind. Unknown kinds
// fall back to the books path: legacy records sometimes omit the kind and
// the backend has always routed those as books.
func (e Endpoints) forKind(k catalog.Kind) string {
	switch k {
	case catalog.KindComic:
		return e.Comics
	case catalog.KindJournal:
		return e.Journals
	default:
		return e.Books
	}
}

// CatalogClient talks to the catalog REST backend. Every failure comes
// back as an *apierror.Error, never a panic or a raw transport error, so
// callers can present the message directly.
type CatalogClient struct {
	baseURL   string
	endpoints Endpoints
	http      *http.Client
	logger    *zap.Logger
	tracer    trace.Tracer
}

func NewCatalogClient(baseURL string, endpoints Endpoints, logger *zap.Logger) *CatalogClient {
	return &CatalogClient{
		baseURL:   baseURL,
		endpoints: endpoints,
		http:      http.DefaultClient,
		logger:    logger,
		tracer:    otel.Tracer("libery/clients"),
	}
}

// collectionURL resolves the full collection URL for a kind. Misrouted
// kinds are logged so the book fallback stays observable.
func (c *CatalogClient) collectionURL(k catalog.Kind) string {
	if !k.Valid() {
		c.logger.Warn("unknown item kind, routing to books endpoint", zap.String("kind", string(k)))
	}
	return c.baseURL + c.endpoints.forKind(k)
}

// List fetches every catalog item from the unified items endpoint.
func (c *CatalogClient) List(ctx context.Context) ([]catalog.Item, error) {
	ctx, span := c.tracer.Start(ctx, "catalog.list")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.endpoints.Items, nil)
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var items []catalog.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, apierror.NewAPI(resp.StatusCode, "malformed items response")
	}
	return items, nil
}

// Get fetches a single item for update pre-fill. The journals endpoint
// wraps its response in {success, data}; bare item bodies are accepted
// too.
func (c *CatalogClient) Get(ctx context.Context, kind catalog.Kind, id catalog.ItemID) (*catalog.Item, error) {
	ctx, span := c.tracer.Start(ctx, "catalog.get",
		trace.WithAttributes(
			attribute.String("item.kind", string(kind)),
			attribute.String("item.id", string(id)),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.collectionURL(kind), id), nil)
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}

	var wrapped struct {
		Success *bool         `json:"success"`
		Data    *catalog.Item `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	var item catalog.Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, apierror.NewAPI(resp.StatusCode, "malformed item response")
	}
	return &item, nil
}

// Create adds a new item of the given kind. The response body is merged
// over the submitted item when the backend echoes one; backends that
// return an empty body are tolerated.
func (c *CatalogClient) Create(ctx context.Context, kind catalog.Kind, item catalog.Item) (*catalog.Item, error) {
	ctx, span := c.tracer.Start(ctx, "catalog.create",
		trace.WithAttributes(attribute.String("item.kind", string(kind))),
	)
	defer span.End()

	return c.send(ctx, http.MethodPost, c.collectionURL(kind), item)
}

// Update replaces the item with the given ID.
func (c *CatalogClient) Update(ctx context.Context, kind catalog.Kind, id catalog.ItemID, item catalog.Item) (*catalog.Item, error) {
	ctx, span := c.tracer.Start(ctx, "catalog.update",
		trace.WithAttributes(
			attribute.String("item.kind", string(kind)),
			attribute.String("item.id", string(id)),
		),
	)
	defer span.End()

	return c.send(ctx, http.MethodPut, fmt.Sprintf("%s/%s", c.collectionURL(kind), id), item)
}

// Remove deletes the item with the given ID.
func (c *CatalogClient) Remove(ctx context.Context, kind catalog.Kind, id catalog.ItemID) error {
	ctx, span := c.tracer.Start(ctx, "catalog.remove",
		trace.WithAttributes(
			attribute.String("item.kind", string(kind)),
			attribute.String("item.id", string(id)),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/%s", c.collectionURL(kind), id), nil)
	if err != nil {
		return apierror.NewNetwork(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apierror.NewNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}
	return nil
}

// send issues a JSON mutation request and decodes whatever item body the
// backend chose to return.
func (c *CatalogClient) send(ctx context.Context, method, url string, item catalog.Item) (*catalog.Item, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierror.NewNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.apiError(resp)
	}

	// Mutation responses are not required to echo the full object.
	out := item
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return &out, nil
}

// apiError turns a non-success response into an *apierror.Error,
// preferring the server-provided message over the status text.
func (c *CatalogClient) apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return apierror.NewAPI(resp.StatusCode, payload.Message)
}
