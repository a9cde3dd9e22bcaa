package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/hearthware/hearth/internal/models"
)

// ── Integrations ─────────────────────────────────────────────────

func (c *Client) ListIntegrations(ctx context.Context) ([]models.Integration, error) {
	return list[models.Integration](ctx, c, "/v1/integrations")
}

func (c *Client) ConnectIntegration(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/integrations/"+url.PathEscape(id)+"/connect", nil)
}

func (c *Client) DisconnectIntegration(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/integrations/"+url.PathEscape(id)+"/disconnect", nil)
}

func (c *Client) RemoveIntegration(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodDelete, "/v1/integrations/"+url.PathEscape(id), nil)
}

// ── Memories ─────────────────────────────────────────────────────

func (c *Client) ListMemories(ctx context.Context) ([]models.Memory, error) {
	return list[models.Memory](ctx, c, "/v1/memories")
}

func (c *Client) ReindexMemory(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/memories/"+url.PathEscape(id)+"/reindex", nil)
}

// SaveMemory updates a memory's title and content. The daemon response
// is awaited before any local state changes; nothing is applied
// optimistically.
func (c *Client) SaveMemory(ctx context.Context, id, title, content string) (string, error) {
	payload := map[string]string{"title": title, "content": content}
	return c.action(ctx, http.MethodPatch, "/v1/memories/"+url.PathEscape(id), payload)
}

func (c *Client) DeleteMemory(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodDelete, "/v1/memories/"+url.PathEscape(id), nil)
}

// ── Documents ────────────────────────────────────────────────────

func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return list[models.Document](ctx, c, "/v1/documents")
}

func (c *Client) ReindexDocument(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/documents/"+url.PathEscape(id)+"/reindex", nil)
}

func (c *Client) RemoveDocument(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodDelete, "/v1/documents/"+url.PathEscape(id), nil)
}

// ── Browser ──────────────────────────────────────────────────────

func (c *Client) ListBrowserTabs(ctx context.Context) ([]models.BrowserTab, error) {
	return list[models.BrowserTab](ctx, c, "/v1/browser/tabs")
}

func (c *Client) ResumeBrowserSession(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/browser/tabs/"+url.PathEscape(id)+"/resume", nil)
}

func (c *Client) CloseBrowserTab(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodDelete, "/v1/browser/tabs/"+url.PathEscape(id), nil)
}

// ── Personas ─────────────────────────────────────────────────────

func (c *Client) ListPersonas(ctx context.Context) ([]models.Persona, error) {
	return list[models.Persona](ctx, c, "/v1/personas")
}

func (c *Client) EnablePersona(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/personas/"+url.PathEscape(id)+"/enable", nil)
}

func (c *Client) DisablePersona(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/personas/"+url.PathEscape(id)+"/disable", nil)
}

func (c *Client) RetryPersonaSync(ctx context.Context, id string) (string, error) {
	return c.action(ctx, http.MethodPost, "/v1/personas/"+url.PathEscape(id)+"/retry", nil)
}

// ── Daemon meta ──────────────────────────────────────────────────

// Health probes the daemon liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/v1/health", nil)
	return err
}

// DaemonVersion returns the daemon's reported semantic version.
func (c *Client) DaemonVersion(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/version", nil)
	if err != nil {
		return "", err
	}
	var envelope struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", &unreachableError{cause: err}
	}
	return envelope.Version, nil
}
