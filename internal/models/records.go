// Package models defines the domain records mirrored from the hearth
// daemon, plus the client-side config structs persisted under ~/.hearth.
package models

import "strings"

// Integration is a third-party service connection owned by the daemon
// (mail, calendar, chat, ...). Status partitions the Integrations panel
// into its "connected" and "available" sections.
type Integration struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
	Status      string `json:"status"` // "connected" | "available" | "error"
	ConnectedAt string `json:"connected_at,omitempty"`
}

func (i Integration) RecordID() string { return i.ID }

func (i Integration) SearchFields() []string {
	return []string{i.ID, i.Name, i.Provider, i.Description}
}

// Memory is one entry in the daemon's long-term memory store.
type Memory struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags,omitempty"`
	Score     float64  `json:"score"`
	IndexedAt string   `json:"indexed_at,omitempty"`
}

func (m Memory) RecordID() string { return m.ID }

func (m Memory) SearchFields() []string {
	return []string{m.ID, m.Title, m.Content, strings.Join(m.Tags, " ")}
}

// Document is a file the daemon has ingested (or is ingesting) into its
// document index.
type Document struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	MimeType  string `json:"mime_type,omitempty"`
	Status    string `json:"status"` // "indexed" | "pending" | "failed"
	IndexedAt string `json:"indexed_at,omitempty"`
}

func (d Document) RecordID() string { return d.ID }

func (d Document) SearchFields() []string {
	return []string{d.ID, d.Name, d.Path}
}

// BrowserTab is one tab or saved session in the daemon's automated
// browser. Kind partitions the Browser panel into "tabs" and "sessions".
type BrowserTab struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	SessionID string `json:"session_id,omitempty"`
	Kind      string `json:"kind"`   // "tab" | "session"
	Status    string `json:"status"` // "active" | "idle" | "suspended"
}

func (b BrowserTab) RecordID() string { return b.ID }

func (b BrowserTab) SearchFields() []string {
	return []string{b.ID, b.Title, b.URL}
}

// Persona is a daemon persona profile. At most one is active at a time,
// but that is the daemon's invariant to enforce, not ours.
type Persona struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	SyncStatus  string `json:"sync_status,omitempty"` // "synced" | "syncing" | "failed"
}

func (p Persona) RecordID() string { return p.ID }

func (p Persona) SearchFields() []string {
	return []string{p.ID, p.Name, p.Description}
}
