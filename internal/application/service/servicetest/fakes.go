// Package servicetest holds in-memory implementations of the service ports.
package servicetest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/domain/account"
)

type Publisher struct {
	mu     sync.Mutex
	events []account.Event
	ch     chan struct{}
}

func NewPublisher() *Publisher {
	return &Publisher{ch: make(chan struct{}, 64)}
}

func (p *Publisher) Publish(ctx context.Context, events ...account.Event) error {
	p.mu.Lock()
	p.events = append(p.events, events...)
	p.mu.Unlock()
	p.ch <- struct{}{}
	return nil
}

// Wait blocks until n Publish calls arrived or the timeout expires, then
// returns everything published so far.
func (p *Publisher) Wait(n int, timeout time.Duration) []account.Event {
	deadline := time.After(timeout)
	for i := 0; i < n; i++ {
		select {
		case <-p.ch:
		case <-deadline:
			i = n
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]account.Event, len(p.events))
	copy(out, p.events)
	return out
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]*account.Profile
	Deleted []string
}

func NewCache() *Cache {
	return &Cache{entries: map[string]*account.Profile{}}
}

func (c *Cache) Get(ctx context.Context, key string) (*account.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *Cache) Set(ctx context.Context, key string, p *account.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = p
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.Deleted = append(c.Deleted, keys...)
	return nil
}

func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

type Uploader struct {
	mu        sync.Mutex
	Uploaded  map[string][]byte
	Deleted   []string
	UploadErr error
	deletedCh chan string
}

var _ service.Uploader = (*Uploader)(nil)

func NewUploader() *Uploader {
	return &Uploader{Uploaded: map[string][]byte{}, deletedCh: make(chan string, 16)}
}

func (u *Uploader) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (*service.UploadResult, error) {
	if u.UploadErr != nil {
		return nil, u.UploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	id := folder + "/" + publicID
	u.mu.Lock()
	u.Uploaded[id] = buf.Bytes()
	u.mu.Unlock()
	return &service.UploadResult{PublicID: id, URL: fmt.Sprintf("https://cdn.test/%s.jpg", id)}, nil
}

func (u *Uploader) Delete(ctx context.Context, publicID string) error {
	u.mu.Lock()
	u.Deleted = append(u.Deleted, publicID)
	u.mu.Unlock()
	u.deletedCh <- publicID
	return nil
}

// WaitDeleted returns the next deleted public id, or "" after the timeout.
func (u *Uploader) WaitDeleted(timeout time.Duration) string {
	select {
	case id := <-u.deletedCh:
		return id
	case <-time.After(timeout):
		return ""
	}
}
