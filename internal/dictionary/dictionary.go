// Package dictionary fetches the storefront's optional phrase dictionaries
// (intents.json and product_dictionary.json) once per process. A failed or
// missing fetch is never an error for callers: accessors just return nothing
// and the classifier keeps running on its built-in patterns.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// Loader is the injectable replacement for the storefront's process-global
// dictionary cache. Start is fire-and-forget; there is no retry and a failed
// fetch leaves the dictionary empty for the rest of the process lifetime.
type Loader struct {
	client      *http.Client
	intentsURL  string
	productsURL string
	logger      *zap.Logger

	once     sync.Once
	mu       sync.RWMutex
	intents  map[string][]string
	products map[string][]string
}

func NewLoader(client *http.Client, intentsURL, productsURL string, logger *zap.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		client:      client,
		intentsURL:  intentsURL,
		productsURL: productsURL,
		logger:      logger,
	}
}

// Start kicks off the one-shot fetch in the background. Safe to call more
// than once; only the first call does anything.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.load(ctx)
	})
}

func (l *Loader) load(ctx context.Context) {
	if l.intentsURL != "" {
		if m, err := l.fetch(ctx, l.intentsURL); err != nil {
			l.logger.Warn("Failed to load intents dictionary", zap.Error(err), zap.String("url", l.intentsURL))
		} else {
			l.mu.Lock()
			l.intents = m
			l.mu.Unlock()
		}
	}
	if l.productsURL != "" {
		if m, err := l.fetch(ctx, l.productsURL); err != nil {
			l.logger.Warn("Failed to load product dictionary", zap.Error(err), zap.String("url", l.productsURL))
		} else {
			l.mu.Lock()
			l.products = m
			l.mu.Unlock()
		}
	}
}

func (l *Loader) fetch(ctx context.Context, url string) (map[string][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var m map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary: %w", err)
	}
	return m, nil
}

// IntentPhrases returns the fetched trigger phrases for one category, or
// nil while the dictionary is not (yet) loaded.
func (l *Loader) IntentPhrases(category string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.intents == nil {
		return nil
	}
	return l.intents[category]
}

// ProductPhrases flattens every category of the product dictionary into one
// list of item names. Nil while not loaded.
func (l *Loader) ProductPhrases() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.products == nil {
		return nil
	}
	var names []string
	for _, items := range l.products {
		names = append(names, items...)
	}
	return names
}
