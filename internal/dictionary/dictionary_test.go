package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoaderFetchesBothDictionaries(t *testing.T) {
	intents := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"recommend": ["نسقولي", "شكلي يكون حلو"]}`))
	}))
	defer intents.Close()

	products := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"tops": ["قميص اوكسفورد"], "dresses": ["فستان سواريه"]}`))
	}))
	defer products.Close()

	l := NewLoader(intents.Client(), intents.URL, products.URL, zap.NewNop())
	l.load(context.Background())

	assert.Equal(t, []string{"نسقولي", "شكلي يكون حلو"}, l.IntentPhrases("recommend"))
	assert.Nil(t, l.IntentPhrases("unknown-category"))
	assert.ElementsMatch(t, []string{"قميص اوكسفورد", "فستان سواريه"}, l.ProductPhrases())
}

// A failed fetch leaves the dictionary permanently empty; accessors stay
// nil-safe and callers never see an error.
func TestLoaderDegradesSilentlyOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), srv.URL, srv.URL, zap.NewNop())
	l.load(context.Background())

	assert.Nil(t, l.IntentPhrases("recommend"))
	assert.Nil(t, l.ProductPhrases())
}

func TestLoaderUnreachableEndpoint(t *testing.T) {
	l := NewLoader(nil, "http://127.0.0.1:1/intents.json", "", zap.NewNop())
	l.load(context.Background())

	assert.Nil(t, l.IntentPhrases("recommend"))
	assert.Nil(t, l.ProductPhrases())
}

func TestLoaderBeforeLoadIsNilSafe(t *testing.T) {
	l := NewLoader(nil, "", "", zap.NewNop())

	assert.Nil(t, l.IntentPhrases("recommend"))
	assert.Nil(t, l.ProductPhrases())
}
