package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("logger present in ctx", func(t *testing.T) {
		log := New()
		ctx := context.WithValue(context.Background(), ContextKey, log)
		require.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to a fresh logger", func(t *testing.T) {
		log := FromContext(context.Background())
		require.NotNil(t, log)
	})
}

func TestLogger(t *testing.T) {
	// skip in ci checks - just for eyeballing output
	if true {
		t.Skip()
	}

	log := New()
	log.Infof("hello %s", "world")
	log.Errorf("ah man: %v", map[string]string{"hi": "ok"})

	t.Fail()
}
