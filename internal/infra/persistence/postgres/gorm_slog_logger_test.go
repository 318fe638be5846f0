package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"algoarena/config"
	deliverycontext "algoarena/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), &buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "identities" WHERE provider = 'github'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is not an error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("query errors are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection refused"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("debug logs every query with the request logger", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		ctx := deliverycontext.WithLogger(context.Background(), l.logger.With(slog.String("request_id", "req-42")))
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), `"msg":"GORM query"`)
		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})
}
