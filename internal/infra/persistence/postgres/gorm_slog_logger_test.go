package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"eligibility/config"
	deliverycontext "eligibility/internal/delivery/context"
	"eligibility/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{
			name:  "query failure",
			begin: time.Now(),
			err:   errors.New("boom"),
			want:  "GORM query failed",
		},
		{
			name:    "record not found is ignored",
			begin:   time.Now(),
			err:     gorm.ErrRecordNotFound,
			wantNot: "GORM",
		},
		{
			name:  "slow query",
			begin: time.Now().Add(-time.Second),
			want:  "GORM slow query",
		},
		{
			name:    "fast query is quiet outside debug",
			begin:   time.Now(),
			wantNot: "GORM",
		},
		{
			name:  "fast query logged in debug",
			debug: true,
			begin: time.Now(),
			want:  `"msg":"GORM query"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newBufferedLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newGormSlogLogger(base, cfg)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, _ := newBufferedLogger()
	reqLogger, buf := newBufferedLogger()
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "r-1")))

	l := newGormSlogLogger(base, &config.Config{})
	l.Error(ctx, "failed %s", "insert")

	assert.Contains(t, buf.String(), `"request_id":"r-1"`)
	assert.Contains(t, buf.String(), "failed insert")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	base, buf := newBufferedLogger()

	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)
	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "ignored")

	assert.Empty(t, buf.String())
}
