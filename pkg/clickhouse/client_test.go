package clickhouse_test

import (
	"context"
	"testing"

	"github.com/pseudomuto/unitdiff/pkg/clickhouse"
	"github.com/stretchr/testify/require"
)

func TestNewClientUnreachable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		dsn  string
	}{
		{name: "bare host:port", dsn: "localhost:9"},
		{name: "clickhouse DSN", dsn: "clickhouse://default:@localhost:9/default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := clickhouse.NewClient(ctx, tt.dsn)
			require.Error(t, err)
			require.Nil(t, client)
		})
	}
}
