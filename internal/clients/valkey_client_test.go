package clients

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVideoInfoKey(t *testing.T) {
	assert.Equal(t, "youtube:video_info:dQw4w9WgXcQ", videoInfoKey("dQw4w9WgXcQ"))
}

func TestNewValkeyClientUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client, err := NewValkeyClient(ctx, ValkeyOptions{Address: "127.0.0.1:1", TTL: time.Minute})

	assert.Nil(t, client)
	assert.Error(t, err)
}
