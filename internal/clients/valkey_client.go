package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/ytsentiment/internal/models"
)

const VALKEY_VIDEO_INFO_PREFIX = "youtube:video_info:"

type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
	TTL      time.Duration
}

// ValkeyClient caches video metadata only. Failures degrade to cache misses.
type ValkeyClient struct {
	Client valkey.Client
	ttl    time.Duration
}

func NewValkeyClient(ctx context.Context, opts ValkeyOptions) (*ValkeyClient, error) {
	clientOpts := valkey.ClientOption{
		InitAddress:      []string{opts.Address},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if opts.TLS {
		clientOpts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey", slog.Duration("ttl", opts.TTL))
	return &ValkeyClient{Client: client, ttl: opts.TTL}, nil
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

func (vc *ValkeyClient) GetVideoInfo(ctx context.Context, id string) (*models.VideoInfo, bool) {
	raw, err := vc.Client.Do(ctx, vc.Client.B().Get().Key(videoInfoKey(id)).Build()).AsBytes()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[ValkeyClient] Get failed", slog.String("videoId", id), slog.String("error", err.Error()))
		}
		return nil, false
	}

	var info models.VideoInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		slog.Warn("[ValkeyClient] Discarding unreadable entry", slog.String("videoId", id), slog.String("error", err.Error()))
		return nil, false
	}
	return &info, true
}

func (vc *ValkeyClient) SetVideoInfo(ctx context.Context, id string, info *models.VideoInfo) {
	if info == nil || vc.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return
	}

	cmd := vc.Client.B().Set().Key(videoInfoKey(id)).Value(valkey.BinaryString(raw)).Ex(vc.ttl).Build()
	if err := vc.Client.Do(ctx, cmd).Error(); err != nil {
		slog.Warn("[ValkeyClient] Set failed", slog.String("videoId", id), slog.String("error", err.Error()))
	}
}

func videoInfoKey(id string) string {
	return VALKEY_VIDEO_INFO_PREFIX + id
}
