package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/angristan/nebula-backend/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrExtractorNotFound = errors.New("yt-dlp executable not found")
	ErrExtraction        = errors.New("extraction failed")
)

// Request describes one yt-dlp invocation. Target is a URL or a search
// pseudo-URL such as "ytsearch20:query".
type Request struct {
	Target     string
	Format     string
	Flat       bool
	NoPlaylist bool
}

func (r Request) mode() string {
	if r.Flat {
		return "flat"
	}

	return "full"
}

// Args builds the command line. Output is always a single JSON document and
// nothing is downloaded.
func (r Request) Args() []string {
	args := []string{
		"--dump-single-json",
		"--quiet",
		"--no-warnings",
		"--skip-download",
	}
	if r.Flat {
		args = append(args, "--flat-playlist")
	}
	if r.NoPlaylist {
		args = append(args, "--no-playlist")
	}
	if r.Format != "" {
		args = append(args, "--format", r.Format)
	}

	// "--" keeps a target starting with a dash from being parsed as a flag
	return append(args, "--", r.Target)
}

type ClientConfig struct {
	binary  string
	timeout time.Duration
	tracer  trace.Tracer
}

// NewClientConfig configures the client. A zero timeout leaves the call
// bounded only by the caller's context.
func NewClientConfig(
	binary string,
	timeout time.Duration,
	tracer trace.Tracer,
) *ClientConfig {
	if binary == "" {
		binary = "yt-dlp"
	}

	return &ClientConfig{
		binary:  binary,
		timeout: timeout,
		tracer:  tracer,
	}
}

type Client struct {
	binary  string
	timeout time.Duration
	tracer  trace.Tracer
}

func New(config *ClientConfig) *Client {
	return &Client{
		binary:  config.binary,
		timeout: config.timeout,
		tracer:  config.tracer,
	}
}

// Version runs "yt-dlp --version", used as a startup check.
func (client *Client) Version(ctx context.Context) (string, error) {
	path, err := exec.LookPath(client.binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExtractorNotFound, client.binary)
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to run yt-dlp: %w", err)
	}

	return strings.TrimSpace(string(out)), nil
}

func (client *Client) Extract(ctx context.Context, req Request) (*Info, error) {
	ctx, span := client.tracer.Start(ctx, "YtdlpClient.Extract")
	defer span.End()

	span.SetAttributes(
		attribute.String("ytdlp.target", req.Target),
		attribute.String("ytdlp.mode", req.mode()),
		attribute.String("ytdlp.format", req.Format),
	)

	if client.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.timeout)
		defer cancel()
	}

	start := time.Now()
	info, err := client.run(ctx, req)
	metrics.ExtractorDuration.WithLabelValues(req.mode()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExtractorRequestsTotal.WithLabelValues(req.mode(), "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	metrics.ExtractorRequestsTotal.WithLabelValues(req.mode(), "ok").Inc()

	return info, nil
}

func (client *Client) run(ctx context.Context, req Request) (*Info, error) {
	cmd := exec.CommandContext(ctx, client.binary, req.Args()...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrExtractorNotFound, client.binary)
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s", ErrExtraction, ctx.Err())
		}

		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrExtraction, msg)
	}

	var info Info
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("%w: decode output: %s", ErrExtraction, err)
	}

	return &info, nil
}
