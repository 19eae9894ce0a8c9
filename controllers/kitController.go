package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agentkit-backend/kitcache"
	"agentkit-backend/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// kitFiles is the fixed allowlist served by the proxy. Anything else is a
// 404 and never reaches the upstream.
var kitFiles = map[string]bool{
	"llms.txt":                      true,
	"llms-full.txt":                 true,
	"inference-labs-brand-guide.md": true,
	"design-tokens.json":            true,
	"agent-enquiry-api.yaml":        true,
}

var kitContentTypes = map[string]string{
	"txt":  "text/plain; charset=utf-8",
	"md":   "text/markdown; charset=utf-8",
	"json": "application/json",
	"yaml": "application/yaml",
}

const (
	kitCacheControl = "public, max-age=300, stale-while-revalidate=3600"
	// Provider entries live through the fresh window plus the
	// stale-while-revalidate window.
	kitCacheTTL = 3900 * time.Second
)

// KitConfig configures the agent-kit proxy.
type KitConfig struct {
	UpstreamBase string `validate:"required,url"`
}

var (
	kitUpstream string
	kitCache    kitcache.Provider
	kitClient   = &http.Client{}
)

// InitKit validates and applies the proxy configuration.
func InitKit(cfg KitConfig, cache kitcache.Provider) error {
	cfg.UpstreamBase = strings.TrimRight(cfg.UpstreamBase, "/")
	if err := middlewares.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("kit proxy config: %w", err)
	}
	kitUpstream = cfg.UpstreamBase
	kitCache = cache
	return nil
}

// ServeKitFile handles GET /agent-kit/:filename with a cache-aside lookup
// keyed by the full request URL.
func ServeKitFile(c *fiber.Ctx) error {
	filename := c.Params("filename")

	if !kitFiles[filename] {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "File not available at this endpoint.",
		})
	}

	cacheKey := c.BaseURL() + c.OriginalURL()

	if bytes, ok, err := kitCache.Get(cacheKey); err == nil && ok {
		if entry, err := kitcache.DecodeEntry(bytes); err == nil {
			return sendCached(c, entry)
		}
	} else if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache lookup failed")
	}

	ext := filename[strings.LastIndex(filename, ".")+1:]
	contentType, ok := kitContentTypes[ext]
	if !ok {
		contentType = "application/octet-stream"
	}

	upstream, err := kitClient.Get(kitUpstream + "/" + filename)
	if err != nil {
		return err
	}
	body, err := io.ReadAll(upstream.Body)
	upstream.Body.Close()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Cache-Control", kitCacheControl)
	header.Set("Date", now.Format(http.TimeFormat))

	// Cache 2xx and 4xx; skip 5xx so a transient upstream outage is not
	// pinned into the cache for the freshness window. The write happens
	// after the response is determined and must never delay or fail it.
	if upstream.StatusCode < 500 {
		entry := kitcache.Entry{
			Status: upstream.StatusCode,
			Header: header,
			Body:   append([]byte(nil), body...),
		}
		go storeKitEntry(cacheKey, entry, now.Add(kitCacheTTL))
	}

	c.Set("Content-Type", contentType)
	c.Set("Cache-Control", kitCacheControl)
	c.Set("X-Cache", "MISS")
	return c.Status(upstream.StatusCode).Send(body)
}

// sendCached replays a stored response, overlaying a recomputed Age and
// the hit marker. Stored headers are forwarded as-is otherwise.
func sendCached(c *fiber.Ctx, entry kitcache.Entry) error {
	for name, values := range entry.Header {
		for _, v := range values {
			c.Set(name, v)
		}
	}

	age := 0
	if date, err := http.ParseTime(entry.Header.Get("Date")); err == nil {
		if secs := int(time.Since(date).Seconds()); secs > 0 {
			age = secs
		}
	}
	c.Set("Age", fmt.Sprintf("%d", age))
	c.Set("X-Cache", "HIT")

	return c.Status(entry.Status).Send(entry.Body)
}

func storeKitEntry(key string, entry kitcache.Entry, expires time.Time) {
	bytes, err := entry.Encode()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry encode failed")
		return
	}
	if err := kitCache.Put(key, expires, bytes); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
