package favicon

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// maxIconBytes caps the size of a fetched icon.
const maxIconBytes = 512 << 10

// ErrNoIcon is returned when the upstream has no usable icon for a host.
var ErrNoIcon = errors.New("no favicon available")

var fetches = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "favicon_fetches_total",
		Help: "Number of favicon lookups, differentiated by result.",
	},
	[]string{"result"},
)

// Icon is a cached favicon image.
type Icon struct {
	Data        []byte
	ContentType string
}

// Proxy fetches icons once per host and keeps the recently used ones in memory.
type Proxy struct {
	client   *http.Client
	template string

	cache *lru.Cache[string, Icon]
	group singleflight.Group
}

// NewProxy returns a proxy for the configured upstream.
func NewProxy(cfg Config) *Proxy {
	p := &Proxy{
		client:   &http.Client{Timeout: cfg.Timeout},
		template: cfg.Template,
	}

	if p.client.Timeout <= 0 {
		p.client.Timeout = defaultTimeout
	}
	if p.template == "" {
		p.template = DefaultTemplate
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}

	// only fails for a non-positive size
	p.cache, _ = lru.New[string, Icon](size)

	return p
}

// Get returns the icon for host, fetching it on a cache miss. Concurrent
// misses for the same host share a single upstream request.
func (p *Proxy) Get(ctx context.Context, host string) (Icon, error) {
	if host == "" {
		return Icon{}, ErrNoIcon
	}

	if icon, ok := p.cache.Get(host); ok {
		fetches.WithLabelValues("hit").Inc()
		return icon, nil
	}

	// the fetch is shared by every waiter, so one caller going away must not cancel it
	fetchCtx := context.WithoutCancel(ctx)

	v, err, _ := p.group.Do(host, func() (any, error) {
		icon, err := p.fetch(fetchCtx, host)
		if err != nil {
			return Icon{}, err
		}
		p.cache.Add(host, icon)

		return icon, nil
	})
	if err != nil {
		fetches.WithLabelValues("error").Inc()
		return Icon{}, err
	}

	fetches.WithLabelValues("fetched").Inc()

	return v.(Icon), nil //nolint:forcetypeassert
}

// Len returns the number of cached hosts.
func (p *Proxy) Len() int {
	return p.cache.Len()
}

func (p *Proxy) fetch(ctx context.Context, host string) (Icon, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, Upstream(p.template, host), http.NoBody)
	if err != nil {
		return Icon{}, errors.Wrap(err, "favicon request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("host", host).Msg("failed to fetch favicon")
		return Icon{}, errors.Wrap(err, "favicon fetch")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("host", host).Msg("favicon upstream returned non-OK status")
		return Icon{}, errors.Wrapf(ErrNoIcon, "%s: status %d", host, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return Icon{}, errors.Wrap(err, "favicon read")
	}

	if len(data) == 0 {
		return Icon{}, errors.Wrap(ErrNoIcon, host)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		log.Debug().Str("host", host).Str("mime", mt.String()).Msg("favicon upstream returned a non-image")
		return Icon{}, errors.Wrapf(ErrNoIcon, "%s: %s", host, mt.String())
	}

	return Icon{Data: data, ContentType: mt.String()}, nil
}
