package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphml/internal/server"
	"github.com/matzehuels/graphml/pkg/cache"
	apierr "github.com/matzehuels/graphml/pkg/errors"
)

const (
	defaultServeTTL = 24 * time.Hour
	redisKeyPrefix  = "graphml:"
)

// serveCommand creates the serve command running the HTTP export service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		ttl      time.Duration
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP export service",
		Long: `Serve the GraphML encoder over HTTP.

  POST /v1/graphml?pretty=true&node_weights=display&edge_weights=none
       body: graph file (application/json or application/toml)
  GET  /healthz

Rendered documents are cached in redis when --redis is set, otherwise in the
local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			flags := cmd.Flags()
			if !flags.Changed("addr") && c.config.Server.Addr != "" {
				addr = c.config.Server.Addr
			}
			if !flags.Changed("redis") {
				redisURL = c.config.Server.RedisURL
			}
			if !flags.Changed("cache-ttl") && c.config.Server.CacheTTL.Duration > 0 {
				ttl = c.config.Server.CacheTTL.Duration
			}

			var store cache.Cache
			switch {
			case noCache:
				store = cache.NewNullCache()
			case redisURL != "":
				if err := apierr.ValidateRedisURL(redisURL); err != nil {
					return err
				}
				rc, err := cache.NewRedisCache(ctx, redisURL, redisKeyPrefix)
				if err != nil {
					return apierr.Wrap(apierr.ErrCodeInternal, err, "connect to redis")
				}
				store = rc
				logger.Debug("using redis cache")
			default:
				fc, err := newCache(false)
				if err != nil {
					return apierr.Wrap(apierr.ErrCodeInternal, err, "open cache")
				}
				store = fc
			}
			defer store.Close()

			printAddr(cmd.ErrOrStderr(), addr)
			printKeyValue(cmd.ErrOrStderr(), "cache ttl", ttl.String())

			srv := server.New(store, logger, server.Config{Addr: addr, CacheTTL: ttl})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis URL for the document cache (redis://host:port/db)")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", defaultServeTTL, "lifetime of cached documents")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the document cache")

	return cmd
}
