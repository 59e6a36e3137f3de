// Package publish uploads built pages to S3 or an S3-compatible store.
//
// A bbolt cache remembers the digest last uploaded for every object key,
// so republishing a site only sends the pages whose rendered bytes changed:
//
//	client, err := publish.NewS3Client(ctx, cfg.Publish)
//	cache, err := publish.OpenCache(cfg.PublishCachePath())
//	defer cache.Close()
//
//	p := &publish.Publisher{Client: client, Bucket: "docs", Cache: cache}
//	report, err := p.Publish(ctx, result.All())
package publish
