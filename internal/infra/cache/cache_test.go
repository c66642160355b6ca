package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"edudb-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Cache", func() {
	var (
		cacheInstance cache.Cache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.Context("GetSet", func() {
		ginkgo.It("should store and retrieve the value", func() {
			gomega.Expect(cacheInstance.Set(ctx, "EDU-2026-ABC123", "certificate", 0)).To(gomega.BeTrue())

			retrieved, found := cacheInstance.Get(ctx, "EDU-2026-ABC123")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(retrieved).To(gomega.Equal("certificate"))
		})

		ginkgo.It("should report missing keys", func() {
			_, found := cacheInstance.Get(ctx, "missing")
			gomega.Expect(found).To(gomega.BeFalse())
		})

		ginkgo.It("should expire values after their ttl", func() {
			cacheInstance.Set(ctx, "short", "lived", 50*time.Millisecond)

			gomega.Eventually(func() bool {
				_, found := cacheInstance.Get(ctx, "short")
				return found
			}).WithTimeout(2 * time.Second).Should(gomega.BeFalse())
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the value", func() {
			cacheInstance.Set(ctx, "key", "value", 0)
			cacheInstance.Delete(ctx, "key")

			_, found := cacheInstance.Get(ctx, "key")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("Clear", func() {
		ginkgo.It("should drop every value", func() {
			cacheInstance.Set(ctx, "a", 1, 0)
			cacheInstance.Set(ctx, "b", 2, 0)
			cacheInstance.Clear()

			_, foundA := cacheInstance.Get(ctx, "a")
			_, foundB := cacheInstance.Get(ctx, "b")
			gomega.Expect(foundA).To(gomega.BeFalse())
			gomega.Expect(foundB).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.It("should load once and serve later calls from the cache", func() {
			var calls atomic.Int32
			loader := func(context.Context) (any, error) {
				calls.Add(1)
				return "loaded", nil
			}

			first, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(first).To(gomega.Equal("loaded"))
			gomega.Expect(second).To(gomega.Equal("loaded"))
			gomega.Expect(calls.Load()).To(gomega.Equal(int32(1)))
		})

		ginkgo.It("should not cache loader errors", func() {
			boom := errors.New("boom")
			_, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, func(context.Context) (any, error) {
				return nil, boom
			})
			gomega.Expect(err).To(gomega.MatchError(boom))

			value, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, func(context.Context) (any, error) {
				return "recovered", nil
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("recovered"))
		})

		ginkgo.It("should return the context error when cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := cacheInstance.GetOrSet(cancelled, "key", time.Minute, func(context.Context) (any, error) {
				return "never", nil
			})
			gomega.Expect(err).To(gomega.MatchError(context.Canceled))
		})

		ginkgo.It("should share one load between concurrent callers", func() {
			var calls atomic.Int32
			release := make(chan struct{})
			loader := func(context.Context) (any, error) {
				calls.Add(1)
				<-release
				return "shared", nil
			}

			var wg sync.WaitGroup
			results := make([]any, 8)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer ginkgo.GinkgoRecover()
					value, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, loader)
					gomega.Expect(err).NotTo(gomega.HaveOccurred())
					results[i] = value
				}(i)
			}

			gomega.Eventually(calls.Load).Should(gomega.Equal(int32(1)))
			time.Sleep(20 * time.Millisecond)
			close(release)
			wg.Wait()

			for _, value := range results {
				gomega.Expect(value).To(gomega.Equal("shared"))
			}
			gomega.Expect(calls.Load()).To(gomega.BeNumerically("<=", int32(2)))
		})
	})

	ginkgo.Context("custom config", func() {
		ginkgo.It("should accept a small entry budget", func() {
			small, err := cache.New(&cache.CacheConfig{MaxEntries: 10, BufferItems: 64})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(small.Set(ctx, "key", "value", 0)).To(gomega.BeTrue())
		})

		ginkgo.It("should provide sane defaults", func() {
			config := cache.DefaultConfig()
			gomega.Expect(config.MaxEntries).To(gomega.BeNumerically(">", 0))
			gomega.Expect(config.BufferItems).To(gomega.Equal(int64(64)))
		})
	})
})
