package gateway

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var instrumentOnce sync.Once

var counterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fatoora",
	Subsystem: "request",
	Name:      "requests_count",
	Help:      "Number of requests per each endpoint",
}, []string{"code", "method", "handler", "url"})

var resTime = prometheus.NewHistogram(prometheus.HistogramOpts{
	Namespace: "fatoora",
	Subsystem: "response",
	Name:      "response_time_hist",
	Help:      "fatoora response duration",
})

var resSize = prometheus.NewHistogram(prometheus.HistogramOpts{
	Namespace: "fatoora",
	Subsystem: "response",
	Name:      "size_histogram",
	Help:      "fatoora response size",
})

var reqSize = prometheus.NewHistogram(prometheus.HistogramOpts{
	Namespace: "fatoora",
	Subsystem: "request",
	Name:      "size_hist",
	Help:      "Request size instrumenter",
})

// Instrumentation exposes per-endpoint request counters and latency/size
// histograms for the prometheus scraper. Registration happens once no matter
// how many engines are assembled.
func Instrumentation() gin.HandlerFunc {
	instrumentOnce.Do(func() {
		colls := []prometheus.Collector{counterVec, resTime, resSize, reqSize}
		for _, v := range colls {
			if err := prometheus.Register(v); err != nil {
				panic(err)
			}
		}
	})

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := float64(time.Since(start)) * 1e-6 // to millisecond

		status := strconv.Itoa(c.Writer.Status())
		counterVec.WithLabelValues(status, c.Request.Method, c.HandlerName(), c.Request.URL.Path).Inc()
		resTime.Observe(duration)
		resSize.Observe(float64(c.Writer.Size()))
		reqSize.Observe(float64(c.Request.ContentLength))
	}
}
