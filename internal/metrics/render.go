package metrics

import "time"

// RenderSucceeded records a completed PDF render.
func RenderSucceeded(docType string, duration time.Duration, pdfBytes int) {
	RendersTotal.WithLabelValues(docType, "success").Inc()
	RenderDuration.WithLabelValues(docType).Observe(duration.Seconds())
	PDFBytes.Observe(float64(pdfBytes))
}

// RenderFailed records a failed PDF render.
func RenderFailed(docType string) {
	RendersTotal.WithLabelValues(docType, "error").Inc()
}

// CacheHit records a PDF cache hit.
func CacheHit() {
	CacheRequestsTotal.WithLabelValues("hit").Inc()
}

// CacheMiss records a PDF cache miss.
func CacheMiss() {
	CacheRequestsTotal.WithLabelValues("miss").Inc()
}

// PoolObserved updates the browser pool gauges.
func PoolObserved(browsers, leases int) {
	BrowsersActive.Set(float64(browsers))
	BrowserLeasesActive.Set(float64(leases))
}
