package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lumyn/showdown/internal/metrics"
)

// LogRequest logs every request and feeds the latency histogram.
func LogRequest(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			duration := time.Since(start)

			status := 0
			bytesWritten := 0
			if writer, ok := w.(*SafeResponseWriter); ok {
				status = writer.Status()
				bytesWritten = writer.BytesWritten()
			}

			m.ObserveRequest(r.Method, strconv.Itoa(status), duration)

			slog.Info("incoming request",
				"user_agent", r.UserAgent(),
				"ip", getIPAddress(r),
				"method", r.Method,
				"url", r.URL.String(),
				"proto", r.Proto,
				slog.Int("status_code", status),
				slog.Int("bytes", bytesWritten),
				"duration", duration,
			)
		})
	}
}

// getIPAddress extracts the client's IP address from the request.
func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Values("X-Forwarded-For"); len(forwardedFor) > 0 {
		firstIP := forwardedFor[0]
		ips := strings.Split(firstIP, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
