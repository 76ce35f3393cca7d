package middleware

import (
	"net/http"

	"github.com/mkovacevic/fitstats/pkg"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP, err := pkg.ReadUserIP(r)
			if err != nil {
				clientIP = r.RemoteAddr
			}
			log.Tracef(" ====> request [%s] path: [%s] [ip: %s] [UA: %s]", r.Method, r.URL.Path, clientIP, r.Header.Get("User-Agent"))
			next.ServeHTTP(w, r)
		})
	}
}
