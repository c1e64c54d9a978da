package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"request-portal-service/api"
	_ "request-portal-service/docs"
	"request-portal-service/logger"

	_ "request-portal-service/service"

	daprd "github.com/dapr/go-sdk/service/http"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	PORT         = 80
	BASE_CONTEXT = ""
)

func init() {
	logger.InitLogger()

	if val := os.Getenv("LISTEN_PORT"); val != "" {
		PORT, _ = strconv.Atoi(val)
	}

	if val := os.Getenv("BASE_CONTEXT"); val != "" {
		BASE_CONTEXT = val
	}
}

// @title 요청 포탈 서비스 API
// @version 1.0
// @description 사내 IT/시설 요청 접수 포탈 백엔드 서비스, 자연어 분석 기반 요청 접수와 결재선 관리 기능 제공
// @BasePath /swagger/request-portal-service
func main() {
	mux := chi.NewRouter()

	// BASE_CONTEXT가 있으면 해당 경로 아래에 모든 라우트를 마운트한다
	if BASE_CONTEXT != "" {
		mux.Route(BASE_CONTEXT, func(r chi.Router) {
			subMux := r.(*chi.Mux)
			api.InitRoute(subMux)
			r.Handle("/metrics", promhttp.Handler())
			r.Handle("/swagger*", httpSwagger.WrapHandler)
		})
	} else {
		api.InitRoute(mux)
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/swagger*", httpSwagger.WrapHandler)
	}

	s := daprd.NewServiceWithMux(":"+strconv.Itoa(PORT), mux)
	if err := s.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("error: %v", err)
	}
}
