package main

import (
	"context"
	"fmt"
	ctx "github.com/Alcereo/headers-api/pkg/context"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	configInit()
	config := loadConfig()
	setupLogging(config.LogLevel)

	bytes, _ := yaml.Marshal(config)
	log.Tracef("Resolved config:\n%+v", string(bytes))

	context := ctx.NewContext()
	context.SetupRouters(config.Routers)

	servers := []*http.Server{context.BuildServer(config.Port)}
	if config.MetricsPort != 0 {
		servers = append(servers, context.BuildMetricsServer(config.MetricsPort))
	}

	for _, server := range servers {
		go serve(server)
	}
	awaitShutdown(servers)
}

func serve(server *http.Server) {
	log.Printf("Server starting on %v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func awaitShutdown(servers []*http.Server) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	received := <-signals
	log.Infof("Received %v. Shutting down", received)

	shutdownContext, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, server := range servers {
		if err := server.Shutdown(shutdownContext); err != nil {
			log.Errorf("Server %v shutdown error. Reason: %v", server.Addr, err)
		}
	}
}

func setupLogging(logLevel ctx.LogLevel) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})

	switch logLevel {
	case ctx.Info:
		log.SetLevel(log.InfoLevel)
	case ctx.Debug:
		log.SetLevel(log.DebugLevel)
	case ctx.Trace:
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
}

func loadConfig() *ctx.ServiceConfiguration {
	var config ctx.ServiceConfiguration
	err := viper.Unmarshal(&config)
	if err != nil {
		panic(fmt.Errorf("Fatal error config file: %s \n", err))
	}

	_ = viper.BindEnv("HEADERS_API_PORT")
	if port := viper.Get("HEADERS_API_PORT"); port != nil {
		config.Port = cast.ToInt(port)
	}

	if len(config.Routers) == 0 {
		config.Routers = ctx.DefaultRouters()
	}
	return &config
}

func configInit() {
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./cmd")

	// Defaults
	viper.SetDefault("port", 8080)
	viper.SetDefault("metrics-port", 0)

	err := viper.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); err != nil && !notFound {
		panic(fmt.Errorf("Fatal error config file: %s \n", err))
	}
}
