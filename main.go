package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/clindata/cdisc-library-mcp/client"
	"github.com/clindata/cdisc-library-mcp/config"
	"github.com/clindata/cdisc-library-mcp/logging"
	"github.com/clindata/cdisc-library-mcp/register"
	"github.com/clindata/cdisc-library-mcp/server"
	"github.com/clindata/cdisc-library-mcp/tools"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run(register.ServerInfo{Name: "cdisc-library"}, os.Args[2:])
		return
	}

	var (
		baseURL       string
		timeout       time.Duration
		retry         int
		retryDelay    time.Duration
		maxOutputSize int
		logLevel      string
		logFile       string
	)

	flag.StringVar(&baseURL, "base-url", "", "Override the CDISC Library base URL (default from CDISC_BASE_URL)")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
	flag.IntVar(&retry, "retry", 0, "Number of retries for network errors and 5xx responses")
	flag.DurationVar(&retryDelay, "retry-delay", 1000*time.Millisecond, "Delay between retries")
	flag.IntVar(&maxOutputSize, "max-output-size", 130000, "Maximum tool output size in bytes")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug/info/warn/error)")
	flag.StringVar(&logFile, "log-file", "", "Log file path (stderr if empty)")

	flag.Parse()

	logger, closeLog, err := logging.Setup(logging.Config{Level: logLevel, File: logFile})
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("startup aborted", "error", err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	httpClient := client.New(client.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Timeout:    timeout,
		RetryCount: retry,
		RetryDelay: retryDelay,
		Logger:     logger,
	})

	mcpServer := server.New()
	tools.Register(mcpServer, httpClient, tools.Options{
		MaxOutputSize: maxOutputSize,
		Logger:        logger,
	})

	logger.Info("serving CDISC Library tools on stdio", "baseURL", cfg.BaseURL)
	if err := server.Run(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
