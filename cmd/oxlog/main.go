package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/lugotardo/OxLog/internal/env"
	"github.com/lugotardo/OxLog/logger"
)

type config struct {
	level    string
	logFile  string
	toStdout bool
}

// oxlog reads lines from stdin and appends each one as a timestamped log
// record, like a minimal logger(1).
func main() {
	// .env is optional; real environment variables take precedence
	godotenv.Load()

	cfg := config{
		level:    env.GetString("LOG_LEVEL", "info"),
		logFile:  env.GetString("LOG_FILE", ""),
		toStdout: env.GetBool("LOG_TO_STDOUT", true),
	}

	levelPtr := flag.String("loglevel", cfg.level, "Minimum level to emit: trace, debug, info, warn, error")
	logFilePtr := flag.String("logfile", cfg.logFile, "Optional append-only log file path")
	stdoutPtr := flag.Bool("stdout", cfg.toStdout, "Echo log lines to stdout")
	asPtr := flag.String("as", "info", "Level to stamp stdin lines with")
	flag.Parse()

	minLevel, err := logger.ParseLevel(*levelPtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oxlog: %v\n", err)
		os.Exit(1)
	}
	stampLevel, err := logger.ParseLevel(*asPtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oxlog: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(minLevel, *logFilePtr, *stdoutPtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oxlog: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()

	startingTime := time.Now()
	lineCount := 0

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		appLogger.Log(stampLevel, scanner.Text())
		lineCount++
	}
	if err := scanner.Err(); err != nil {
		appLogger.Error("Failed reading stdin: error=%v", err)
	}

	timeTaken := time.Since(startingTime)
	appLogger.Info("Finished: lines=%d duration=%.2f seconds", lineCount, timeTaken.Seconds())
}
