// Command worthit answers "is it worth automating?" from the terminal
//
//	worthit calc -a 60 -m 5 -r 50
//	worthit share -a 60 -m 5 -r 50 --copy
//	worthit decode 'https://worth.example/?a=60&m=5&r=50'
//	worthit tui
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"worthit/internal/platform/logger"
)

func main() {
	// stdout carries results; logs stay quiet on stderr unless LOG_LEVEL says otherwise
	logger.Init(logger.FromEnv(logger.Options{Service: appName, Level: "warn", Writer: os.Stderr}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultEnv()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
