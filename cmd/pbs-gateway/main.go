// Command pbs-gateway runs the read-mostly REST façade described in
// httpserver: job listing/actions and queue listing over HTTP,
// authenticated via OAuth2 client-credentials JWT bearer tokens. qmgr
// remains the primary, complete administrative client; this is a
// convenience wrapper around a narrow slice of the IFL.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openpbs/go-pbs/config"
	"github.com/openpbs/go-pbs/httpserver"
	"github.com/openpbs/go-pbs/logging"
)

func main() {
	listenAddr := flag.String("listen", ":8080", "HTTP listen address")
	signingKeyPath := flag.String("signing-key", "", "path to the JWT signing key")
	dbPath := flag.String("oauth2-db", "pbs-gateway-oauth2.db", "path to the OAuth2 SQLite database")
	issuer := flag.String("issuer", "https://localhost:8080", "OAuth2 issuer URL")
	globalRate := flag.Float64("global-rate", 50, "gateway-wide requests/sec")
	perTokenRate := flag.Float64("per-token-rate", 5, "requests/sec per bearer token")
	flag.Parse()

	if *signingKeyPath == "" {
		fmt.Fprintln(os.Stderr, "pbs-gateway: -signing-key is required")
		os.Exit(1)
	}

	pbsCfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pbs-gateway: loading configuration:", err)
		os.Exit(1)
	}
	log, err := logging.FromConfig(pbsCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pbs-gateway: initializing logging:", err)
		os.Exit(1)
	}

	server, _ := pbsCfg.Get("PBS_SERVER")

	srv, err := httpserver.NewServer(httpserver.Config{
		ListenAddr:     *listenAddr,
		PBSServer:      server,
		SigningKeyPath: *signingKeyPath,
		OAuth2DBPath:   *dbPath,
		Issuer:         *issuer,
		GlobalRate:     *globalRate,
		PerTokenRate:   *perTokenRate,
	}, pbsCfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pbs-gateway: creating server:", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		fmt.Fprintln(os.Stderr, "pbs-gateway: server error:", err)
		os.Exit(1)
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "pbs-gateway: shutdown:", err)
			os.Exit(1)
		}
	}
}
