package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohanthewiz/serr"
	"github.com/rohanthewiz/sproute/dev"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		liveReload bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve a single-page app directory",
		Long: `Serve a directory of static files with a history-API fallback.

Requests that do not match a file are answered with index.html so
the app's client-side router can take over. With --reload, browsers
are refreshed automatically when files in the directory change.

Examples:
  sproute serve ./dist
  sproute serve ./dist --addr=:3000 --reload`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runServe(root, addr, liveReload, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().BoolVarP(&liveReload, "reload", "r", false, "Reload browsers on file change")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each request")

	return cmd
}

func runServe(root, addr string, liveReload, verbose bool) error {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return serr.New("not a directory: " + root)
	}

	srv := dev.NewServer(dev.ServerOptions{
		Root:       root,
		Addr:       addr,
		LiveReload: liveReload,
		Verbose:    verbose,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		info("shutting down")
		cancel()
	}()

	success("serving %s on %s", root, addr)
	if liveReload {
		info("live reload enabled")
	}

	if err := srv.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
