// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command accessdemo runs the hello sample application headless,
// driven by commands typed on standard input, and serves its
// accessibility tree through the bridge.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/access/base/errors"
	"cogentcore.org/access/base/logx"
	"cogentcore.org/access/bridge"
	"cogentcore.org/access/config"
	"cogentcore.org/access/hello"
	"cogentcore.org/access/keymap"
	"cogentcore.org/access/window"
)

// options are the command line flags.
type options struct {
	config      string
	addr        string
	keymap      string
	verbose     bool
	veryVerbose bool
	quiet       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "accessdemo",
		Short:        "Run the hello sample with its accessibility tree",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), c)
		},
	}
	fl := root.PersistentFlags()
	fl.StringVarP(&opts.config, "config", "c", "", "TOML configuration file (default ~/.config/access/config.toml if it exists)")
	fl.StringVar(&opts.addr, "addr", "", "address of the accessibility bridge, or \"off\"")
	fl.StringVar(&opts.keymap, "keymap", "", "TOML keymap file, reloaded when it changes")
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "print info log messages")
	fl.BoolVar(&opts.veryVerbose, "vv", false, "print debug log messages")
	fl.BoolVarP(&opts.quiet, "quiet", "q", false, "only print error log messages")

	root.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the initial accessibility tree as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			w, err := newWindow(c)
			if err != nil {
				return err
			}
			return w.Store().Tree().WriteYAML(cmd.OutOrStdout())
		},
	})
	return root
}

// loadConfig returns the configuration from the config file,
// with the flags that were set applied on top, and sets up logging.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	c := config.Default()
	file := opts.config
	if file == "" {
		if _, err := os.Stat(config.DefaultFile()); err == nil {
			file = config.DefaultFile()
		}
	}
	if file != "" {
		var err error
		c, err = config.Open(file)
		if err != nil {
			return nil, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("addr") {
		c.Addr = opts.addr
		if c.Addr == "off" {
			c.Addr = ""
		}
	}
	if fl.Changed("keymap") {
		c.Keymap = opts.keymap
	}
	c.Verbose = c.Verbose || opts.verbose
	c.VeryVerbose = c.VeryVerbose || opts.veryVerbose
	c.Quiet = c.Quiet || opts.quiet
	logx.UserLevel = c.LogLevel()
	logx.SetDefaultLogger()
	return c, nil
}

func newWindow(c *config.Config) (*window.Window, error) {
	app := hello.NewApp(c.TreeID)
	app.Encoding = c.Encoding
	w, err := app.NewWindow("hello")
	if err != nil {
		return nil, err
	}
	km, err := c.OpenKeymap()
	if err != nil {
		return nil, err
	}
	w.SetKeymap(km)
	return w, nil
}

// run runs the window until it is closed from the console,
// standard input ends, or the process is interrupted.
func run(ctx context.Context, c *config.Config) error {
	w, err := newWindow(c)
	if err != nil {
		return err
	}
	fn, err := c.KeymapFile()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return w.Run(ctx)
	})

	if c.Addr != "" {
		srv := &http.Server{Addr: c.Addr, Handler: bridge.NewServer(w.Store(), w.Attach).Handler()}
		g.Go(func() error {
			slog.Info("bridge: listening", "addr", c.Addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	if c.Keymap != "" {
		g.Go(func() error {
			return keymap.Watch(ctx, fn, func(km keymap.Map) { w.SetKeymap(km) })
		})
	}

	// reads from stdin can not be interrupted, so the console
	// is not part of the group
	con := newConsole(w, os.Stdout)
	go con.Run(os.Stdin)

	return g.Wait()
}
