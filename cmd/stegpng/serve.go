// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"net/http"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/gorilla/mux"
	"github.com/pkg/profile"

	"github.com/stegpng/stegpng/pkg/rest"
)

// waitSigint blocks the current thread until a SIGINT appears.
func waitSigint() {
	signalSyn := make(chan os.Signal, 1)
	signalAck := make(chan struct{})

	signal.Notify(signalSyn, os.Interrupt)

	go func() {
		<-signalSyn
		close(signalAck)
	}()

	<-signalAck
}

// serveAction for the "serve" CLI option.
func serveAction(args []string) {
	if len(args) != 1 {
		printUsage()
	}

	conf, err := parseConfig(args[0])
	if err != nil {
		printFatal(err, "Failed to parse config")
	}

	if conf.Rest.Profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	handler := rest.NewHandler(mux.NewRouter())

	httpServer := &http.Server{
		Addr:    conf.Rest.Listen,
		Handler: handler,
	}

	go func() {
		log.WithField("listen", conf.Rest.Listen).Info("Serving steg operations")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Serving errored")
		}
	}()

	waitSigint()
	log.Info("Shutting down..")

	_ = httpServer.Close()
}
