// vtcore is a terminal multiplexer: a VT100/xterm-class terminal core
// hosting PTY sessions in a navigation tree of topics, with an optional
// websocket transport for remote UI clients.
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vtcore/vtcore/internal/config"
	"github.com/vtcore/vtcore/internal/queue"
	"github.com/vtcore/vtcore/internal/transport"
	"github.com/vtcore/vtcore/internal/tui"
)

var listenAddr string

func main() {
	root := &cobra.Command{
		Use:   "vtcore",
		Short: "A terminal multiplexer with a VT100-class terminal core",
		RunE:  run,
	}
	root.Flags().StringVar(&listenAddr, "listen", "", "bind address for the websocket transport (overrides config)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	health := config.LoadHealth()
	config.MarkStarting(&health, cfg.CrashHistoryWindow)
	_ = config.SaveHealth(health)

	if config.HasRepeatedCrashes(&health) {
		config.EnableAutoLogging(&health)
		log.Println("repeated dirty shutdowns detected, enabling verbose logging")
	}

	var hub *transport.Hub
	mgr := queue.NewManager(func(sessionID int) {
		if hub != nil {
			hub.NotifyTitle(sessionID, fmt.Sprintf("queue updated for session %d", sessionID))
		}
	})

	millis := cfg.CoalesceWindowMillis
	hub = transport.NewHub(func() time.Duration {
		return time.Duration(millis) * time.Millisecond
	})

	if cfg.ListenAddr != "" {
		go serveTransport(cfg.ListenAddr, hub)
	}

	m := tui.New(cfg, mgr, hub)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err := p.Run()

	config.MarkCleanShutdown(&health)
	if config.ShouldAutoDisableLogging(&health) {
		config.DisableAutoLogging(&health)
	}
	_ = config.SaveHealth(health)

	return err
}

func serveTransport(addr string, hub *transport.Hub) {
	mux := http.NewServeMux()
	mux.Handle("/sessions", hub)
	log.Printf("transport listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("transport: %v", err)
	}
}
