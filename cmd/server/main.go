package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"gridsnake/internal/game"
	"gridsnake/internal/ui"
)

const maxConnectionsPerIP = 2

var (
	ipCounter = make(map[string]int)
	ipMutex   sync.Mutex
)

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

func incrementIP(ip string) int {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	ipCounter[ip]++
	return ipCounter[ip]
}

func decrementIP(ip string) {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	ipCounter[ip]--
	if ipCounter[ip] <= 0 {
		delete(ipCounter, ip)
	}
}

func getCount(ip string) int {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	return ipCounter[ip]
}

func connectionLimiterMiddleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := getIP(s)
		if getCount(ip) >= maxConnectionsPerIP {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "limit", maxConnectionsPerIP)
			fmt.Fprintf(s, "Too many active connections from your IP. Please try again later.\r\n")
			s.Close()
			return
		}

		count := incrementIP(ip)
		log.Info("Connection accepted", "ip", ip, "count", count)
		next(s)
		decrementIP(ip)
		log.Info("Connection closed", "ip", ip)
	}
}

func main() {
	host := flag.String("host", "0.0.0.0", "address to listen on")
	port := flag.String("port", "2323", "port to listen on")
	dbPath := flag.String("db", "snake_scores.db", "path to the high score database")
	aiScript := flag.String("ai-script", "", "optional Lua script overriding the AI strategy")
	flag.Parse()

	store, err := game.OpenScoreStore(*dbPath)
	if err != nil {
		log.Fatal("Could not open score store", "error", err)
	}
	defer store.Close()

	var strategy game.Strategy = game.PathfinderStrategy{}
	if *aiScript != "" {
		scripted, err := game.LoadScriptStrategy(*aiScript, strategy)
		if err != nil {
			log.Fatal("Could not load AI script", "path", *aiScript, "error", err)
		}
		strategy = scripted
	}

	// Each SSH session plays its own rounds; only the score store is
	// shared between sessions.
	viewHandler := func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()
		engine := game.NewEngine(store, strategy)
		controller := ui.NewControllerModel(engine, store, pty.Window.Width, pty.Window.Height)
		return controller, []tea.ProgramOption{tea.WithAltScreen()}
	}

	sshServer, err := wish.NewServer(
		wish.WithAddress(*host+":"+*port),
		wish.WithHostKeyPath(os.Getenv("GRIDSNAKE_HOST_KEY_PATH")),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler),
			logging.Middleware(),
			activeterm.Middleware(),
			connectionLimiterMiddleware,
		),
	)
	if err != nil {
		log.Fatal("Failed to create ssh server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", *host, "port", *port)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			done <- nil
		}
	}()

	<-done

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}
