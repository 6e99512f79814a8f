// path: cmd/server/main.go
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"

	"chess_server_poc/internal/controller"
	"chess_server_poc/internal/httpx"
	"chess_server_poc/internal/store"
)

func main() {
	addr := flag.String("addr", getenv("CHESS_ADDR", ":8080"), "listen address")
	prof := flag.Bool("profile", getenb("CHESS_PROFILE", false), "write a CPU profile for the server run")
	profDir := flag.String("profile-dir", getenv("CHESS_PROFILE_DIR", "."), "directory for profile output (used only with -profile)")
	flag.Parse()

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profDir)).Stop()
	}

	st := store.New()
	ctrl := controller.New(st)
	srv := httpx.NewServer(ctrl)

	if err := srv.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
