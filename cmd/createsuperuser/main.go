package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/goalmaven/goal-maven/internal/app"
	"github.com/goalmaven/goal-maven/internal/config"
	"github.com/goalmaven/goal-maven/internal/infrastructure/repository/postgres"
	"github.com/goalmaven/goal-maven/internal/platform/token"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

func main() {
	email := flag.String("email", "", "email address for the new superuser")
	username := flag.String("username", "", "username for the new superuser")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	addr := strings.TrimSpace(*email)
	if addr == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "read email: %v\n", err)
			os.Exit(1)
		}
		addr = strings.TrimSpace(line)
	}

	name := strings.TrimSpace(*username)
	if name == "" {
		name = addr[:strings.IndexByte(addr+"@", '@')]
	}

	fmt.Print("Password: ")
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read password: %v\n", err)
		os.Exit(1)
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	accounts := usecase.NewAccountService(
		postgres.NewUserRepository(db),
		postgres.NewTokenRepository(db),
		postgres.NewNationRepository(db),
		postgres.NewTeamRepository(db),
		postgres.NewPlayerRepository(db),
		token.NewRandomGenerator(),
		cfg.BcryptCost,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := accounts.CreateSuperuser(ctx, addr, string(secret), name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create superuser: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("superuser %s (id=%d) created\n", created.Email, created.ID)
}
