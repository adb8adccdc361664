package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/backend/internal/config"
	"courtside/backend/internal/domain/court"
	"courtside/backend/internal/domain/guest"
	"courtside/backend/internal/domain/match"
	"courtside/backend/internal/domain/session"
	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/domain/user"
	"courtside/backend/internal/firebase"
	"courtside/backend/internal/handlers"
	apihttp "courtside/backend/internal/http"
	"courtside/backend/internal/keylock"
	"courtside/backend/internal/logger"
	"courtside/backend/internal/store/memory"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.IsDev())
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	var (
		authClient *fbauth.Client
		uploads    *handlers.Uploads
		teamStore  team.Store
		sessStore  session.Store
		guestStore guest.Store
		matchStore match.Store
		courtStore court.Store
		userStore  user.Store
		teams      session.Teams
		guestTeams guest.Teams
		sessions   guest.Sessions
	)

	devAuth := false
	if cfg.Store == "memory" {
		if !cfg.IsDev() {
			zlog.Fatal("STORE=memory is development-only")
		}
		mem := memory.New()
		teamStore, sessStore, guestStore = mem, mem, mem
		matchStore, courtStore, userStore = mem, mem, mem
		teams, guestTeams, sessions = mem, mem, mem
		devAuth = true
		zlog.Warn("running on the in-memory store; data is lost on restart")
	} else {
		clients, err := firebase.NewClients(ctx, cfg)
		if err != nil {
			zlog.Fatal("firebase init failed", zap.Error(err))
		}
		defer clients.Close()

		authClient = clients.Auth
		uploads = handlers.NewUploads(cfg, clients)

		teamRepo := team.NewRepo(clients.Firestore)
		sessRepo := session.NewRepo(clients.Firestore)
		guestRepo := guest.NewRepo(clients.Firestore)
		matchRepo := match.NewRepo(clients.Firestore)
		courtRepo := court.NewRepo(clients.Firestore)
		userRepo := user.NewRepo(clients.Firestore)

		teamStore, sessStore, guestStore = teamRepo, sessRepo, guestRepo
		matchStore, courtStore, userStore = matchRepo, courtRepo, userRepo
		teams, guestTeams, sessions = teamRepo, teamRepo, sessRepo
	}

	locks := keylock.New()

	teamSvc := team.NewService(teamStore, locks, zlog)
	sessionSvc := session.NewService(sessStore, teams)
	guestSvc := guest.NewService(guestStore, sessions, guestTeams, locks, zlog)
	matchSvc := match.NewService(matchStore, locks)
	userSvc := user.NewService(userStore, matchStore, courtStore)
	courtSvc := court.NewService(courtStore, userSvc)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:        cfg,
		Log:        zlog,
		AuthClient: authClient,
		DevAuth:    devAuth,
		TeamSvc:    teamSvc,
		SessionSvc: sessionSvc,
		GuestSvc:   guestSvc,
		MatchSvc:   matchSvc,
		CourtSvc:   courtSvc,
		UserSvc:    userSvc,
		Uploads:    uploads,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		zlog.Info("API listening", zap.String("port", cfg.Port), zap.String("project", cfg.ProjectID), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	zlog.Info("shutting down")
	_ = srv.Shutdown(ctxShutdown)
}
