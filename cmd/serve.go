package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/launch"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the trigger HTTP server",
	Long:  "Exposes launch and advancement as HTTP triggers for external schedulers, plus a status endpoint.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, launcher, err := initLauncher(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		runner := newRunner(env)
		reporter := launch.NewStatusReporter(env.Registry, env.Campaigns, env.Runs)

		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
			status, err := reporter.Report(r.Context(), cfg.Advance.RecentRuns)
			if err != nil {
				zap.L().Error("status report failed", zap.Error(err))
				http.Error(w, `{"error":"status unavailable"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, status)
		})

		mux.HandleFunc("POST /trigger/launch", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Targets []string `json:"targets"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			targets, err := parseTargets(req.Targets)
			if err != nil {
				http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
				return
			}

			// Launches run async against the server context, not the request.
			go func() {
				summary, err := launcher.Launch(ctx, targets)
				if err != nil {
					zap.L().Error("triggered launch failed", zap.Error(err))
					return
				}
				zap.L().Info("triggered launch complete",
					zap.Int("campaigns_launched", summary.CampaignsLaunched),
				)
			}()

			writeJSON(w, http.StatusAccepted, map[string]any{
				"status":  "accepted",
				"targets": len(targets),
			})
		})

		mux.HandleFunc("POST /trigger/advance", func(w http.ResponseWriter, r *http.Request) {
			go func() {
				summary, err := runner.Run(ctx)
				if err != nil {
					zap.L().Error("triggered advancement failed", zap.Error(err))
					return
				}
				zap.L().Info("triggered advancement complete",
					zap.Int("emails_sent", summary.EmailsSent),
				)
			}()

			writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
