package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"courtside/backend/internal/config"
	"courtside/backend/internal/domain/court"
	"courtside/backend/internal/domain/guest"
	"courtside/backend/internal/domain/match"
	"courtside/backend/internal/domain/session"
	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/domain/user"
	"courtside/backend/internal/handlers"
	"courtside/backend/internal/httpjson"
	"courtside/backend/internal/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Cfg        config.Config
	Log        *zap.Logger
	AuthClient *auth.Client
	DevAuth    bool // trust X-Debug-UID instead of verifying tokens
	TeamSvc    *team.Service
	SessionSvc *session.Service
	GuestSvc   *guest.Service
	MatchSvc   *match.Service
	CourtSvc   *court.Service
	UserSvc    *user.Service
	Uploads    *handlers.Uploads
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	if d.Log != nil {
		r.Use(middleware.RequestLogger(d.Log))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// Protected routes
	r.Group(func(pr chi.Router) {
		if d.DevAuth {
			pr.Use(middleware.WithDevAuth())
		} else {
			pr.Use(middleware.WithAuth(d.AuthClient))
		}

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			out, err := d.UserSvc.Ensure(r.Context(), au.UID, au.Email)
			if err != nil {
				status, msg := mapUserError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			var in user.UpdateProfileInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.UserSvc.Update(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapUserError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Team routes =====
		pr.Post("/v1/teams", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			var in team.CreateTeamInput
			if err := httpjson.ReadValid(r, &in); err != nil {
				Fail(w, 400, err.Error())
				return
			}
			in.Trim()

			out, err := d.TeamSvc.Create(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/teams", func(w http.ResponseWriter, r *http.Request) {
			f := team.Filters{
				Status:       team.Status(r.URL.Query().Get("status")),
				CourtID:      r.URL.Query().Get("courtId"),
				IsRecruiting: r.URL.Query().Get("isRecruiting") == "true",
			}
			if lvl := r.URL.Query().Get("level"); lvl != "" {
				if v, err := strconv.Atoi(lvl); err == nil {
					f.Level = v
				}
			}
			if day := r.URL.Query().Get("dayOfWeek"); day != "" {
				if v, err := strconv.Atoi(day); err == nil {
					f.DayOfWeek = &v
				}
			}

			out, err := d.TeamSvc.List(r.Context(), f)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"teams": out})
		})

		pr.Get("/v1/teams/search", func(w http.ResponseWriter, r *http.Request) {
			q := strings.TrimSpace(r.URL.Query().Get("q"))
			limit := 20
			if ls := r.URL.Query().Get("limit"); ls != "" {
				if v, err := strconv.Atoi(ls); err == nil && v > 0 && v <= 100 {
					limit = v
				}
			}

			out, err := d.TeamSvc.Search(r.Context(), q, limit)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"teams": out})
		})

		pr.Get("/v1/teams/{teamId}", func(w http.ResponseWriter, r *http.Request) {
			teamId := chi.URLParam(r, "teamId")
			if teamId == "" {
				Fail(w, 400, "missing teamId")
				return
			}

			out, err := d.TeamSvc.Get(r.Context(), teamId)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/teams/{teamId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			teamId := chi.URLParam(r, "teamId")
			if teamId == "" {
				Fail(w, 400, "missing teamId")
				return
			}

			var in team.UpdateTeamInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.TeamSvc.Update(r.Context(), teamId, au.UID, in)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/teams/{teamId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			teamId := chi.URLParam(r, "teamId")
			if teamId == "" {
				Fail(w, 400, "missing teamId")
				return
			}

			if err := d.TeamSvc.Delete(r.Context(), teamId, au.UID); err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": teamId})
		})

		pr.Post("/v1/teams/{teamId}/joinRequests", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			teamId := chi.URLParam(r, "teamId")
			if teamId == "" {
				Fail(w, 400, "missing teamId")
				return
			}

			var in team.ApplyToTeamInput
			if err := httpjson.ReadValid(r, &in); err != nil {
				Fail(w, 400, err.Error())
				return
			}
			in.TeamID = teamId
			in.Trim()

			out, err := d.TeamSvc.Apply(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/teams/{teamId}/joinRequests", func(w http.ResponseWriter, r *http.Request) {
			teamId := chi.URLParam(r, "teamId")
			if teamId == "" {
				Fail(w, 400, "missing teamId")
				return
			}

			out, err := d.TeamSvc.JoinRequests(r.Context(), teamId)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"requests": out})
		})

		pr.Post("/v1/joinRequests/{requestId}/approve", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			requestId := chi.URLParam(r, "requestId")
			if requestId == "" {
				Fail(w, 400, "missing requestId")
				return
			}

			if err := d.TeamSvc.ApproveJoinRequest(r.Context(), requestId, au.UID); err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/joinRequests/{requestId}/reject", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			requestId := chi.URLParam(r, "requestId")
			if requestId == "" {
				Fail(w, 400, "missing requestId")
				return
			}

			if err := d.TeamSvc.RejectJoinRequest(r.Context(), requestId, au.UID); err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/teams/{teamId}/members", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			teamId := chi.URLParam(r, "teamId")
			if teamId == "" {
				Fail(w, 400, "missing teamId")
				return
			}

			var body struct {
				UserID string `json:"userId"`
			}
			if err := httpjson.Read(r, &body); err != nil || body.UserID == "" {
				Fail(w, 400, "userId is required")
				return
			}

			if err := d.TeamSvc.AddMember(r.Context(), teamId, body.UserID, au.UID); err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Delete("/v1/teams/{teamId}/members/{userId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			teamId := chi.URLParam(r, "teamId")
			userId := chi.URLParam(r, "userId")
			if teamId == "" || userId == "" {
				Fail(w, 400, "missing teamId or userId")
				return
			}

			if err := d.TeamSvc.RemoveMember(r.Context(), teamId, userId, au.UID); err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "removed": userId})
		})

		// ===== Session routes =====
		pr.Post("/v1/sessions", func(w http.ResponseWriter, r *http.Request) {
			var in session.CreateSessionInput
			if err := httpjson.ReadValid(r, &in); err != nil {
				Fail(w, 400, err.Error())
				return
			}
			in.Trim()

			out, err := d.SessionSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapSessionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/sessions", func(w http.ResponseWriter, r *http.Request) {
			f := session.Filters{
				TeamID:       r.URL.Query().Get("teamId"),
				Status:       session.Status(r.URL.Query().Get("status")),
				Date:         r.URL.Query().Get("date"),
				CourtID:      r.URL.Query().Get("courtId"),
				HasOpenSlots: r.URL.Query().Get("hasOpenSlots") == "true",
			}

			out, err := d.SessionSvc.List(r.Context(), f)
			if err != nil {
				status, msg := mapSessionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"sessions": out})
		})

		pr.Get("/v1/sessions/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
			sessionId := chi.URLParam(r, "sessionId")
			if sessionId == "" {
				Fail(w, 400, "missing sessionId")
				return
			}

			out, err := d.SessionSvc.Get(r.Context(), sessionId)
			if err != nil {
				status, msg := mapSessionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/sessions/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			sessionId := chi.URLParam(r, "sessionId")
			if sessionId == "" {
				Fail(w, 400, "missing sessionId")
				return
			}

			var in session.UpdateSessionInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.SessionSvc.Update(r.Context(), sessionId, in, au.UID)
			if err != nil {
				status, msg := mapSessionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/sessions/{sessionId}/status", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			sessionId := chi.URLParam(r, "sessionId")
			if sessionId == "" {
				Fail(w, 400, "missing sessionId")
				return
			}

			var body struct {
				Status session.Status `json:"status"`
			}
			if err := httpjson.Read(r, &body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.SessionSvc.UpdateStatus(r.Context(), sessionId, body.Status, au.UID)
			if err != nil {
				status, msg := mapSessionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/sessions/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			sessionId := chi.URLParam(r, "sessionId")
			if sessionId == "" {
				Fail(w, 400, "missing sessionId")
				return
			}

			if err := d.SessionSvc.Delete(r.Context(), sessionId, au.UID); err != nil {
				status, msg := mapSessionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": sessionId})
		})

		// ===== Guest application routes =====
		pr.Post("/v1/sessions/{sessionId}/guests", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			sessionId := chi.URLParam(r, "sessionId")
			if sessionId == "" {
				Fail(w, 400, "missing sessionId")
				return
			}

			var in guest.ApplyInput
			if err := httpjson.ReadValid(r, &in); err != nil {
				Fail(w, 400, err.Error())
				return
			}
			in.SessionID = sessionId
			in.Trim()

			out, err := d.GuestSvc.Apply(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapGuestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/sessions/{sessionId}/guests", func(w http.ResponseWriter, r *http.Request) {
			sessionId := chi.URLParam(r, "sessionId")
			if sessionId == "" {
				Fail(w, 400, "missing sessionId")
				return
			}

			out, err := d.GuestSvc.ListForSession(r.Context(), sessionId)
			if err != nil {
				status, msg := mapGuestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"applications": out})
		})

		pr.Get("/v1/me/guestApplications", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			out, err := d.GuestSvc.ListForUser(r.Context(), au.UID)
			if err != nil {
				status, msg := mapGuestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"applications": out})
		})

		pr.Post("/v1/guestApplications/{applicationId}/approve", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			applicationId := chi.URLParam(r, "applicationId")
			if applicationId == "" {
				Fail(w, 400, "missing applicationId")
				return
			}

			if err := d.GuestSvc.Approve(r.Context(), applicationId, au.UID); err != nil {
				status, msg := mapGuestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/guestApplications/{applicationId}/reject", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			applicationId := chi.URLParam(r, "applicationId")
			if applicationId == "" {
				Fail(w, 400, "missing applicationId")
				return
			}

			if err := d.GuestSvc.Reject(r.Context(), applicationId, au.UID); err != nil {
				status, msg := mapGuestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/guestApplications/{applicationId}/cancel", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			applicationId := chi.URLParam(r, "applicationId")
			if applicationId == "" {
				Fail(w, 400, "missing applicationId")
				return
			}

			if err := d.GuestSvc.Cancel(r.Context(), applicationId, au.UID); err != nil {
				status, msg := mapGuestError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		// ===== Match routes =====
		pr.Post("/v1/matches", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			var in match.CreateMatchInput
			if err := httpjson.ReadValid(r, &in); err != nil {
				Fail(w, 400, err.Error())
				return
			}
			in.Trim()

			out, err := d.MatchSvc.Create(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapMatchError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/matches", func(w http.ResponseWriter, r *http.Request) {
			f := match.Filters{
				Status:   match.Status(r.URL.Query().Get("status")),
				GameType: match.GameType(r.URL.Query().Get("gameType")),
				Date:     r.URL.Query().Get("date"),
				CourtID:  r.URL.Query().Get("courtId"),
			}

			out, err := d.MatchSvc.List(r.Context(), f)
			if err != nil {
				status, msg := mapMatchError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"matches": out})
		})

		pr.Get("/v1/matches/{matchId}", func(w http.ResponseWriter, r *http.Request) {
			matchId := chi.URLParam(r, "matchId")
			if matchId == "" {
				Fail(w, 400, "missing matchId")
				return
			}

			out, err := d.MatchSvc.Get(r.Context(), matchId)
			if err != nil {
				status, msg := mapMatchError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/matches/{matchId}/join", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			matchId := chi.URLParam(r, "matchId")
			if matchId == "" {
				Fail(w, 400, "missing matchId")
				return
			}

			out, err := d.MatchSvc.Join(r.Context(), matchId, au.UID)
			if err != nil {
				status, msg := mapMatchError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/matches/{matchId}/leave", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			matchId := chi.URLParam(r, "matchId")
			if matchId == "" {
				Fail(w, 400, "missing matchId")
				return
			}

			out, err := d.MatchSvc.Leave(r.Context(), matchId, au.UID)
			if err != nil {
				status, msg := mapMatchError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/matches/{matchId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			matchId := chi.URLParam(r, "matchId")
			if matchId == "" {
				Fail(w, 400, "missing matchId")
				return
			}

			isAdmin, _ := d.UserSvc.IsAdmin(r.Context(), au.UID)
			if err := d.MatchSvc.Delete(r.Context(), matchId, au.UID, isAdmin); err != nil {
				status, msg := mapMatchError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": matchId})
		})

		// ===== Court routes =====
		pr.Get("/v1/courts", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.CourtSvc.List(r.Context())
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"courts": out})
		})

		pr.Get("/v1/courts/{courtId}", func(w http.ResponseWriter, r *http.Request) {
			courtId := chi.URLParam(r, "courtId")
			if courtId == "" {
				Fail(w, 400, "missing courtId")
				return
			}

			out, err := d.CourtSvc.Get(r.Context(), courtId)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/courts", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			var in court.CreateCourtInput
			if err := httpjson.ReadValid(r, &in); err != nil {
				Fail(w, 400, err.Error())
				return
			}
			in.Trim()

			out, err := d.CourtSvc.Create(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Put("/v1/courts/{courtId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			courtId := chi.URLParam(r, "courtId")
			if courtId == "" {
				Fail(w, 400, "missing courtId")
				return
			}

			var in court.UpdateCourtInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.CourtSvc.Update(r.Context(), courtId, au.UID, in)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/courts/{courtId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			courtId := chi.URLParam(r, "courtId")
			if courtId == "" {
				Fail(w, 400, "missing courtId")
				return
			}

			if err := d.CourtSvc.Delete(r.Context(), courtId, au.UID); err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": courtId})
		})

		// ===== Admin routes =====
		pr.Get("/v1/admin/users", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			out, err := d.UserSvc.ListUsers(r.Context(), au.UID)
			if err != nil {
				status, msg := mapUserError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"users": out})
		})

		pr.Put("/v1/admin/users/{uid}/role", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			uid := chi.URLParam(r, "uid")
			if uid == "" {
				Fail(w, 400, "missing uid")
				return
			}

			var body struct {
				Role user.Role `json:"role"`
			}
			if err := httpjson.Read(r, &body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.UserSvc.UpdateRole(r.Context(), uid, body.Role, au.UID)
			if err != nil {
				status, msg := mapUserError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/admin/users/{uid}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			uid := chi.URLParam(r, "uid")
			if uid == "" {
				Fail(w, 400, "missing uid")
				return
			}

			if err := d.UserSvc.DeleteUser(r.Context(), uid, au.UID); err != nil {
				status, msg := mapUserError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": uid})
		})

		pr.Get("/v1/admin/stats", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			out, err := d.UserSvc.PlatformStats(r.Context(), au.UID)
			if err != nil {
				status, msg := mapUserError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Upload routes =====
		if d.Uploads != nil {
			pr.Post("/v1/uploads/signedUrl", d.Uploads.CreateSignedUploadURL)
		}
	})

	return r
}

func mapTeamError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case team.IsErrUnauthorized(err):
		return 403, err.Error()
	case team.IsErrNotFound(err):
		return 404, err.Error()
	case team.IsErrTeamFull(err), team.IsErrAlreadyMember(err),
		team.IsErrDuplicateRequest(err), team.IsErrNotRecruiting(err):
		return 409, err.Error()
	case team.IsErrCaptainRemoval(err), team.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapSessionError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case session.IsErrUnauthorized(err):
		return 403, err.Error()
	case session.IsErrNotFound(err):
		return 404, err.Error()
	case session.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapGuestError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case guest.IsErrUnauthorized(err):
		return 403, err.Error()
	case guest.IsErrNotFound(err):
		return 404, err.Error()
	case guest.IsErrDuplicateApplication(err), guest.IsErrSessionFull(err),
		guest.IsErrInvalidState(err):
		return 409, err.Error()
	case guest.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapMatchError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case match.IsErrUnauthorized(err):
		return 403, err.Error()
	case match.IsErrNotFound(err):
		return 404, err.Error()
	case match.IsErrMatchFull(err), match.IsErrAlreadyJoined(err), match.IsErrNotJoined(err):
		return 409, err.Error()
	case match.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapCourtError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case court.IsErrUnauthorized(err):
		return 403, err.Error()
	case court.IsErrNotFound(err):
		return 404, err.Error()
	case court.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapUserError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case user.IsErrUnauthorized(err):
		return 403, err.Error()
	case user.IsErrNotFound(err):
		return 404, err.Error()
	case user.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}
