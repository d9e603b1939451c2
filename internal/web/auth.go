package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

const SessionKey = "wallet"

// Session carries the wallet address the auth collaborator verified when
// the wallet connected. The core never checks signatures itself; whoever
// posts to /session is trusted to have done so.
type Session struct {
	Identity string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func ConnectedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetSession(r.Context())
			if ok {
				handler.ServeHTTP(w, r)
				return
			}
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("no wallet connected"))
		})
	}
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

// Connect stores the verified wallet address in the session. The wallet
// collaborator calls this once after it has checked the connect signature.
func Connect(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		identity := r.Form.Get("identity")
		if identity == "" {
			http.Error(w, "missing identity", http.StatusBadRequest)
			return
		}

		session := handler.SessionManager.Load(r)
		err := session.PutObject(w, SessionKey, Session{
			Identity: identity,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create session")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func Disconnect(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
