package auth

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/gabelabs/gabe-web/internal/logger"
	"github.com/gabelabs/gabe-web/internal/models"
	"github.com/gabelabs/gabe-web/internal/services"
)

const sessionName = "gabe-session"

var Store *sessions.CookieStore

func Init(secret string) {
	Store = sessions.NewCookieStore([]byte(secret))
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
	}
}

// SessionID returns the progress session key for this request, minting
// one on first contact so guests keep their progress across visits.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	session, _ := Store.Get(r, sessionName)

	if id, ok := session.Values["session_id"].(string); ok && id != "" {
		return id
	}

	id := generateSessionID()
	session.Values["session_id"] = id
	_ = session.Save(r, w)
	return id
}

// UserID returns the logged-in user's id, or 0 for guests
func UserID(r *http.Request) int {
	session, _ := Store.Get(r, sessionName)
	if id, ok := session.Values["user_id"].(int); ok {
		return id
	}
	return 0
}

// UserName returns the logged-in user's display name, or "" for guests
func UserName(r *http.Request) string {
	session, _ := Store.Get(r, sessionName)
	if name, ok := session.Values["name"].(string); ok {
		return name
	}
	return ""
}

func generateSessionID() string {
	return fmt.Sprintf("session_%d_%d", time.Now().UnixNano(), rand.Intn(1000))
}

type Handlers struct {
	users  *services.UserService
	logger *logger.Log
}

func NewHandlers(users *services.UserService) *Handlers {
	return &Handlers{
		users:  users,
		logger: logger.New(),
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "username, password and name are required")
		return
	}

	user, err := h.users.CreateUser(&req)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	h.establishSession(w, r, user)
	h.logger.Info(fmt.Sprintf("New user registered: %s", user.Username))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.AuthenticateUser(&req)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.establishSession(w, r, user)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := Store.Get(r, sessionName)
	delete(session.Values, "user_id")
	delete(session.Values, "name")
	// Keep session_id so guest progress survives logout
	_ = session.Save(r, w)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	userID := UserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// establishSession binds the user to the cookie session. An existing
// guest session_id is kept so prior progress follows the account.
func (h *Handlers) establishSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	session, _ := Store.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	session.Values["name"] = user.Name
	if _, ok := session.Values["session_id"].(string); !ok {
		session.Values["session_id"] = generateSessionID()
	}
	_ = session.Save(r, w)
}

// RequireLogin guards endpoints that need an authenticated user
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r) == 0 {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
