// internal/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gabelabs/gabe-web/internal/auth"
	"github.com/gabelabs/gabe-web/internal/chat"
	"github.com/gabelabs/gabe-web/internal/logger"
	"github.com/gabelabs/gabe-web/internal/models"
	"github.com/gabelabs/gabe-web/internal/progress"
	"github.com/gabelabs/gabe-web/internal/services"
	"github.com/gabelabs/gabe-web/internal/websocket"
)

// GabeHandler serves the companion chat and every gamified spiritual
// feature endpoint.
type GabeHandler struct {
	engine        *progress.Engine
	responder     *chat.Responder
	users         *services.UserService
	conversations *services.ConversationService
	hub           *websocket.Hub
	logger        *logger.Log
}

func NewGabeHandler(engine *progress.Engine, responder *chat.Responder, users *services.UserService, conversations *services.ConversationService, hub *websocket.Hub) *GabeHandler {
	return &GabeHandler{
		engine:        engine,
		responder:     responder,
		users:         users,
		conversations: conversations,
		hub:           hub,
		logger:        logger.New(),
	}
}

// POST /api/v1/chat - Talk with GABE
func (gh *GabeHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	user := &models.User{Name: auth.UserName(r)}
	var history []models.Conversation

	userID := auth.UserID(r)
	if userID != 0 {
		if u, err := gh.users.GetUserByID(userID); err == nil {
			user = u
		}
		if convs, err := gh.conversations.RecentExchanges(userID, 10); err == nil {
			history = convs
		}
	}

	reply := gh.responder.Respond(r.Context(), user, history, req.Message)

	if userID != 0 {
		conv := &models.Conversation{
			UserID:       userID,
			UserMessage:  req.Message,
			GabeResponse: reply.Response,
			Mood:         reply.Mood,
			IsCrisis:     reply.IsCrisis,
			IsPrayer:     reply.IsPrayer,
		}
		if err := gh.conversations.SaveExchange(conv); err != nil {
			gh.logger.WithError(err).Error("Failed to save conversation")
		}
	}

	writeJSON(w, models.ChatResponse{
		Response: reply.Response,
		Mood:     reply.Mood,
		IsCrisis: reply.IsCrisis,
		IsPrayer: reply.IsPrayer,
	})
}

// POST /api/v1/chat/clear - Clear conversation history
func (gh *GabeHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	if err := gh.conversations.ClearHistory(userID); err != nil {
		gh.logger.WithError(err).Error("Failed to clear history")
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

// GET /api/v1/gamified/daily_devotion - Today's devotion
func (gh *GabeHandler) GetDailyDevotion(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionID(w, r)
	result, err := gh.engine.GetDailyDevotion(sessionID, auth.UserName(r))
	if err != nil {
		gh.serverError(w, "Daily devotion error", err)
		return
	}
	writeJSON(w, result)
}

// POST /api/v1/gamified/complete_devotion - Complete today's devotion
func (gh *GabeHandler) CompleteDevotion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reflection string `json:"reflection"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	sessionID := auth.SessionID(w, r)
	result, err := gh.engine.CompleteDevotion(sessionID, req.Reflection)
	if err != nil {
		gh.serverError(w, "Complete devotion error", err)
		return
	}

	gh.announceMilestones(sessionID, result.NewLevel, result.NewBadges)
	writeJSON(w, result)
}

// GET /api/v1/gamified/prayer_challenge - Today's prayer challenge
func (gh *GabeHandler) GetPrayerChallenge(w http.ResponseWriter, r *http.Request) {
	result, err := gh.engine.GetPrayerChallenge(auth.SessionID(w, r))
	if err != nil {
		gh.serverError(w, "Prayer challenge error", err)
		return
	}
	writeJSON(w, result)
}

// POST /api/v1/gamified/complete_prayer_challenge - Complete today's challenge
func (gh *GabeHandler) CompletePrayerChallenge(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionID(w, r)
	result, err := gh.engine.CompletePrayerChallenge(sessionID)
	if err != nil {
		gh.serverError(w, "Complete prayer challenge error", err)
		return
	}

	gh.announceMilestones(sessionID, result.NewLevel, result.NewBadges)
	writeJSON(w, result)
}

// GET /api/v1/gamified/verse_mastery_quiz - A random verse quiz
func (gh *GabeHandler) GetVerseQuiz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, gh.engine.GetVerseQuiz())
}

// POST /api/v1/gamified/complete_verse_quiz - Submit a quiz answer
func (gh *GabeHandler) CompleteVerseQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer        string `json:"answer"`
		CorrectAnswer string `json:"correct_answer"`
		QuizType      string `json:"quiz_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuizType == "" {
		req.QuizType = progress.QuizFillBlank
	}

	sessionID := auth.SessionID(w, r)
	result, err := gh.engine.SubmitVerseAnswer(sessionID, req.Answer, req.CorrectAnswer, req.QuizType)
	if err != nil {
		gh.serverError(w, "Complete verse quiz error", err)
		return
	}

	gh.announceMilestones(sessionID, "", result.NewBadges)
	writeJSON(w, result)
}

// GET /api/v1/gamified/scripture_adventure - Next adventure stop
func (gh *GabeHandler) GetScriptureAdventure(w http.ResponseWriter, r *http.Request) {
	result, err := gh.engine.GetAdventureStop(auth.SessionID(w, r))
	if err != nil {
		gh.serverError(w, "Scripture adventure error", err)
		return
	}
	writeJSON(w, result)
}

// POST /api/v1/gamified/complete_adventure_stop - Complete current stop
func (gh *GabeHandler) CompleteAdventureStop(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionID(w, r)
	result, err := gh.engine.CompleteAdventureStop(sessionID)
	if err != nil {
		gh.serverError(w, "Complete adventure stop error", err)
		return
	}

	gh.announceMilestones(sessionID, result.NewLevel, result.NewBadges)
	writeJSON(w, result)
}

// POST /api/v1/gamified/mood_mission - Mission matched to a mood
func (gh *GabeHandler) GetMoodMission(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood string `json:"mood"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	writeJSON(w, gh.engine.GetMoodMission(chat.CanonicalMood(req.Mood)))
}

// POST /api/v1/gamified/complete_mood_mission - Complete a mood mission
func (gh *GabeHandler) CompleteMoodMission(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood string `json:"mood"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	sessionID := auth.SessionID(w, r)
	result, err := gh.engine.CompleteMoodMission(sessionID, chat.CanonicalMood(req.Mood))
	if err != nil {
		gh.serverError(w, "Complete mood mission error", err)
		return
	}

	gh.announceMilestones(sessionID, "", result.NewBadges)
	writeJSON(w, result)
}

// GET /api/v1/gamified/progress - Full progress overview
func (gh *GabeHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	result, err := gh.engine.GetProgress(auth.SessionID(w, r))
	if err != nil {
		gh.serverError(w, "Get progress error", err)
		return
	}
	writeJSON(w, result)
}

// GET /api/v1/gamified/bible_study - Resume study or list catalog
func (gh *GabeHandler) GetBibleStudy(w http.ResponseWriter, r *http.Request) {
	result, err := gh.engine.GetStudies(auth.SessionID(w, r))
	if err != nil {
		gh.serverError(w, "Bible study error", err)
		return
	}
	writeJSON(w, result)
}

// POST /api/v1/gamified/start_bible_study - Start (or restart) a study
func (gh *GabeHandler) StartBibleStudy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudyID string `json:"study_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StudyID == "" {
		writeError(w, http.StatusBadRequest, "study_id is required")
		return
	}

	if err := gh.engine.StartStudy(auth.SessionID(w, r), req.StudyID); err != nil {
		if errors.Is(err, progress.ErrStudyNotFound) {
			writeError(w, http.StatusNotFound, "study not found")
			return
		}
		gh.serverError(w, "Start bible study error", err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

// POST /api/v1/gamified/complete_bible_study_session - Finish one session
func (gh *GabeHandler) CompleteBibleStudySession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudyID       string   `json:"study_id"`
		SessionNumber int      `json:"session_number"`
		Answers       []string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StudyID == "" {
		writeError(w, http.StatusBadRequest, "study_id is required")
		return
	}
	if req.SessionNumber == 0 {
		req.SessionNumber = 1
	}

	sessionID := auth.SessionID(w, r)
	result, err := gh.engine.CompleteStudySession(sessionID, req.StudyID, req.SessionNumber, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrStudyNotFound):
			writeError(w, http.StatusNotFound, "study not found")
		case errors.Is(err, progress.ErrStudyNotStarted):
			writeError(w, http.StatusConflict, "study not started")
		case errors.Is(err, progress.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		default:
			gh.serverError(w, "Complete bible study session error", err)
		}
		return
	}

	gh.announceMilestones(sessionID, result.NewLevel, result.NewBadges)
	writeJSON(w, result)
}

// announceMilestones pushes level-ups and new badges to websocket clients
func (gh *GabeHandler) announceMilestones(sessionID, level string, badges []string) {
	if gh.hub == nil || len(badges) == 0 {
		return
	}
	gh.hub.BroadcastEvent(websocket.Event{
		Type:    "milestone",
		Level:   level,
		Badges:  badges,
		Message: fmt.Sprintf("New badges earned: %v", badges),
	})
	gh.logger.Session(sessionID, fmt.Sprintf("Earned badges %v", badges))
}

func (gh *GabeHandler) serverError(w http.ResponseWriter, msg string, err error) {
	gh.logger.WithError(err).Error(msg)
	writeError(w, http.StatusInternalServerError, msg)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RegisterRoutes wires every companion endpoint onto the /api/v1 router
func (gh *GabeHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/chat", gh.Chat).Methods("POST")
	r.HandleFunc("/chat/clear", gh.ClearHistory).Methods("POST")

	g := r.PathPrefix("/gamified").Subrouter()
	g.HandleFunc("/daily_devotion", gh.GetDailyDevotion).Methods("GET")
	g.HandleFunc("/complete_devotion", gh.CompleteDevotion).Methods("POST")
	g.HandleFunc("/prayer_challenge", gh.GetPrayerChallenge).Methods("GET")
	g.HandleFunc("/complete_prayer_challenge", gh.CompletePrayerChallenge).Methods("POST")
	g.HandleFunc("/verse_mastery_quiz", gh.GetVerseQuiz).Methods("GET")
	g.HandleFunc("/complete_verse_quiz", gh.CompleteVerseQuiz).Methods("POST")
	g.HandleFunc("/scripture_adventure", gh.GetScriptureAdventure).Methods("GET")
	g.HandleFunc("/complete_adventure_stop", gh.CompleteAdventureStop).Methods("POST")
	g.HandleFunc("/mood_mission", gh.GetMoodMission).Methods("POST")
	g.HandleFunc("/complete_mood_mission", gh.CompleteMoodMission).Methods("POST")
	g.HandleFunc("/progress", gh.GetProgress).Methods("GET")
	g.HandleFunc("/bible_study", gh.GetBibleStudy).Methods("GET")
	g.HandleFunc("/start_bible_study", gh.StartBibleStudy).Methods("POST")
	g.HandleFunc("/complete_bible_study_session", gh.CompleteBibleStudySession).Methods("POST")
}
