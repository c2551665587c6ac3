package main

import (
	"crypto/rand"
	"crypto/subtle"
	_ "embed"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/julienschmidt/httprouter"
)

// Term is one guessable entry in the word table.
type Term struct {
	Word       string `json:"word"`
	Category   string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// CategoryAny matches every category when selecting a term.
const CategoryAny = "Both"

// WordList is the in-memory word table queried by the game and
// extended through the admin endpoints.
type WordList struct {
	mu    sync.RWMutex
	terms []Term
}

func defaultWordList() *WordList {
	return &WordList{
		terms: []Term{
			{Word: "Titanic", Category: "Movie", Difficulty: DifficultyEasy},
			{Word: "Inception", Category: "Movie", Difficulty: DifficultyHard},
			{Word: "Frozen", Category: "Movie", Difficulty: DifficultyEasy},
			{Word: "Bohemian Rhapsody", Category: "Song", Difficulty: DifficultyMedium},
			{Word: "Thriller", Category: "Song", Difficulty: DifficultyEasy},
			{Word: "Rap God", Category: "Song", Difficulty: DifficultyHard},
			{Word: "The Godfather", Category: "Movie", Difficulty: DifficultyMedium},
			{Word: "Shape of You", Category: "Song", Difficulty: DifficultyEasy},
			{Word: "Avatar", Category: "Movie", Difficulty: DifficultyEasy},
			{Word: "Pulp Fiction", Category: "Movie", Difficulty: DifficultyMedium},
		},
	}
}

// selectTerm returns a random term matching the requested category
// (exactly, or any category for CategoryAny) and exact difficulty.
// Returns errNoEligibleWords when nothing matches.
func (l *WordList) selectTerm(category, difficulty string) (Term, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	eligible := make([]Term, 0, len(l.terms))
	for _, t := range l.terms {
		if category != CategoryAny && t.Category != category {
			continue
		}
		if t.Difficulty != difficulty {
			continue
		}
		eligible = append(eligible, t)
	}

	if len(eligible) == 0 {
		return Term{}, errNoEligibleWords
	}

	return eligible[randomIndex(len(eligible))], nil
}

func (l *WordList) add(terms ...Term) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.terms = append(l.terms, terms...)
}

func (l *WordList) size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.terms)
}

// randomIndex picks a crypto-random index in [0, n).
func randomIndex(n int) int {
	if n <= 1 {
		return 0
	}

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}

	return int(binary.BigEndian.Uint32(buf[:]) % uint32(n))
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminAddWordsRequest struct {
	Category   string `json:"type"`
	Difficulty string `json:"difficulty"`
	WordsRaw   string `json:"wordsRaw"`
}

func checkAdminCredentials(cfg *Config, username, password string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.adminUsername)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.adminPassword)) == 1

	return userOk && passOk
}

func serveAdminLogin(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req adminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		securityHeaders(cfg, w)

		_ = json.NewEncoder(w).Encode(map[string]bool{
			"success": checkAdminCredentials(cfg, req.Username, req.Password),
		})
	}
}

// parseWordsRaw splits a comma-separated word submission, trimming
// whitespace and dropping empty entries.
func parseWordsRaw(category, difficulty, raw string) []Term {
	parts := strings.Split(raw, ",")

	terms := make([]Term, 0, len(parts))
	for _, p := range parts {
		word := strings.TrimSpace(p)
		if word == "" {
			continue
		}
		terms = append(terms, Term{
			Word:       word,
			Category:   category,
			Difficulty: difficulty,
		})
	}

	return terms
}

func serveAddWords(cfg *Config, words *WordList) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		username, password, ok := r.BasicAuth()
		if !ok || !checkAdminCredentials(cfg, username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="charades admin"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req adminAddWordsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		terms := parseWordsRaw(req.Category, req.Difficulty, req.WordsRaw)
		words.add(terms...)

		logf(cfg, "ADMIN: Added %d new words from %s", len(terms), realIP(r))

		w.Header().Set("Content-Type", "application/json")
		securityHeaders(cfg, w)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"count":   len(terms),
		})
	}
}

//go:embed charades/admin.html
var adminHTML []byte

//go:embed charades/admin.js
var adminJS []byte

func serveAdminPage(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write(adminHTML)
	}
}

func serveAdminJS(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write(adminJS)
	}
}

func registerWordAdmin(cfg *Config, words *WordList, mux *httprouter.Router) {
	mux.POST(cfg.prefix+"/admin/login", serveAdminLogin(cfg))
	mux.POST(cfg.prefix+"/admin/add-words", serveAddWords(cfg, words))
	mux.GET(cfg.prefix+"/admin", serveAdminPage(cfg))
	mux.GET(cfg.prefix+"/assets/charades/admin.js", serveAdminJS(cfg))
}
