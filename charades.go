// Charades
//
// A game lead creates a room with named teams and a turn duration, and
// shares the 4-character room code. Players join a team, then take turns
// drawing a secret word (filtered by category and difficulty) and acting
// it out while their team guesses against a server-side countdown.
// Faster finds score more points; the difficulty sets the ceiling.
//
// Features:
// - One WebSocket endpoint at /ws; events are routed by room code
// - Rooms identified by 4-character uppercase alphanumeric codes,
//   generated via crypto/rand with a server-side collision check
// - Per-room hub goroutine, so each room's turn state mutates serially
// - Server-authoritative one-second countdown per turn; manual
//   resolution and timeout race, first resolution wins
// - Time-decayed scoring: full points for an instant find, half points
//   on the last second
// - Players identified by cookie (playerID); a reconnect with the same
//   cookie resumes the seat, seats are reaped after a grace period
// - Joining mid-turn gets a spoiler-free snapshot of the active turn
// - Rooms auto-reaped after a configurable idle timeout
// - In-browser QR button to share the current room, backed by go-qrcode

package main

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"log"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// RoomConfig is supplied by the game lead at room creation and fixed
// for the life of the room.
type RoomConfig struct {
	RoomName  string   `json:"room_name"`
	GameType  string   `json:"game_type"`
	TeamNames []string `json:"team_names"`
	Duration  int      `json:"duration"` // turn duration in seconds
}

// Player holds the data we store server-side for one seat in a room.
type Player struct {
	PlayerID string `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
}

// Messages coming from clients
type ClientMessage struct {
	Type       string      `json:"type"`                  // "create_room", "join_room", "setup_turn", "get_word", "start_acting", "word_found"
	RoomCode   string      `json:"room_code,omitempty"`   // all but create_room
	PlayerName string      `json:"player_name,omitempty"` // join_room
	TeamName   string      `json:"team_name,omitempty"`   // join_room
	Category   string      `json:"category,omitempty"`    // get_word
	Difficulty string      `json:"difficulty,omitempty"`  // get_word
	Config     *RoomConfig `json:"config,omitempty"`      // create_room
}

// RoomCreatedMessage is sent only to the creator.
type RoomCreatedMessage struct {
	Type      string   `json:"type"` // "room_created"
	RoomCode  string   `json:"room_code"`
	TeamNames []string `json:"team_names"`
}

// LobbyUpdateMessage is broadcast whenever the seat list changes.
type LobbyUpdateMessage struct {
	Type    string         `json:"type"` // "update_lobby"
	Players []Player       `json:"players"`
	Config  RoomConfig     `json:"config"`
	Scores  map[string]int `json:"scores"`
}

// TurnSnapshotMessage catches a late joiner up on an active turn.
// It never includes the word.
type TurnSnapshotMessage struct {
	Type        string `json:"type"` // "game_in_progress"
	Actor       string `json:"actor"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	SecondsLeft int    `json:"seconds_left"`
}

// WordMessage reveals the drawn term, sent to the actor only.
type WordMessage struct {
	Type       string `json:"type"` // "receive_word"
	Word       string `json:"word"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// GameStartedMessage is broadcast when the actor starts acting.
type GameStartedMessage struct {
	Type     string `json:"type"` // "game_started"
	Duration int    `json:"duration"`
}

// TurnEndedMessage is broadcast exactly once per resolved turn.
type TurnEndedMessage struct {
	Type    string `json:"type"` // "turn_ended"
	Success bool   `json:"success"`
	Score   int    `json:"score,omitempty"`
	Word    string `json:"word,omitempty"`
	Team    string `json:"team,omitempty"`
}

// ScoresMessage is broadcast after every resolution.
type ScoresMessage struct {
	Type   string         `json:"type"` // "update_scores"
	Scores map[string]int `json:"scores"`
}

// SimpleMessage is for generic notifications ("show_turn_options",
// "gamer_getting_ready", "error_msg").
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string

	mu     sync.Mutex
	closed bool
}

// deliver queues msg unless the connection is closed or its buffer is
// full, and reports whether the message was accepted. One connection
// may sit in several rooms, so only the client itself guards its
// channel.
func (c *Client) deliver(msg any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// closeSend is safe to call from any room, any number of times.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

type roomAction struct {
	client *Client
	msg    ClientMessage
}

type turnStatus int

const (
	turnWordRevealed turnStatus = iota
	turnActing
)

// Turn is the single in-flight guessing round of a room. A resolved
// turn is cleared rather than kept around.
type Turn struct {
	actorID    string
	term       Term
	category   string
	difficulty string
	status     turnStatus
	startedAt  time.Time
}

type Room struct {
	code   string
	config RoomConfig
	words  *WordList

	clients map[*Client]bool
	players []Player
	scores  map[string]int
	turn    *Turn
	timer   *turnTimer

	unreg   chan *Client
	actions chan roomAction
	done    chan struct{}

	mu sync.Mutex

	createdAt  time.Time
	lastActive time.Time

	// injected for tests
	now          func() time.Time
	tickInterval time.Duration
}

func newRoom(code string, rc RoomConfig, words *WordList) *Room {
	if rc.Duration <= 0 {
		rc.Duration = 60
	}

	scores := make(map[string]int, len(rc.TeamNames))
	for _, team := range rc.TeamNames {
		scores[team] = 0
	}

	now := time.Now()
	return &Room{
		code:         code,
		config:       rc,
		words:        words,
		clients:      make(map[*Client]bool),
		scores:       scores,
		unreg:        make(chan *Client),
		actions:      make(chan roomAction),
		done:         make(chan struct{}),
		createdAt:    now,
		lastActive:   now,
		now:          time.Now,
		tickInterval: time.Second,
	}
}

func (r *Room) run(cfg *Config) {
	for {
		select {
		case <-r.done:
			return

		case c := <-r.unreg:
			r.handleLeave(cfg, c)

		case a := <-r.actions:
			switch a.msg.Type {
			case "join_room":
				r.handleJoin(cfg, a.client, a.msg)
			case "setup_turn":
				r.handleSetupTurn(a.client)
			case "get_word":
				r.handleGetWord(cfg, a.client, a.msg)
			case "start_acting":
				r.handleStartActing(cfg, a.client)
			case "word_found":
				r.handleWordFound(cfg, a.client)
			}
		}
	}
}

// trySend delivers best-effort to a single connection without touching
// room state; used for requester-only replies.
func trySend(c *Client, msg any) {
	_ = c.deliver(msg)
}

// sendLocked and broadcastLocked assume r.mu is held. Clients too slow
// to drain their send buffer are dropped rather than blocking the room.
func (r *Room) sendLocked(c *Client, msg any) {
	if !c.deliver(msg) {
		delete(r.clients, c)
		c.closeSend()
	}
}

func (r *Room) broadcastLocked(msg any) {
	for client := range r.clients {
		r.sendLocked(client, msg)
	}
}

func (r *Room) playersSnapshotLocked() []Player {
	players := make([]Player, len(r.players))
	copy(players, r.players)
	return players
}

func (r *Room) scoresSnapshotLocked() map[string]int {
	scores := make(map[string]int, len(r.scores))
	for team, score := range r.scores {
		scores[team] = score
	}
	return scores
}

func (r *Room) lobbyUpdateLocked() LobbyUpdateMessage {
	return LobbyUpdateMessage{
		Type:    "update_lobby",
		Players: r.playersSnapshotLocked(),
		Config:  r.config,
		Scores:  r.scoresSnapshotLocked(),
	}
}

func (r *Room) playerByIDLocked(playerID string) *Player {
	for i := range r.players {
		if r.players[i].PlayerID == playerID {
			return &r.players[i]
		}
	}
	return nil
}

// handleJoin processes "join_room" messages. A cookie already holding a
// seat resumes it; team names outside the configured set are rejected.
func (r *Room) handleJoin(cfg *Config, c *Client, msg ClientMessage) {
	if msg.PlayerName == "" || c.playerID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()

	if !slices.Contains(r.config.TeamNames, msg.TeamName) {
		logf(cfg, "GAMES: Rejected join of %q to %s: %v (%q)", msg.PlayerName, r.code, errInvalidTeam, msg.TeamName)
		trySend(c, SimpleMessage{
			Type:    "error_msg",
			Message: "Unknown team \"" + msg.TeamName + "\" for this room.",
		})
		return
	}

	r.clients[c] = true

	if existing := r.playerByIDLocked(c.playerID); existing != nil {
		existing.Name = msg.PlayerName
		existing.Team = msg.TeamName
	} else {
		r.players = append(r.players, Player{
			PlayerID: c.playerID,
			Name:     msg.PlayerName,
			Team:     msg.TeamName,
		})
		logf(cfg, "GAMES: Player %q joined %s on team %q", msg.PlayerName, r.code, msg.TeamName)
	}

	r.broadcastLocked(r.lobbyUpdateLocked())

	// Catch the joiner up if someone is mid-act.
	if t := r.turn; t != nil && t.status == turnActing {
		actorName := ""
		if actor := r.playerByIDLocked(t.actorID); actor != nil {
			actorName = actor.Name
		}

		secondsLeft := r.config.Duration - int(r.now().Sub(t.startedAt).Seconds())
		if secondsLeft < 0 {
			secondsLeft = 0
		}

		r.sendLocked(c, TurnSnapshotMessage{
			Type:        "game_in_progress",
			Actor:       actorName,
			Category:    t.category,
			Difficulty:  t.difficulty,
			SecondsLeft: secondsLeft,
		})
	}
}

// handleLeave runs when a connection drops. The seat survives for the
// configured grace period so the same cookie can reconnect.
func (r *Room) handleLeave(cfg *Config, c *Client) {
	r.mu.Lock()

	r.lastActive = time.Now()

	if _, ok := r.clients[c]; ok {
		delete(r.clients, c)
		c.closeSend()
	}
	playerID := c.playerID

	r.mu.Unlock()

	if playerID != "" {
		go r.scheduleRemoval(cfg, playerID, cfg.playerTimeout)
	}
}

// scheduleRemoval waits for d, and if no connection with this playerID
// has reappeared, removes the seat and broadcasts the updated lobby.
// An unstarted turn held by the departed actor is cleared so the room
// cannot wedge; an acting turn is left to its timer.
func (r *Room) scheduleRemoval(cfg *Config, playerID string, d time.Duration) {
	time.Sleep(d)

	r.mu.Lock()
	defer r.mu.Unlock()

	for client := range r.clients {
		if client.playerID == playerID {
			return
		}
	}

	dst := r.players[:0]
	changed := false

	for _, p := range r.players {
		if p.PlayerID == playerID {
			changed = true
			logf(cfg, "GAMES: Player %q left %s", p.Name, r.code)
			continue
		}
		dst = append(dst, p)
	}
	r.players = dst

	if !changed {
		return
	}

	if t := r.turn; t != nil && t.actorID == playerID && t.status == turnWordRevealed {
		r.turn = nil
	}

	r.lastActive = time.Now()

	r.broadcastLocked(r.lobbyUpdateLocked())
}

// handleSetupTurn tells the requesting connection to show the turn
// option UI. It is a side-channel hint, not a state transition.
func (r *Room) handleSetupTurn(c *Client) {
	r.mu.Lock()
	r.lastActive = time.Now()
	r.mu.Unlock()

	trySend(c, SimpleMessage{Type: "show_turn_options"})
}

// handleGetWord draws a term and opens a new turn. While a turn is
// pending or active only its own actor may redraw, and only before
// acting begins.
func (r *Room) handleGetWord(cfg *Config, c *Client, msg ClientMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()

	if t := r.turn; t != nil {
		redraw := t.status == turnWordRevealed && t.actorID == c.playerID
		if !redraw {
			logf(cfg, "GAMES: Rejected word request in %s: %v", r.code, errTurnInProgress)
			trySend(c, SimpleMessage{
				Type:    "error_msg",
				Message: "A turn is already in progress.",
			})
			return
		}
	}

	term, err := r.words.selectTerm(msg.Category, msg.Difficulty)
	if err != nil {
		trySend(c, SimpleMessage{
			Type:    "error_msg",
			Message: "No words found for these settings! Add more in Admin.",
		})
		return
	}

	r.turn = &Turn{
		actorID:    c.playerID,
		term:       term,
		category:   msg.Category,
		difficulty: msg.Difficulty,
		status:     turnWordRevealed,
	}

	for client := range r.clients {
		if client.playerID == c.playerID {
			continue
		}
		r.sendLocked(client, SimpleMessage{Type: "gamer_getting_ready"})
	}

	trySend(c, WordMessage{
		Type:       "receive_word",
		Word:       term.Word,
		Category:   term.Category,
		Difficulty: term.Difficulty,
	})

	logf(cfg, "GAMES: Dealt a %s %s word in %s", msg.Difficulty, msg.Category, r.code)
}

// handleStartActing begins the countdown for a revealed turn. Requests
// from anyone but the actor, or in any other state, are stale and
// silently ignored.
func (r *Room) handleStartActing(cfg *Config, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()

	t := r.turn
	if t == nil || t.status != turnWordRevealed || t.actorID != c.playerID {
		return
	}

	t.status = turnActing
	t.startedAt = r.now()

	r.broadcastLocked(GameStartedMessage{
		Type:     "game_started",
		Duration: r.config.Duration,
	})

	if r.timer != nil {
		r.timer.cancel()
	}
	r.timer = startTurnTimer(r.config.Duration, r.tickInterval, func() {
		r.turnExpired(cfg, t)
	})

	logf(cfg, "GAMES: Acting started in %s (%ds)", r.code, r.config.Duration)
}

// handleWordFound resolves the active turn in the actor's favor. If the
// timer has already expired the turn, this arrives stale and does
// nothing; whichever resolution runs first wins.
func (r *Room) handleWordFound(cfg *Config, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()

	t := r.turn
	if t == nil || t.status != turnActing {
		return
	}

	if r.timer != nil {
		r.timer.cancel()
		r.timer = nil
	}

	total := float64(r.config.Duration)
	timeRemaining := total - r.now().Sub(t.startedAt).Seconds()
	if timeRemaining < 0 {
		timeRemaining = 0
	}

	points := scoreTurn(t.difficulty, timeRemaining, total)

	// The resolving connection is trusted; a resolver without a seat
	// still ends the turn but scores nothing.
	team := "Unknown"
	if p := r.playerByIDLocked(c.playerID); p != nil {
		team = p.Team
		r.scores[team] += points
	}

	r.turn = nil

	r.broadcastLocked(TurnEndedMessage{
		Type:    "turn_ended",
		Success: true,
		Score:   points,
		Word:    t.term.Word,
		Team:    team,
	})
	r.broadcastLocked(ScoresMessage{
		Type:   "update_scores",
		Scores: r.scoresSnapshotLocked(),
	})

	logf(cfg, "GAMES: %q found in %s, %d points to %q", t.term.Word, r.code, points, team)
}

// turnExpired fires from the timer goroutine. A turn already resolved
// by word_found no longer matches r.turn, making a late expiry a no-op.
func (r *Room) turnExpired(cfg *Config, t *Turn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.turn != t || t.status != turnActing {
		return
	}

	r.lastActive = time.Now()
	r.timer = nil
	r.turn = nil

	r.broadcastLocked(TurnEndedMessage{
		Type:    "turn_ended",
		Success: false,
		Word:    t.term.Word,
	})
	r.broadcastLocked(ScoresMessage{
		Type:   "update_scores",
		Scores: r.scoresSnapshotLocked(),
	})

	logf(cfg, "GAMES: Time ran out on %q in %s", t.term.Word, r.code)
}

// closeAll disconnects all clients of this room and stops its hub
// goroutine (used by reaper).
func (r *Room) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.cancel()
		r.timer = nil
	}

	for c := range r.clients {
		c.closeSend()
		if c.conn != nil {
			_ = c.conn.Close()
		}
		delete(r.clients, c)
	}

	close(r.done)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "charades_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// RoomManager holds the set of rooms keyed by room code. It is the only
// place new rooms are born.
type RoomManager struct {
	mu          sync.Mutex
	rooms       map[string]*Room
	words       *WordList
	idleTimeout time.Duration
}

func newRoomManager(idleTimeout time.Duration, words *WordList) *RoomManager {
	rm := &RoomManager{
		rooms:       make(map[string]*Room),
		words:       words,
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go rm.reaperLoop()
	}
	return rm
}

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newRoomCode generates a crypto-random 4-character room code and
// retries until it doesn't collide with an existing room. With a 36^4
// code space the loop effectively never spins.
func (rm *RoomManager) newRoomCode() string {
	for {
		buf := make([]byte, 4)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 4)
		for i := range out {
			out[i] = roomCodeAlphabet[int(buf[i])%len(roomCodeAlphabet)]
		}
		code := string(out)

		rm.mu.Lock()
		_, exists := rm.rooms[code]
		rm.mu.Unlock()

		if !exists {
			return code
		}
	}
}

func (rm *RoomManager) createRoom(cfg *Config, rc RoomConfig) *Room {
	code := rm.newRoomCode()
	room := newRoom(code, rc, rm.words)

	rm.mu.Lock()
	rm.rooms[code] = room
	rm.mu.Unlock()

	go room.run(cfg)

	logf(cfg, "GAMES: Created room %s (%q)", code, rc.RoomName)

	return room
}

// lookup is a pure read; codes match case-sensitively.
func (rm *RoomManager) lookup(code string) (*Room, bool) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, ok := rm.rooms[code]
	return room, ok
}

// handleCreate processes "create_room" messages from the ws read loop.
func (rm *RoomManager) handleCreate(cfg *Config, c *Client, msg ClientMessage) {
	if msg.Config == nil || len(msg.Config.TeamNames) == 0 {
		trySend(c, SimpleMessage{
			Type:    "error_msg",
			Message: "At least one team is required to create a room.",
		})
		return
	}

	room := rm.createRoom(cfg, *msg.Config)

	trySend(c, RoomCreatedMessage{
		Type:      "room_created",
		RoomCode:  room.code,
		TeamNames: room.config.TeamNames,
	})
}

// reaperLoop periodically removes rooms that have been idle longer than
// idleTimeout.
func (rm *RoomManager) reaperLoop() {
	ticker := time.NewTicker(rm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-rm.idleTimeout)

		rm.mu.Lock()
		for code, room := range rm.rooms {
			room.mu.Lock()
			last := room.lastActive
			room.mu.Unlock()

			if last.Before(cutoff) {
				delete(rm.rooms, code)
				go room.closeAll()
			}
		}
		rm.mu.Unlock()
	}
}

// WebSocket handler; events carry the room code, so one endpoint serves
// every room.
func serveWS(cfg *Config, rm *RoomManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		go client.writePump()
		client.readPump(cfg, rm)
	}
}

func (c *Client) readPump(cfg *Config, rm *RoomManager) {
	joined := make(map[string]*Room)

	defer func() {
		for _, room := range joined {
			select {
			case room.unreg <- c:
			case <-room.done:
			}
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "create_room":
			rm.handleCreate(cfg, c, msg)

		case "join_room", "setup_turn", "get_word", "start_acting", "word_found":
			room, ok := rm.lookup(msg.RoomCode)
			if !ok {
				logf(cfg, "GAMES: Rejected %q: %v (%q)", msg.Type, errRoomNotFound, msg.RoomCode)
				trySend(c, SimpleMessage{
					Type:    "error_msg",
					Message: "Room not found!",
				})
				continue
			}

			if msg.Type == "join_room" {
				joined[room.code] = room
			}

			select {
			case room.actions <- roomAction{client: c, msg: msg}:
			case <-room.done:
			}

		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current room URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")
	if code == "" {
		http.Error(w, "missing room code", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:code/qr; strip trailing "/qr" to get the room URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed charades/index.html
var indexHTML []byte

//go:embed charades/app.css
var charadesCSS []byte

//go:embed charades/app.js
var charadesJS []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(indexHTML)
	}
}

func getCssHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(charadesCSS)
	}
}

func getJsHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(charadesJS)
	}
}

// registerCharadesGame sets up routes so that:
//   - $path             → HTML client (create/join forms)
//   - $path/:code       → HTML client with the room code prefilled
//   - $path/:code/qr    → PNG QR code for that room URL
//   - /ws               → shared WebSocket endpoint for all rooms
func registerCharadesGame(cfg *Config, path string, words *WordList, mux *httprouter.Router) {
	rm := newRoomManager(cfg.sessionTimeout, words)

	mux.GET(cfg.prefix+path, getIndexHandler(cfg))

	mux.GET(cfg.prefix+path+"/:code", getIndexHandler(cfg))

	// Shared assets (no room code in route)
	mux.GET(cfg.prefix+"/assets/charades/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/charades/app.js", getJsHandler(cfg))

	// Shared websocket, routed by room code inside each event
	mux.GET(cfg.prefix+"/ws", serveWS(cfg, rm))

	// Per-room QR code
	mux.GET(cfg.prefix+path+"/:code/qr", qrHandler)
}
