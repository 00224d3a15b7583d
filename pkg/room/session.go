package room

import (
	"sync"
	"time"

	"knockpoker-server/internal/util"
	"knockpoker-server/pkg/playable"
	"knockpoker-server/pkg/playable/knockpoker"
	"knockpoker-server/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const joinCodeLength = 6

// Session is a four-seat knock poker table
// The session owns its game: every action goes through the session lock, so
// exactly one action is processed at a time
type Session struct {
	UUID      string
	Name      string
	JoinCode  string
	CreatedAt time.Time

	mu          sync.Mutex
	game        *knockpoker.Game
	clients     map[*Client]bool
	logMessages []*playable.LogMessage

	done   chan bool
	logger logrus.FieldLogger
}

// NewSession creates a new session for the four named players
// If name is empty, a random table name is chosen
func NewSession(logger logrus.FieldLogger, name string, players []string, opts knockpoker.Options) (*Session, error) {
	id := uuid.New().String()

	game, err := knockpoker.NewGame(logger.WithField("session", id), players, opts)
	if err != nil {
		return nil, err
	}

	joinCode, err := token.Generate(joinCodeLength)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = util.GetRandomName()
	}

	return &Session{
		UUID:      id,
		Name:      name,
		JoinCode:  joinCode,
		CreatedAt: time.Now(),
		game:      game,
		clients:   make(map[*Client]bool),
		done:      make(chan bool),
		logger:    logger.WithField("session", id),
	}, nil
}

// StartShift starts the session run loop
func (s *Session) StartShift() {
	go s.runLoop()
}

// EndShift is called when the session is no longer needed
func (s *Session) EndShift() {
	close(s.done)
}

func (s *Session) runLoop() {
	s.logger.Debug("starting session run loop")

	ticker := time.NewTicker(s.game.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case messages := <-s.game.LogChan():
			s.receivedLogMessages(messages)
		case <-s.done:
			s.logger.Debug("terminating session run loop")
			return
		}
	}
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	update, err := s.game.Tick()
	if err != nil {
		s.logger.WithError(err).Error("tick failed")
		return
	}

	if update {
		s.broadcastState()
	}
}

// Action performs a game action on behalf of the seat
// The response is the direct reply for the caller; all connected clients
// receive a fresh state snapshot if the action changed the game
func (s *Session) Action(seat int, msg *playable.PayloadIn) (*playable.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, update, err := s.game.Action(seat, msg)
	if err != nil {
		return nil, err
	}

	if update {
		s.broadcastState()
	}

	return res, nil
}

// State returns the state snapshot for the given seat
func (s *Session) State(seat int) (*playable.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.GetPlayerState(seat)
}

// AddClient subscribes a client to the session's state stream
func (s *Session) AddClient(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.session = s
	s.clients[c] = true

	if state, err := s.game.GetPlayerState(c.seat); err == nil {
		c.Send(state)
	}

	if len(s.logMessages) > 0 {
		c.Send(&playable.Response{
			Key:  "logs",
			Data: s.logMessages,
		})
	}
}

// RemoveClient unsubscribes a client
func (s *Session) RemoveClient(c *Client) (lastClient bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.clients, c)
	return len(s.clients) == 0
}

// ReceivedMessage is called when a client sends a message to the server
func (s *Session) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	res, err := s.Action(c.seat, msg)
	if err != nil {
		s.logger.WithError(err).WithField("client", c.String()).Debug("action rejected")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if res != nil {
		res.Context = msg.Context
		c.Send(res)
	}
}

// broadcastState sends each connected client its view of the game
// NOTE: must be called with the session lock held
func (s *Session) broadcastState() {
	for client := range s.clients {
		state, err := s.game.GetPlayerState(client.seat)
		if err != nil {
			s.logger.WithError(err).Error("could not get player state")
			continue
		}

		client.Send(state)
	}
}

func (s *Session) receivedLogMessages(messages []*playable.LogMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLogMessages(messages)

	for client := range s.clients {
		client.Send(&playable.Response{
			Key:  "logs",
			Data: messages,
		})
	}
}
