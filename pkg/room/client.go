package room

import (
	"fmt"

	"knockpoker-server/pkg/playable"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to a session via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	session *Session

	// seat is the seat the client acts for; a negative seat is an observer
	seat int
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, seat int) *Client {
	return &Client{
		Conn:  conn,
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		seat:  seat,
	}
}

// Seat returns the seat the client acts for
func (c *Client) Seat() int {
	return c.seat
}

// Send sends a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	uuid := ""
	if c.session != nil {
		uuid = c.session.UUID
	}

	return fmt.Sprintf("seat %d:%s", c.seat, uuid)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.session == nil {
		logrus.WithField("msg", msg).Warn("received message, but session not found")
		return
	}

	c.session.ReceivedMessage(c, msg)
}
