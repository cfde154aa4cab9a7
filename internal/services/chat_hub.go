package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/models/response_models"
)

// BotName signs the join and leave notices.
const BotName = "Cat Chat"

const (
	EventHistory = "history"
	EventMessage = "message"
	EventSystem  = "system"
	EventError   = "error"
)

// ChatEvent is one websocket frame sent to clients.
type ChatEvent struct {
	Type          string                            `json:"type"`
	HolidayID     string                            `json:"holiday_id"`
	ParticipantID string                            `json:"participant_id,omitempty"`
	Sender        string                            `json:"sender,omitempty"`
	Content       string                            `json:"content,omitempty"`
	SendAt        time.Time                         `json:"send_at"`
	Messages      []response_models.MessageResponse `json:"messages,omitempty"`
}

// ChatConn is the part of *websocket.Conn the hub writes to.
type ChatConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type ChatClient struct {
	conn        ChatConn
	writeMu     sync.Mutex
	Participant db_models.Participant
	HolidayID   uuid.UUID
}

func NewChatClient(conn ChatConn, participant db_models.Participant, holidayID uuid.UUID) *ChatClient {
	return &ChatClient{conn: conn, Participant: participant, HolidayID: holidayID}
}

func (c *ChatClient) send(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// ChatRelay fans room events out to other API instances.
type ChatRelay interface {
	Publish(ctx context.Context, payload []byte) error
	Subscribe(ctx context.Context, deliver func(payload []byte)) error
}

type relayEnvelope struct {
	Origin string    `json:"origin"`
	Event  ChatEvent `json:"event"`
}

// ChatHub keeps one room per holiday.
type ChatHub struct {
	mu       sync.RWMutex
	rooms    map[uuid.UUID]map[*ChatClient]struct{}
	messages MessageServiceInterface
	relay    ChatRelay
	origin   string
	now      func() time.Time
}

func NewChatHub(messages MessageServiceInterface, relay ChatRelay) *ChatHub {
	return &ChatHub{
		rooms:    make(map[uuid.UUID]map[*ChatClient]struct{}),
		messages: messages,
		relay:    relay,
		origin:   uuid.NewString(),
		now:      time.Now,
	}
}

// Start subscribes to the relay, if any, until ctx is done.
func (h *ChatHub) Start(ctx context.Context) error {
	if h.relay == nil {
		return nil
	}
	return h.relay.Subscribe(ctx, h.deliverRelayed)
}

// Join registers the client, replays history to it and announces it.
func (h *ChatHub) Join(ctx context.Context, client *ChatClient) error {
	history, err := h.messages.GetRecentMessages(ctx, client.HolidayID)
	if err != nil {
		return err
	}

	h.mu.Lock()
	room, ok := h.rooms[client.HolidayID]
	if !ok {
		room = make(map[*ChatClient]struct{})
		h.rooms[client.HolidayID] = room
	}
	room[client] = struct{}{}
	h.mu.Unlock()

	log.Info().
		Str("holiday_id", client.HolidayID.String()).
		Str("participant_id", client.Participant.ID.String()).
		Msg("Chat client joined")

	if err := h.sendTo(client, ChatEvent{
		Type:      EventHistory,
		HolidayID: client.HolidayID.String(),
		SendAt:    h.now().UTC(),
		Messages:  response_models.NewMessageResponses(history),
	}); err != nil {
		log.Error().Err(err).Str("participant_id", client.Participant.ID.String()).Msg("Failed to send chat history")
	}

	h.broadcast(ctx, h.systemEvent(client.HolidayID, fmt.Sprintf("%s joined the group.", client.Participant.FirstName)))
	return nil
}

// Leave unregisters the client and announces it to the room.
func (h *ChatHub) Leave(ctx context.Context, client *ChatClient) {
	h.mu.Lock()
	room, ok := h.rooms[client.HolidayID]
	if ok {
		if _, present := room[client]; !present {
			ok = false
		}
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, client.HolidayID)
		}
	}
	h.mu.Unlock()

	if !ok {
		return
	}
	client.conn.Close()
	h.broadcast(ctx, h.systemEvent(client.HolidayID, fmt.Sprintf("%s left the group.", client.Participant.FirstName)))
}

// SendMessage persists the message, then broadcasts it to the room.
func (h *ChatHub) SendMessage(ctx context.Context, client *ChatClient, content string) error {
	msg, err := h.messages.AddMessage(ctx, client.Participant.ID, client.HolidayID, content)
	if err != nil {
		_ = h.sendTo(client, ChatEvent{
			Type:      EventError,
			HolidayID: client.HolidayID.String(),
			Content:   "Message could not be sent",
			SendAt:    h.now().UTC(),
		})
		return err
	}

	h.broadcast(ctx, ChatEvent{
		Type:          EventMessage,
		HolidayID:     client.HolidayID.String(),
		ParticipantID: client.Participant.ID.String(),
		Sender:        client.Participant.FirstName,
		Content:       msg.Content,
		SendAt:        msg.SendAt,
	})
	return nil
}

// RoomSize reports how many local clients are in the holiday's room.
func (h *ChatHub) RoomSize(holidayID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[holidayID])
}

func (h *ChatHub) systemEvent(holidayID uuid.UUID, content string) ChatEvent {
	return ChatEvent{
		Type:      EventSystem,
		HolidayID: holidayID.String(),
		Sender:    BotName,
		Content:   content,
		SendAt:    h.now().UTC(),
	}
}

func (h *ChatHub) sendTo(client *ChatClient, event ChatEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal chat event: %w", err)
	}
	return client.send(data)
}

func (h *ChatHub) broadcast(ctx context.Context, event ChatEvent) {
	h.deliverLocal(event)

	if h.relay == nil {
		return
	}
	payload, err := json.Marshal(relayEnvelope{Origin: h.origin, Event: event})
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal relay envelope")
		return
	}
	if err := h.relay.Publish(ctx, payload); err != nil {
		log.Warn().Err(err).Str("holiday_id", event.HolidayID).Msg("Failed to relay chat event")
	}
}

func (h *ChatHub) deliverRelayed(payload []byte) {
	var env relayEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		log.Warn().Err(err).Msg("Discarding malformed relay payload")
		return
	}
	if env.Origin == h.origin {
		return
	}
	h.deliverLocal(env.Event)
}

func (h *ChatHub) deliverLocal(event ChatEvent) {
	holidayID, err := uuid.Parse(event.HolidayID)
	if err != nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal chat event")
		return
	}

	h.mu.RLock()
	clients := make([]*ChatClient, 0, len(h.rooms[holidayID]))
	for c := range h.rooms[holidayID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(data); err != nil {
			log.Warn().Err(err).Str("participant_id", c.Participant.ID.String()).Msg("Failed to deliver chat event")
		}
	}
}
