package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eldtechnologies/anonchat/internal/metrics"
	"github.com/eldtechnologies/anonchat/internal/models"
	"github.com/eldtechnologies/anonchat/internal/store"
)

const helpText = `AnonChat Bot Commands:
/start - Start the bot
/help - Show this help message
/list - List available chats
/join <chat_id> - Join a chat
/send <chat_id> <message> - Send message to chat
/create <name> <burn_time> - Create new chat (burn_time in minutes, 0 for infinite)
/delete <chat_id> - Delete your chat (if creator)
/my - Show your created chats`

// Responder executes bot commands against the room store. It is free
// of any Telegram types so commands can be exercised directly in tests;
// the poller in bot.go is a thin wrapper around it.
//
// The bot path trusts its caller and performs no input validation
// beyond argument shape, mirroring the HTTP API's permissive sibling.
type Responder struct {
	Store store.RoomStore
	Sim   *store.Simulator // nil when auto-replies are disabled
}

// Handle executes a single command and returns the reply text.
// userID is the bot platform's numeric user id coerced to a string; it
// is the requester identity for create/delete ownership.
func (r *Responder) Handle(userID, userName, command, args string) string {
	switch command {
	case "start":
		return "Welcome to AnonChat! Use /help to see available commands."
	case "help":
		return helpText
	case "list":
		return r.list()
	case "join":
		return r.join(args)
	case "send":
		return r.send(userName, args)
	case "create":
		return r.create(userID, args)
	case "delete":
		return r.delete(userID, args)
	case "my":
		return r.my(userID)
	default:
		return "Unknown command. Use /help to see available commands."
	}
}

func (r *Responder) list() string {
	var b strings.Builder
	b.WriteString("Available Chats:\n\n")
	for _, room := range r.Store.ListRooms() {
		crown := ""
		if room.Fixed {
			crown = " \U0001F451"
		}
		burn := "∞"
		if room.BurnMinutes != 0 {
			burn = fmt.Sprintf("%dm", room.BurnMinutes)
		}
		fmt.Fprintf(&b, "%s: %s%s (%d users, %s)\n", room.ID, room.Name, crown, room.UserCount, burn)
		fmt.Fprintf(&b, "  %q\n\n", room.Preview)
	}
	return b.String()
}

func (r *Responder) join(args string) string {
	chatID := firstField(args)
	room, err := r.Store.GetRoom(chatID)
	if err != nil {
		return "Chat not found. Use /list to see available chats."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Joined %s\n\nRecent messages:\n", room.Name)
	for _, msg := range lastMessages(room.Messages, 5) {
		fmt.Fprintf(&b, "[%s] %s: %s\n", msg.Timestamp.Format("15:04:05"), msg.Sender, msg.Text)
	}
	return b.String()
}

func (r *Responder) send(userName, args string) string {
	chatID, text, ok := strings.Cut(args, " ")
	if !ok || chatID == "" || strings.TrimSpace(text) == "" {
		return "Usage: /send <chat_id> <message>"
	}

	room, err := r.Store.GetRoom(chatID)
	if err != nil {
		return "Chat not found."
	}

	if _, err := r.Store.AppendMessage(chatID, userName, text); err != nil {
		return "Chat not found."
	}
	metrics.MessagesPosted.WithLabelValues("bot").Inc()

	if r.Sim != nil {
		r.Sim.MessagePosted(chatID)
	}

	return fmt.Sprintf("Message sent to %s", room.Name)
}

func (r *Responder) create(userID, args string) string {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "Usage: /create <name> <burn_time_in_minutes>"
	}

	burn, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || burn < 0 {
		return "Usage: /create <name> <burn_time_in_minutes>"
	}
	name := strings.Join(fields[:len(fields)-1], " ")

	room, err := r.Store.CreateRoom(name, burn, userID)
	if err != nil {
		return "Could not create chat."
	}
	metrics.RoomsCreated.WithLabelValues("bot").Inc()
	metrics.RoomsLive.Set(float64(r.Store.Count()))

	return fmt.Sprintf("Chat %q created! ID: %s", room.Name, room.ID)
}

func (r *Responder) delete(userID, args string) string {
	chatID := firstField(args)
	if chatID == "" {
		return "Usage: /delete <chat_id>"
	}

	err := r.Store.DeleteRoom(chatID, userID)
	switch {
	case err == nil:
		metrics.RoomsDeleted.Inc()
		metrics.RoomsLive.Set(float64(r.Store.Count()))
		return "Chat deleted."
	case errors.Is(err, store.ErrRoomNotFound):
		return "Chat not found."
	case errors.Is(err, store.ErrForbidden):
		if room, gerr := r.Store.GetRoom(chatID); gerr == nil && room.Fixed {
			return "Cannot delete official chats."
		}
		return "You can only delete chats you created."
	default:
		return "Could not delete chat."
	}
}

func (r *Responder) my(userID string) string {
	room, hasMapping := r.Store.RoomForCreator(userID)
	if !hasMapping {
		return "You haven't created any chats yet."
	}
	if room == nil {
		return "Your chat no longer exists."
	}
	return fmt.Sprintf("Your chat: %s (ID: %s)", room.Name, room.ID)
}

func firstField(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lastMessages(msgs []*models.Message, n int) []*models.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
