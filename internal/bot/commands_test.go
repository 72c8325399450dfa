package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldtechnologies/anonchat/internal/store"
)

func newResponder() *Responder {
	st := store.NewMemoryStore()
	st.SeedDefaults()
	return &Responder{Store: st}
}

func TestHandleList(t *testing.T) {
	r := newResponder()

	reply := r.Handle("1", "alice", "list", "")
	assert.Contains(t, reply, "Available Chats:")
	assert.Contains(t, reply, "chat1: ChatGeralAno-01")
	assert.Contains(t, reply, "∞") // infinite burn marker
	assert.Contains(t, reply, "60m")
}

func TestHandleJoin(t *testing.T) {
	r := newResponder()

	t.Run("unknown chat", func(t *testing.T) {
		reply := r.Handle("1", "alice", "join", "nope")
		assert.Equal(t, "Chat not found. Use /list to see available chats.", reply)
	})

	t.Run("shows recent messages", func(t *testing.T) {
		reply := r.Handle("1", "alice", "join", "chat2")
		assert.Contains(t, reply, "Joined Discussions")
		assert.Contains(t, reply, "Recent messages:")
		assert.Contains(t, reply, "Anyone want to chat about something interesting?")
	})

	t.Run("shows at most five messages", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			_, err := r.Store.AppendMessage("chat2", "alice", "filler")
			require.NoError(t, err)
		}
		reply := r.Handle("1", "alice", "join", "chat2")
		assert.Equal(t, 5, strings.Count(reply, "filler"))
	})
}

func TestHandleSend(t *testing.T) {
	r := newResponder()

	t.Run("usage on missing args", func(t *testing.T) {
		assert.Equal(t, "Usage: /send <chat_id> <message>", r.Handle("1", "alice", "send", "chat2"))
		assert.Equal(t, "Usage: /send <chat_id> <message>", r.Handle("1", "alice", "send", ""))
	})

	t.Run("unknown chat", func(t *testing.T) {
		assert.Equal(t, "Chat not found.", r.Handle("1", "alice", "send", "nope hello"))
	})

	t.Run("appends with the platform user name", func(t *testing.T) {
		reply := r.Handle("1", "alice", "send", "chat2 hello everyone")
		assert.Equal(t, "Message sent to Discussions", reply)

		room, err := r.Store.GetRoom("chat2")
		require.NoError(t, err)
		last := room.LastMessage()
		assert.Equal(t, "alice", last.Sender)
		assert.Equal(t, "hello everyone", last.Text)
	})
}

func TestHandleCreateAndMy(t *testing.T) {
	r := newResponder()

	t.Run("no chats yet", func(t *testing.T) {
		assert.Equal(t, "You haven't created any chats yet.", r.Handle("7", "bob", "my", ""))
	})

	t.Run("usage on bad args", func(t *testing.T) {
		usage := "Usage: /create <name> <burn_time_in_minutes>"
		assert.Equal(t, usage, r.Handle("7", "bob", "create", "OnlyName"))
		assert.Equal(t, usage, r.Handle("7", "bob", "create", "My Room notanumber"))
	})

	t.Run("creates and tracks the creator's chat", func(t *testing.T) {
		reply := r.Handle("7", "bob", "create", "My Secret Room 30")
		assert.Contains(t, reply, "created! ID: ")
		assert.Contains(t, reply, "My Secret Room")

		my := r.Handle("7", "bob", "my", "")
		assert.Contains(t, my, "Your chat:")
		assert.Contains(t, my, "My Secret Room")
	})
}

func TestHandleDelete(t *testing.T) {
	r := newResponder()

	t.Run("usage on missing id", func(t *testing.T) {
		assert.Equal(t, "Usage: /delete <chat_id>", r.Handle("7", "bob", "delete", ""))
	})

	t.Run("unknown chat", func(t *testing.T) {
		assert.Equal(t, "Chat not found.", r.Handle("7", "bob", "delete", "nope"))
	})

	t.Run("official chat", func(t *testing.T) {
		assert.Equal(t, "Cannot delete official chats.", r.Handle("7", "bob", "delete", "chat1"))
	})

	t.Run("someone else's chat", func(t *testing.T) {
		assert.Equal(t, "You can only delete chats you created.", r.Handle("7", "bob", "delete", "chat2"))
	})

	t.Run("identity comparison is exact", func(t *testing.T) {
		r.Handle("7", "bob", "create", "Mine 30")
		room, ok := r.Store.RoomForCreator("7")
		require.True(t, ok)

		// A different identity token, even a numeric look-alike, is denied.
		assert.Equal(t, "You can only delete chats you created.", r.Handle("07", "eve", "delete", room.ID))
		assert.Equal(t, "Chat deleted.", r.Handle("7", "bob", "delete", room.ID))
	})
}

func TestHandleUnknownCommand(t *testing.T) {
	r := newResponder()
	assert.Equal(t, "Unknown command. Use /help to see available commands.", r.Handle("1", "a", "frobnicate", ""))
}

func TestHandleHelpAndStart(t *testing.T) {
	r := newResponder()
	assert.Contains(t, r.Handle("1", "a", "start", ""), "Welcome to AnonChat!")
	assert.Contains(t, r.Handle("1", "a", "help", ""), "/create <name> <burn_time>")
}
