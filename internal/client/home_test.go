package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHomeViewDefaults(t *testing.T) {
	view := NewHomeView()
	require.Equal(t, OptionHome, view.Selected())
	require.Equal(t, "Welcome to the Home page!", view.Content())
	require.Equal(t, []string{"User1", "User2", "User3"}, view.Peers())
}

func TestChatBuffersKeepOrder(t *testing.T) {
	view := NewHomeView()
	require.True(t, view.OpenChat("User2"))
	require.Equal(t, OptionMessages, view.Selected())

	require.True(t, view.SendMessage("hello"))
	require.True(t, view.SendMessage("how are you"))
	require.Equal(t, []string{"hello", "how are you"}, view.Messages("User2"))
	require.Empty(t, view.Messages("User1"))
}

func TestBlankMessagesDropped(t *testing.T) {
	view := NewHomeView()
	view.OpenChat("User1")

	require.False(t, view.SendMessage("   "))
	require.False(t, view.SendMessage(""))
	require.Empty(t, view.Messages("User1"))
}

func TestSendWithoutOpenChat(t *testing.T) {
	view := NewHomeView()
	require.False(t, view.SendMessage("hello"))
}

func TestUnknownPeerRejected(t *testing.T) {
	view := NewHomeView()
	require.False(t, view.OpenChat("Stranger"))
	require.Equal(t, OptionHome, view.Selected())
}

func TestLeavingMessagesClosesChat(t *testing.T) {
	view := NewHomeView()
	view.OpenChat("User3")
	view.SendMessage("hi")

	view.Select(OptionProfile)
	require.Equal(t, "", view.CurrentChatPeer())

	// Buffers survive navigation within the view instance.
	view.Select(OptionMessages)
	require.Equal(t, []string{"hi"}, view.Messages("User3"))
}
