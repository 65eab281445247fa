package client

import (
	"fmt"
	"strings"
)

// HomeView is the authenticated shell: a sidebar of options and a mock
// messaging pane. All of its state is local to the instance; chat buffers
// are never persisted or synced and vanish with the view.
type HomeView struct {
	selectedOption   string
	selectedChatPeer string
	messages         map[string][]string
	peerOrder        []string
}

const (
	OptionHome          = "Home"
	OptionExplore       = "Explore"
	OptionNotifications = "Notifications"
	OptionMessages      = "Messages"
	OptionBookmarks     = "Bookmarks"
	OptionLists         = "Lists"
	OptionProfile       = "Profile"
	OptionMore          = "More"
)

func NewHomeView() *HomeView {
	peers := []string{"User1", "User2", "User3"}
	messages := make(map[string][]string, len(peers))
	for _, p := range peers {
		messages[p] = nil
	}
	return &HomeView{
		selectedOption: OptionHome,
		messages:       messages,
		peerOrder:      peers,
	}
}

// Select switches the sidebar option. Leaving Messages closes any open chat.
func (v *HomeView) Select(option string) {
	v.selectedOption = option
	if option != OptionMessages {
		v.selectedChatPeer = ""
	}
}

func (v *HomeView) Selected() string {
	return v.selectedOption
}

// Content renders the placeholder body for the selected option.
func (v *HomeView) Content() string {
	switch v.selectedOption {
	case OptionExplore:
		return "Explore new content here!"
	case OptionNotifications:
		return "Notifications:\n- User1 followed you\n- User2 liked your post\n- User3 commented on your photo"
	case OptionMessages:
		if v.selectedChatPeer != "" {
			return fmt.Sprintf("Chat with %s", v.selectedChatPeer)
		}
		return "People you can message: User1, User2, User3"
	case OptionBookmarks:
		return "These are your bookmarks."
	case OptionLists:
		return "Your lists are displayed here."
	case OptionProfile:
		return "This is your profile page."
	case OptionMore:
		return "Find more options here."
	default:
		return "Welcome to the Home page!"
	}
}

// Peers lists who can be messaged, in sidebar order.
func (v *HomeView) Peers() []string {
	return append([]string(nil), v.peerOrder...)
}

// OpenChat selects a chat peer. Unknown peers are ignored.
func (v *HomeView) OpenChat(peer string) bool {
	if _, ok := v.messages[peer]; !ok {
		return false
	}
	v.selectedOption = OptionMessages
	v.selectedChatPeer = peer
	return true
}

func (v *HomeView) CurrentChatPeer() string {
	return v.selectedChatPeer
}

// CloseChat returns from an open chat to the peer list.
func (v *HomeView) CloseChat() {
	v.selectedChatPeer = ""
}

// SendMessage appends to the open chat's buffer. Blank messages are dropped,
// matching the reference view.
func (v *HomeView) SendMessage(text string) bool {
	if v.selectedChatPeer == "" || strings.TrimSpace(text) == "" {
		return false
	}
	v.messages[v.selectedChatPeer] = append(v.messages[v.selectedChatPeer], text)
	return true
}

// Messages returns the ordered buffer for a peer.
func (v *HomeView) Messages(peer string) []string {
	return append([]string(nil), v.messages[peer]...)
}
