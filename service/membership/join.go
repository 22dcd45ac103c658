package membership

import (
	"fmt"
	"strings"
)

const prefixLinkPublic = "https://t.me/"

type JoinLink struct {
	Label string
	Url   string
}

// JoinLinks resolves the deep links the join prompt offers, one per chat that has any.
// inviteLinks positionally override the public link derived from an "@username".
func JoinLinks(chats []Chat, inviteLinks []string) (links []JoinLink) {
	for i, chat := range chats {
		var url string
		if i < len(inviteLinks) {
			url = strings.TrimSpace(inviteLinks[i])
		}
		name, public := strings.CutPrefix(string(chat), "@")
		if url == "" && public && name != "" {
			url = prefixLinkPublic + name
		}
		if url == "" {
			continue
		}
		label := fmt.Sprintf("📢 Join #%d", i+1)
		if public {
			label = fmt.Sprintf("📢 Join @%s", name)
		}
		links = append(links, JoinLink{
			Label: label,
			Url:   url,
		})
	}
	return
}
