package archive

import "fmt"

// Object key conventions for the archive bucket

func ReportKey(id string) string {
	return fmt.Sprintf("reports/%s.json", id)
}

func ChatKey(chatID string) string {
	return fmt.Sprintf("chats/%s.json", chatID)
}
