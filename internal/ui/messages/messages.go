// internal/ui/messages/messages.go

package messages

import "shawl/internal/dispatch"

// DispatchResultMsg niesie wynik zakończonego żądania
type DispatchResultMsg struct {
	Result dispatch.Result
}
