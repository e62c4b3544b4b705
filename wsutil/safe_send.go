package wsutil

import "log/slog"

// SafeSend delivers data to a send channel without ever blocking the
// caller: a full or closed channel drops the message. Broadcasts are
// fire-and-forget — a slow consumer must not stall a committed game
// transition. Panics from closed channels are recovered.
func SafeSend(ch chan []byte, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("send to closed channel", "tag", "wsutil", "recovered", r)
		}
	}()
	select {
	case ch <- data:
	default:
	}
}
