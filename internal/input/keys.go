package input

import (
	"encoding/binary"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc   = 1
	keyF4    = 62
	keyUp    = 103
	keyLeft  = 105
	keyRight = 106
	keyDown  = 108
)

var keyCodes = map[uint16]key.Code{
	keyEsc:   key.CodeEscape,
	keyUp:    key.CodeUpArrow,
	keyLeft:  key.CodeLeftArrow,
	keyRight: key.CodeRightArrow,
	keyDown:  key.CodeDownArrow,
}

// rawEvent is one struct input_event without its timestamp.
type rawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// decodeEvents splits buf into input_event records of tvSize+8 bytes.
// A trailing partial record is ignored.
func decodeEvents(buf []byte, tvSize int) []rawEvent {
	size := tvSize + 8
	var out []rawEvent
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		out = append(out, rawEvent{
			Type:  binary.LittleEndian.Uint16(rec[tvSize : tvSize+2]),
			Code:  binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4]),
			Value: int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8])),
		})
	}
	return out
}

// translate maps a key record to the event the viewer understands. Value 1
// is a press, 2 an autorepeat and 0 a release. F4 ends the session.
func translate(ev rawEvent) (interface{}, bool) {
	if ev.Type != evKey {
		return nil, false
	}
	if ev.Code == keyF4 {
		if ev.Value != 1 {
			return nil, false
		}
		return lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}, true
	}
	code, ok := keyCodes[ev.Code]
	if !ok {
		return nil, false
	}
	dir := key.DirPress
	switch ev.Value {
	case 0:
		dir = key.DirRelease
	case 2:
		dir = key.DirNone
	}
	return key.Event{Code: code, Direction: dir}, true
}
