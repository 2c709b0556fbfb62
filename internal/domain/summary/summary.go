// Package summary renders the one-line description shown next to a setting.
package summary

import (
	"fmt"
	"strconv"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

const (
	enabled  = "Enabled"
	disabled = "Disabled"
	notSet   = "Not set"

	maxTextLen   = 20
	truncatedLen = 17

	gpsTrackKey      = "spoofGpsTrack"
	gpsTracksKey     = "spoofGpsTracks"
	gpsTrackIndexKey = "spoofGpsTrackIndex"
)

// toggleEditors are structured editors whose summary is their on/off state.
var toggleEditors = map[string]bool{
	"hostsBlocker":  true,
	"bundleAppData": true,
	"deleteOnExit":  true,
}

// Text summarizes the value of key. category gives access to siblings.
func Text(tables *entity.Tables, category *entity.Category, key string, value entity.Value) string {
	if toggleEditors[key] {
		return onOff(entity.Truthy(value))
	}
	if key == gpsTrackKey {
		return gpsTrack(category, value)
	}
	if tables.IsCustomEditor(key) {
		n := 0
		if seq, ok := value.(entity.Sequence); ok {
			n = len(seq)
		}
		return fmt.Sprintf("%d item(s)", n)
	}

	switch v := value.(type) {
	case *entity.Record:
		return onOff(v.Enabled())
	case entity.Bool:
		return onOff(bool(v))
	case entity.Sequence:
		return sequence(tables, key, v)
	case entity.Text:
		if v == "" {
			return notSet
		}
		return truncate(string(v))
	case entity.Number:
		if !entity.Truthy(v) {
			return notSet
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	default:
		return notSet
	}
}

func onOff(on bool) string {
	if on {
		return enabled
	}
	return disabled
}

func gpsTrack(category *entity.Category, value entity.Value) string {
	if !entity.Truthy(value) {
		return disabled
	}
	tracksValue, _ := category.Get(gpsTracksKey)
	tracks, _ := tracksValue.(entity.Sequence)
	idx := 0
	if n, ok := category.Get(gpsTrackIndexKey); ok {
		if num, isNum := n.(entity.Number); isNum {
			idx = int(num)
		}
	}
	if idx < 0 || idx >= len(tracks) {
		return enabled
	}
	rec, ok := tracks[idx].(*entity.Record)
	if !ok {
		return enabled
	}
	if name, found := rec.Get("trackName"); found {
		if text, isText := name.(entity.Text); isText && text != "" {
			return "Track: " + string(text)
		}
	}
	return enabled
}

func sequence(tables *entity.Tables, key string, seq entity.Sequence) string {
	if len(seq) == 0 {
		return "[0 items]"
	}
	first, isText := seq[0].(entity.Text)
	if tables.SupportsCustomOption(key) {
		if isText {
			return string(first)
		}
		return "Custom"
	}
	if isText {
		return string(first)
	}
	return fmt.Sprintf("[%d items]", len(seq))
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTextLen {
		return s
	}
	return string(runes[:truncatedLen]) + "..."
}
