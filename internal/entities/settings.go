package entities

import (
	"encoding/json"
	"maps"
	"sort"
)

// ReaderSettings holds the user's reading preferences. Fields the application
// does not know about are kept in Extra and written back unchanged, so data
// produced by newer clients survives a load/save cycle.
type ReaderSettings struct {
	LastBook         string
	LastChapter      string
	Theme            string
	TTSVoice         int
	TTSVoiceName     string
	SkipVerseNumbers bool

	Extra map[string]json.RawMessage
}

const (
	settingsFieldLastBook         = "last_book"
	settingsFieldLastChapter      = "last_chapter"
	settingsFieldTheme            = "theme"
	settingsFieldTTSVoice         = "tts_voice"
	settingsFieldTTSVoiceName     = "tts_voice_name"
	settingsFieldSkipVerseNumbers = "skip_verse_numbers"
)

func DefaultReaderSettings() ReaderSettings {
	return ReaderSettings{
		LastBook:    "Génesis",
		LastChapter: "1",
		Theme:       "classic",
	}
}

// Clone returns a copy that shares no mutable state with s.
func (s ReaderSettings) Clone() ReaderSettings {
	out := s
	out.Extra = maps.Clone(s.Extra)
	return out
}

func (s ReaderSettings) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(s.Extra)+6)
	for k, v := range s.Extra {
		fields[k] = v
	}
	fields[settingsFieldLastBook] = s.LastBook
	fields[settingsFieldLastChapter] = s.LastChapter
	fields[settingsFieldTheme] = s.Theme
	fields[settingsFieldTTSVoice] = s.TTSVoice
	fields[settingsFieldTTSVoiceName] = s.TTSVoiceName
	fields[settingsFieldSkipVerseNumbers] = s.SkipVerseNumbers
	return json.Marshal(fields)
}

// UnmarshalJSON merges the fields present in data into s. Fields missing from
// data keep their current value, which is what makes merge-on-load and
// merge-on-import a plain json.Unmarshal onto the current settings.
func (s *ReaderSettings) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		raw := fields[k]
		var err error
		switch k {
		case settingsFieldLastBook:
			err = json.Unmarshal(raw, &s.LastBook)
		case settingsFieldLastChapter:
			err = unmarshalLoose(raw, &s.LastChapter)
		case settingsFieldTheme:
			err = json.Unmarshal(raw, &s.Theme)
		case settingsFieldTTSVoice:
			err = json.Unmarshal(raw, &s.TTSVoice)
		case settingsFieldTTSVoiceName:
			err = json.Unmarshal(raw, &s.TTSVoiceName)
		case settingsFieldSkipVerseNumbers:
			err = json.Unmarshal(raw, &s.SkipVerseNumbers)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]json.RawMessage)
			}
			s.Extra[k] = append(json.RawMessage(nil), raw...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// unmarshalLoose accepts either a JSON string or a JSON number for a
// string-typed field. Older clients stored the last chapter as a number.
func unmarshalLoose(raw json.RawMessage, dst *string) error {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		*dst = n.String()
		return nil
	}
	return json.Unmarshal(raw, dst)
}
