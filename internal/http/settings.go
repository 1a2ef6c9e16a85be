package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LastReadRequest is the request body for PUT /api/settings/last-read
type LastReadRequest struct {
	Book    string `json:"book" binding:"required"`
	Chapter string `json:"chapter" binding:"required"`
}

// ThemeRequest is the request body for PUT /api/settings/theme
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// TTSRequest is the request body for PUT /api/settings/tts. Fields left out
// are not changed.
type TTSRequest struct {
	Voice            *int    `json:"tts_voice"`
	VoiceName        *string `json:"tts_voice_name"`
	SkipVerseNumbers *bool   `json:"skip_verse_numbers"`
}

type SettingsController struct {
	store ReaderSettingsStore
}

func NewSettingsController(store ReaderSettingsStore) *SettingsController {
	return &SettingsController{store: store}
}

// GetSettings returns the reader preferences.
// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.store.Settings())
}

// SetLastRead records the last chapter the reader opened.
// PUT /api/settings/last-read
func (sc *SettingsController) SetLastRead(c *gin.Context) {
	var req LastReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := sc.store.SetLastRead(req.Book, req.Chapter); err != nil {
		respondInternalError(c, err, "set last read")
		return
	}
	c.JSON(http.StatusOK, sc.store.Settings())
}

// SetTheme changes the color theme.
// PUT /api/settings/theme
func (sc *SettingsController) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := sc.store.SetTheme(req.Theme); err != nil {
		respondInternalError(c, err, "set theme")
		return
	}
	c.JSON(http.StatusOK, sc.store.Settings())
}

// SetTTS changes the text-to-speech preferences.
// PUT /api/settings/tts
func (sc *SettingsController) SetTTS(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Voice == nil && req.VoiceName == nil && req.SkipVerseNumbers == nil {
		respondBadRequest(c, "nothing to update")
		return
	}

	if req.Voice != nil || req.VoiceName != nil {
		current := sc.store.Settings()
		voice, name := current.TTSVoice, current.TTSVoiceName
		if req.Voice != nil {
			voice = *req.Voice
		}
		if req.VoiceName != nil {
			name = *req.VoiceName
		}
		if voice < 0 {
			respondBadRequest(c, "tts_voice must not be negative")
			return
		}
		if err := sc.store.SetTTSVoice(voice, name); err != nil {
			respondInternalError(c, err, "set tts voice")
			return
		}
	}

	if req.SkipVerseNumbers != nil {
		if err := sc.store.SetSkipVerseNumbers(*req.SkipVerseNumbers); err != nil {
			respondInternalError(c, err, "set skip verse numbers")
			return
		}
	}

	c.JSON(http.StatusOK, sc.store.Settings())
}
