package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/morerealm/vrlens-api/internal/i18n"
	"github.com/morerealm/vrlens-api/internal/utils"
)

// deviceCookieMaxAge matches the preference retention window in the store.
const deviceCookieMaxAge = 90 * 24 * 60 * 60

// LocaleHandler resolves and persists the storefront locale. Preferences are
// keyed by an opaque device id carried in a cookie; resolution order is
// stored preference, then Accept-Language negotiation, then the default.
type LocaleHandler struct {
	prefs      i18n.PreferenceStore
	cookieName string
}

// NewLocaleHandler constructs a LocaleHandler.
func NewLocaleHandler(prefs i18n.PreferenceStore, cookieName string) *LocaleHandler {
	return &LocaleHandler{prefs: prefs, cookieName: cookieName}
}

// GetLocale handles GET /locale.
func (h *LocaleHandler) GetLocale(c *gin.Context) {
	if deviceID, err := c.Cookie(h.cookieName); err == nil && deviceID != "" {
		stored, err := h.prefs.Get(c.Request.Context(), deviceID)
		if err != nil {
			log.Warn().Err(err).Msg("locale preference lookup failed")
		} else if locale, ok := i18n.Parse(stored); ok {
			c.JSON(http.StatusOK, gin.H{"locale": locale})
			return
		}
	}

	locale := i18n.Match(c.GetHeader("Accept-Language"))
	c.JSON(http.StatusOK, gin.H{"locale": locale})
}

// SetLocaleRequest is the PUT /locale body.
type SetLocaleRequest struct {
	Locale string `json:"locale"`
}

// SetLocale handles PUT /locale. Mints a device cookie on first use.
func (h *LocaleHandler) SetLocale(c *gin.Context) {
	var req SetLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	locale, ok := i18n.Parse(req.Locale)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "Unsupported locale")
		return
	}

	deviceID, err := c.Cookie(h.cookieName)
	if err != nil || deviceID == "" {
		deviceID = uuid.New().String()
	}

	if err := h.prefs.Set(c.Request.Context(), deviceID, string(locale)); err != nil {
		log.Error().Err(err).Msg("locale preference save failed")
		utils.Error(c, http.StatusInternalServerError, "Failed to save locale")
		return
	}

	c.SetCookie(h.cookieName, deviceID, deviceCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"locale": locale})
}

// GetMessages handles GET /i18n/:locale.
func (h *LocaleHandler) GetMessages(c *gin.Context) {
	locale, ok := i18n.Parse(c.Param("locale"))
	if !ok {
		utils.Error(c, http.StatusNotFound, "Unsupported locale")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"locale":   locale,
		"messages": i18n.Messages(locale),
	})
}
