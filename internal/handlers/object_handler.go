package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quayfm/quay/internal/browser"
	"github.com/quayfm/quay/internal/errs"
	"github.com/quayfm/quay/internal/store"
	"github.com/quayfm/quay/internal/utils"
)

const (
	uploadURLExpiry = 15 * time.Minute
	defaultShareTTL = time.Hour
	maxShareTTL     = 7 * 24 * time.Hour
)

// ObjectHandler serves object mutations: optimistic delete, clipboard
// copy/move, drag-and-drop transfer, upload target issuance, folder markers,
// and share links.
type ObjectHandler struct {
	sessions *browser.Manager
	store    store.ObjectStore
	domains  map[string]string
	log      zerolog.Logger
}

func NewObjectHandler(sessions *browser.Manager, st store.ObjectStore, domains map[string]string, log zerolog.Logger) *ObjectHandler {
	return &ObjectHandler{sessions: sessions, store: st, domains: domains, log: log}
}

// DeleteObject removes an object optimistically: the listing row is gone
// before the store confirms; on failure the listing is restored and an error
// returned. A vanished key is non-fatal and just refreshes the view.
func (h *ObjectHandler) DeleteObject(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	ctx := c.Request().Context()
	key := c.FormValue("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Object key is required")
	}

	if err := sess.DeleteEntry(ctx, key); err != nil {
		if errs.IsNotFound(err) {
			h.log.Warn().Str("key", key).Msg("delete target already gone, refreshing")
			if err := sess.Refresh(ctx); err != nil {
				return HTTPError(err)
			}
			return HTMXRedirect(c, BrowseURL(sess.Location()))
		}
		return HTTPError(err)
	}

	return c.NoContent(http.StatusOK) // Row disappears
}

// ClipboardCut places an object in the clipboard for a later move.
func (h *ObjectHandler) ClipboardCut(c echo.Context) error {
	return h.clipboardSet(c, browser.ModeMove)
}

// ClipboardCopy places an object in the clipboard for a later copy.
func (h *ObjectHandler) ClipboardCopy(c echo.Context) error {
	return h.clipboardSet(c, browser.ModeCopy)
}

// ClipboardClear cancels the pending clipboard entry.
func (h *ObjectHandler) ClipboardClear(c echo.Context) error {
	SessionFor(c, h.sessions).ClipboardClear()
	return c.NoContent(http.StatusOK)
}

func (h *ObjectHandler) clipboardSet(c echo.Context, mode browser.Mode) error {
	sess := SessionFor(c, h.sessions)
	key := c.FormValue("key")
	entry, ok := sess.FindFile(key)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Object not in current listing")
	}
	if mode == browser.ModeMove {
		sess.ClipboardCut(entry)
	} else {
		sess.ClipboardCopy(entry)
	}
	return c.NoContent(http.StatusOK)
}

// Paste executes the clipboard entry into the current folder.
func (h *ObjectHandler) Paste(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	ctx := c.Request().Context()
	return h.finishTransfer(c, sess, sess.Paste(ctx, sess.Location().Prefix))
}

// Move handles a drag-and-drop transfer of one object into a target folder.
func (h *ObjectHandler) Move(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	ctx := c.Request().Context()

	key := c.FormValue("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Object key is required")
	}
	targetPrefix := c.FormValue("targetPrefix")
	mode := browser.Mode(c.FormValue("mode"))
	if mode == "" {
		mode = browser.ModeMove
	}

	entry, ok := sess.FindFile(key)
	if !ok {
		entry = store.Entry{Key: key}
	}
	return h.finishTransfer(c, sess, sess.Transfer(ctx, entry, targetPrefix, mode))
}

// finishTransfer maps a transfer outcome to a response. A no-op is
// informational, not an error; a partial move failure is reported distinctly
// and still refreshes so both copies become visible.
func (h *ObjectHandler) finishTransfer(c echo.Context, sess *browser.Session, err error) error {
	ctx := c.Request().Context()
	if err != nil {
		if errs.IsNoOpTransfer(err) {
			return c.String(http.StatusOK, "Already at destination")
		}
		if errs.IsPartialTransfer(err) {
			h.log.Error().Err(err).Msg("move left object at both source and destination")
			if refreshErr := sess.Refresh(ctx); refreshErr != nil {
				h.log.Error().Err(refreshErr).Msg("refresh after partial transfer failed")
			}
			return HTTPError(err)
		}
		return HTTPError(err)
	}
	if err := sess.Refresh(ctx); err != nil {
		return HTTPError(err)
	}
	return HTMXRedirect(c, BrowseURL(sess.Location()))
}

// UploadURL issues a presigned PUT target. The browser uploads the file
// bytes directly to the store; this server never sees the payload.
func (h *ObjectHandler) UploadURL(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	bucket := c.Param("bucketName")
	name := c.FormValue("name")
	if name == "" || strings.Contains(name, store.Delimiter) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file name")
	}

	key := sess.Location().Prefix + name
	u, err := h.store.PresignedPut(c.Request().Context(), bucket, key, uploadURLExpiry)
	if err != nil {
		return HTTPError(err)
	}

	contentType := c.FormValue("type")
	if contentType == "" {
		contentType = utils.ContentTypeFromExt(name)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"url":         u.String(),
		"key":         key,
		"contentType": contentType,
	})
}

// UploadCompleted refreshes the listing after a direct upload finishes.
// Each upload reports independently; concurrent uploads each trigger their
// own refresh.
func (h *ObjectHandler) UploadCompleted(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	if err := sess.Refresh(c.Request().Context()); err != nil {
		return HTTPError(err)
	}
	return HTMXRedirect(c, BrowseURL(sess.Location()))
}

// CreateFolderModal renders the folder creation dialog fragment.
func (h *ObjectHandler) CreateFolderModal(c echo.Context) error {
	return c.Render(http.StatusOK, "folder_create_modal", map[string]interface{}{
		"BucketName": c.Param("bucketName"),
	})
}

// CreateFolder writes a zero-byte folder marker under the current prefix.
func (h *ObjectHandler) CreateFolder(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	bucket := c.Param("bucketName")
	folderName := c.FormValue("folderName")
	if folderName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Folder name is required")
	}
	if !strings.HasSuffix(folderName, store.Delimiter) {
		folderName += store.Delimiter
	}

	key := sess.Location().Prefix + folderName
	if err := h.store.Put(c.Request().Context(), bucket, key, strings.NewReader(""), 0, ""); err != nil {
		return HTTPError(err)
	}

	if err := sess.Refresh(c.Request().Context()); err != nil {
		return HTTPError(err)
	}
	return HTMXRedirect(c, BrowseURL(sess.Location()))
}

// Share creates a presigned GET link for an object.
func (h *ObjectHandler) Share(c echo.Context) error {
	bucket := c.Param("bucketName")
	key := c.FormValue("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Object key is required")
	}

	expires := defaultShareTTL
	if s := c.FormValue("expires"); s != "" {
		if seconds, err := strconv.ParseInt(s, 10, 64); err == nil && seconds > 0 {
			expires = time.Duration(seconds) * time.Second
			if expires > maxShareTTL {
				expires = maxShareTTL
			}
		}
	}

	u, err := h.store.PresignedGet(c.Request().Context(), bucket, key, expires)
	if err != nil {
		return HTTPError(err)
	}

	return c.Render(http.StatusOK, "share_link", map[string]interface{}{
		"URL":       u.String(),
		"ObjectKey": key,
		"ExpiresAt": time.Now().Add(expires).Format("Jan 02, 2006 15:04 MST"),
	})
}

// PublicURL maps a key to its public-domain address, if the bucket has one
// configured.
func (h *ObjectHandler) PublicURL(c echo.Context) error {
	bucket := c.Param("bucketName")
	key := c.QueryParam("key")

	u, ok := utils.PublicURL(h.domains, bucket, key)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "No public domain configured for bucket")
	}
	return c.JSON(http.StatusOK, map[string]string{"url": u})
}
