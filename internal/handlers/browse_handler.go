package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quayfm/quay/internal/browser"
	"github.com/quayfm/quay/internal/models"
	"github.com/quayfm/quay/internal/utils"
)

// BrowseHandler serves the bucket list and the object browser pages and the
// navigation actions between them.
type BrowseHandler struct {
	sessions *browser.Manager
	log      zerolog.Logger
}

func NewBrowseHandler(sessions *browser.Manager, log zerolog.Logger) *BrowseHandler {
	return &BrowseHandler{sessions: sessions, log: log}
}

// ListBuckets renders the bucket list page.
func (h *BrowseHandler) ListBuckets(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	if err := sess.OpenBuckets(c.Request().Context()); err != nil {
		return HTTPError(err)
	}

	view := sess.View()
	rows := make([]models.BucketRow, 0, len(view.Buckets))
	for _, b := range view.Buckets {
		rows = append(rows, models.BucketRow{
			Name:    b.Name,
			Created: b.CreationDate.Format("Jan 02, 2006"),
		})
	}

	return c.Render(http.StatusOK, "buckets", map[string]interface{}{
		"Buckets":   rows,
		"CSRFToken": csrfToken(c),
	})
}

// Browse renders the object browser for a bucket and prefix. A `q` parameter
// applies the search filter; a `sort` parameter selects (or toggles) the
// file sort field.
func (h *BrowseHandler) Browse(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	ctx := c.Request().Context()
	bucket := c.Param("bucketName")
	prefix := c.QueryParam("prefix")

	loc := sess.Location()
	if loc.Bucket != bucket {
		if err := sess.OpenBucket(ctx, bucket); err != nil {
			return HTTPError(err)
		}
		loc = sess.Location()
	}
	if loc.Prefix != prefix {
		if err := sess.OpenFolder(ctx, prefix); err != nil {
			return HTTPError(err)
		}
	}

	// An explicit empty q clears the filter; an absent q leaves it alone.
	if c.QueryParams().Has("q") {
		sess.SetSearch(c.QueryParam("q"))
	}
	if field := c.QueryParam("sort"); field != "" {
		sess.SetSort(browser.SortField(field))
	}

	return h.renderBrowser(c, sess)
}

// GoUp strips the last prefix segment, or returns to the bucket list.
func (h *BrowseHandler) GoUp(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	if err := sess.GoUp(c.Request().Context()); err != nil {
		return HTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, BrowseURL(sess.Location()))
}

// Breadcrumb navigates to the i-th prefix segment.
func (h *BrowseHandler) Breadcrumb(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid breadcrumb index")
	}
	if err := sess.OpenBreadcrumb(c.Request().Context(), index); err != nil {
		return HTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, BrowseURL(sess.Location()))
}

// Refresh re-fetches the current location.
func (h *BrowseHandler) Refresh(c echo.Context) error {
	sess := SessionFor(c, h.sessions)
	if err := sess.Refresh(c.Request().Context()); err != nil {
		return HTTPError(err)
	}
	return HTMXRedirect(c, BrowseURL(sess.Location()))
}

func (h *BrowseHandler) renderBrowser(c echo.Context, sess *browser.Session) error {
	view := sess.View()

	objects := make([]models.ObjectRow, 0, len(view.Files))
	for _, f := range view.Files {
		inClipboard := view.Clipboard != nil && view.Clipboard.Source.Key == f.Key
		objects = append(objects, models.ObjectRow{
			Key:           f.Key,
			DisplayName:   browser.Basename(f.Key),
			Size:          f.Size,
			FormattedSize: utils.FormatFileSize(f.Size),
			Modified:      utils.FormatModified(f.LastModified),
			ContentType:   utils.ContentTypeFromExt(f.Key),
			InClipboard:   inClipboard,
		})
	}

	folders := make([]models.FolderRow, 0, len(view.Folders))
	for _, f := range view.Folders {
		folders = append(folders, models.FolderRow{Name: f.DisplayName, Prefix: f.Prefix})
	}

	crumbs := make([]models.Breadcrumb, 0, len(view.Breadcrumbs))
	for i, b := range view.Breadcrumbs {
		crumbs = append(crumbs, models.Breadcrumb{Name: b.Name, Index: i})
	}

	var clipboard *models.ClipboardBar
	if view.Clipboard != nil {
		clipboard = &models.ClipboardBar{
			Key:  view.Clipboard.Source.Key,
			Mode: string(view.Clipboard.Mode),
		}
	}

	return c.Render(http.StatusOK, "browser", map[string]interface{}{
		"BucketName":  view.Location.Bucket,
		"Prefix":      view.Location.Prefix,
		"Objects":     objects,
		"Folders":     folders,
		"Breadcrumbs": crumbs,
		"Search":      view.Search,
		"SortField":   string(view.Sort.Field),
		"SortAsc":     view.Sort.Asc,
		"Clipboard":   clipboard,
		"CSRFToken":   csrfToken(c),
	})
}
