package wpdiscuzclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/GregMSThompson/bank-closures/internal/errs"
	"github.com/GregMSThompson/bank-closures/internal/models"
)

const (
	serviceName = "wpdiscuz"
	userAgent   = "Mozilla/5.0 (X11; Linux x86_64; rv:142.0) Gecko/20100101 Firefox/142.0"
)

// Adapter pages through the top-level comments of one post, newest first.
type Adapter struct {
	http     *http.Client
	endpoint string
	postID   int
	limiter  *rate.Limiter
	loc      *time.Location
}

func NewAdapter(httpClient *http.Client, endpoint string, postID int, interval time.Duration) (*Adapter, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Adapter{
		http:     httpClient,
		endpoint: endpoint,
		postID:   postID,
		limiter:  rate.NewLimiter(limit, 1),
		loc:      loc,
	}, nil
}

func (a *Adapter) LoadOlderComments(ctx context.Context, lastParentID string) ([]models.Comment, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, contentType, err := a.form(lastParentID)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, 0, true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.NewExternalServiceError(serviceName, resp.StatusCode, errs.IsTransientStatus(resp.StatusCode), nil)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, resp.StatusCode, true, err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, errs.NewDecodeError("comment page", fmt.Errorf("invalid JSON body"))
	}

	list := gjson.GetBytes(raw, "data.comment_list")
	if !list.Exists() {
		return nil, errs.NewDecodeError("comment page", fmt.Errorf("missing data.comment_list"))
	}
	return ParseTopLevelComments(list.String(), a.loc)
}

func (a *Adapter) form(lastParentID string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"postId", strconv.Itoa(a.postID)},
		{"action", "wpdLoadMoreComments"},
		{"sorting", "newest"},
		{"wpdType", ""},
	}
	if lastParentID != "" {
		fields = append(fields, [2]string{"lastParentId", lastParentID})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// ParseTopLevelComments extracts the level-1 comments from a comment list
// fragment, in page order. Replies are ignored.
func ParseTopLevelComments(fragment string, loc *time.Location) ([]models.Comment, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, errs.NewDecodeError("comment list", err)
	}

	var out []models.Comment
	var parseErr error
	doc.Find(".wpd_comment_level-1").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		link, _ := el.Find(".wpd-comment-link span[data-wpd-clipboard]").First().Attr("data-wpd-clipboard")
		_, id, ok := strings.Cut(link, "#comment-")
		if !ok || id == "" {
			parseErr = errs.NewValidationError(fmt.Sprintf("unable to parse comment id from url %q", link))
			return false
		}

		rawDate := strings.TrimSpace(el.Find(".wpd-comment-timestamp, .wpd-comment-date").First().Text())
		ts, err := ParseCommentTime(rawDate, loc)
		if err != nil {
			parseErr = err
			return false
		}

		out = append(out, models.Comment{
			ID:        id,
			Timestamp: ts,
			Text:      strings.TrimSpace(el.Find(".wpd-comment-text").First().Text()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}

var commentTimeRe = regexp.MustCompile(`(?i)([a-z]+)\s+(\d+),\s+(\d{4})\s+(\d{1,2}):(\d{2})`)

// ParseCommentTime reads a display date such as "December 30, 2022 17:27"
// in loc and returns unix seconds.
func ParseCommentTime(raw string, loc *time.Location) (int64, error) {
	m := commentTimeRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, errs.NewValidationError(fmt.Sprintf("could not parse timestamp %q", raw))
	}
	normalized := fmt.Sprintf("%s %s %s %s:%s", m[1], m[2], m[3], m[4], m[5])
	t, err := time.ParseInLocation("January 2 2006 15:04", normalized, loc)
	if err != nil {
		return 0, errs.NewValidationError(fmt.Sprintf("could not parse timestamp %q: %v", raw, err))
	}
	// the repeated hour when clocks fall back resolves to standard time
	if later := t.Add(time.Hour); later.Format("2006-01-02 15:04") == t.Format("2006-01-02 15:04") {
		t = later
	}
	return t.Unix(), nil
}
