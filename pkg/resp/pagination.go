package resp

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 8
	MaxPageSize     = 100

	pageParam     = "page"
	pageSizeParam = "perpage"
)

type Page struct {
	Number int
	Size   int
}

// ParsePage reads ?page= and ?perpage= with bounded defaults.
func ParsePage(c *gin.Context) Page {
	p := Page{Number: 1, Size: DefaultPageSize}
	if v, err := strconv.Atoi(c.Query(pageParam)); err == nil && v > 0 {
		p.Number = v
	}
	if v, err := strconv.Atoi(c.Query(pageSizeParam)); err == nil && v > 0 {
		if v > MaxPageSize {
			v = MaxPageSize
		}
		p.Size = v
	}
	return p
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }
func (p Page) Limit() int  { return p.Size }

// Paginated writes a list response with count and absolute next/previous
// page links (null at either end).
func Paginated(c *gin.Context, detail string, data any, count int64, p Page) {
	c.JSON(http.StatusOK, gin.H{
		"detail":   detail,
		"data":     data,
		"count":    count,
		"next":     pageLink(c, p, p.Number+1, count),
		"previous": pageLink(c, p, p.Number-1, count),
	})
}

func pageLink(c *gin.Context, p Page, number int, count int64) any {
	if number < 1 || int64(number-1)*int64(p.Size) >= count {
		return nil
	}
	u := *c.Request.URL
	q := u.Query()
	q.Set(pageParam, strconv.Itoa(number))
	u.RawQuery = q.Encode()

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + u.String()
}
