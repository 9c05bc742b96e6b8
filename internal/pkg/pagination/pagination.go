// Package pagination implements offset-addressed paging: a request names the
// record index to start from rather than a page number.
package pagination

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vvbakhanovich/shareit/internal/pkg/apperror"
)

var ErrInvalidArgument = apperror.New(http.StatusBadRequest, "invalid pagination parameters")

// OffsetPage is an immutable pagination request.
type OffsetPage struct {
	offset int
	size   int
}

// Of validates and builds an OffsetPage.
func Of(offset, size int) (OffsetPage, error) {
	if offset < 0 {
		return OffsetPage{}, apperror.WithFields(ErrInvalidArgument, map[string]string{"from": "must not be negative"})
	}
	if size <= 0 {
		return OffsetPage{}, apperror.WithFields(ErrInvalidArgument, map[string]string{"size": "must be positive"})
	}
	return OffsetPage{offset: offset, size: size}, nil
}

// Parse builds an OffsetPage from raw query values. An empty value is
// treated as absent and rejected.
func Parse(offset, size string) (OffsetPage, error) {
	o, err := parseField("from", offset)
	if err != nil {
		return OffsetPage{}, err
	}
	s, err := parseField("size", size)
	if err != nil {
		return OffsetPage{}, err
	}
	return Of(o, s)
}

func parseField(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperror.WithFields(ErrInvalidArgument, map[string]string{name: "is required"})
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.WithFields(ErrInvalidArgument, map[string]string{name: "must be an integer"})
	}
	return v, nil
}

func (p OffsetPage) Offset() int { return p.offset }

func (p OffsetPage) Size() int { return p.size }

// PageNumber projects the offset onto zero-based page-number pagination.
func (p OffsetPage) PageNumber() int {
	return p.offset / p.size
}

func (p OffsetPage) HasPrevious() bool {
	return p.offset-p.size >= 0
}

func (p OffsetPage) Next() OffsetPage {
	return OffsetPage{offset: p.offset + p.size, size: p.size}
}

// PreviousOrFirst steps back one page, or returns p unchanged when that
// would produce a negative offset.
func (p OffsetPage) PreviousOrFirst() OffsetPage {
	if !p.HasPrevious() {
		return p
	}
	return OffsetPage{offset: p.offset - p.size, size: p.size}
}
